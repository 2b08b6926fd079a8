package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

func newAsyncUploadManager(upload uploadFunc, workerPoolSize, queueSize int) *asyncUploadManager {
	if workerPoolSize <= 0 {
		workerPoolSize = DefaultAsyncWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultAsyncQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &asyncUploadManager{
		upload:  upload,
		workers: workerPoolSize,
		queue:   make(chan *asyncUploadTask, queueSize),
		tracker: newUploadStatusTracker(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (m *asyncUploadManager) start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.isRunning {
		return
	}
	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
	m.wg.Add(1)
	go m.cleanupWorker()
	m.isRunning = true
}

func (m *asyncUploadManager) stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.isRunning {
		return
	}
	m.cancel()
	m.wg.Wait()
	m.isRunning = false
}

// uploadAsync queues req. The upload outlives ctx's cancellation but keeps
// its values.
func (m *asyncUploadManager) uploadAsync(ctx context.Context, req *UploadRequest) (string, error) {
	m.mu.RLock()
	running := m.isRunning
	m.mu.RUnlock()
	if !running {
		return "", &StorageError{Code: ErrCodeInvalidState, Message: "async upload manager not started"}
	}

	taskID := uuid.New().String()
	taskCtx, taskCancel := context.WithCancel(context.WithoutCancel(ctx))
	task := &asyncUploadTask{id: taskID, req: req, ctx: taskCtx, cancel: taskCancel}

	m.tracker.updateStatus(taskID, &UploadProgress{
		TaskID: taskID, TotalBytes: req.Size, Status: UploadStatusPending, UpdatedAt: time.Now(),
	})
	m.tracker.setCancel(taskID, taskCancel)

	select {
	case m.queue <- task:
		return taskID, nil
	default:
		taskCancel()
		m.tracker.remove(taskID)
		return "", &StorageError{Code: ErrCodeQueueFull, Message: "upload queue is full"}
	}
}

func (m *asyncUploadManager) getUploadStatus(taskID string) (*UploadProgress, error) {
	progress, exists := m.tracker.getStatus(taskID)
	if !exists {
		return nil, &StorageError{Code: ErrCodeTaskNotFound, Message: fmt.Sprintf("task not found: %s", taskID)}
	}
	return progress, nil
}

func (m *asyncUploadManager) waitForUpload(taskID string, timeout time.Duration) (*AsyncUploadResult, error) {
	ticker := time.NewTicker(asyncWaitPoll)
	defer ticker.Stop()
	timeoutTimer := time.NewTimer(timeout)
	defer timeoutTimer.Stop()

	for {
		progress, exists := m.tracker.getStatus(taskID)
		if !exists {
			return nil, &StorageError{Code: ErrCodeTaskNotFound, Message: fmt.Sprintf("task not found: %s", taskID)}
		}
		if progress.Status.IsFinal() {
			if result := m.tracker.getResult(taskID); result != nil {
				return result, nil
			}
			if progress.Status == UploadStatusCancelled {
				return &AsyncUploadResult{TaskID: taskID, Error: context.Canceled}, nil
			}
		}

		select {
		case <-timeoutTimer.C:
			return nil, &StorageError{Code: ErrCodeUploadTimedOut, Message: fmt.Sprintf("timeout waiting for upload: %s", taskID)}
		case <-ticker.C:
		}
	}
}

func (m *asyncUploadManager) cancelUpload(taskID string) error {
	progress, exists := m.tracker.getStatus(taskID)
	if !exists {
		return &StorageError{Code: ErrCodeTaskNotFound, Message: fmt.Sprintf("task not found: %s", taskID)}
	}
	if progress.Status.IsFinal() {
		return &StorageError{Code: ErrCodeInvalidState, Message: fmt.Sprintf("cannot cancel task in status: %s", progress.Status)}
	}
	m.tracker.updateStatus(taskID, &UploadProgress{
		TaskID: taskID, Status: UploadStatusCancelled, UpdatedAt: time.Now(),
	})
	m.tracker.cancel(taskID)
	return nil
}

func (m *asyncUploadManager) worker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.ctx.Done():
			return
		case task := <-m.queue:
			m.processUploadTask(task)
		}
	}
}

func (m *asyncUploadManager) processUploadTask(task *asyncUploadTask) {
	defer task.cancel()

	progress, _ := m.tracker.getStatus(task.id)
	if progress != nil && progress.Status == UploadStatusCancelled {
		return
	}

	startTime := time.Now()
	size := task.req.Size
	m.tracker.updateStatus(task.id, &UploadProgress{
		TaskID: task.id, TotalBytes: size, Status: UploadStatusUploading, UpdatedAt: time.Now(),
	})

	req := *task.req
	req.Reader = &progressReader{
		r: task.req.Reader,
		onProgress: func(bytesRead int64) {
			percentage := float64(bytesRead) / float64(size) * 100
			if percentage > 100 {
				percentage = 100
			}
			m.tracker.updateStatus(task.id, &UploadProgress{
				TaskID: task.id, BytesUploaded: bytesRead, Percentage: percentage, UpdatedAt: time.Now(),
			})
		},
	}

	fileInfo, err := m.upload(task.ctx, &req)
	endTime := time.Now()
	result := &AsyncUploadResult{
		TaskID: task.id, FileInfo: fileInfo, Error: err,
		StartTime: startTime, Duration: endTime.Sub(startTime),
	}

	switch {
	case err != nil && task.ctx.Err() != nil:
		m.tracker.updateStatus(task.id, &UploadProgress{
			TaskID: task.id, Status: UploadStatusCancelled, Error: err.Error(), UpdatedAt: endTime,
		})
	case err != nil:
		m.tracker.updateStatus(task.id, &UploadProgress{
			TaskID: task.id, Status: UploadStatusFailed, Error: err.Error(), UpdatedAt: endTime,
		})
	default:
		m.tracker.updateStatus(task.id, &UploadProgress{
			TaskID: task.id, BytesUploaded: size, Percentage: 100, Status: UploadStatusCompleted, UpdatedAt: endTime,
		})
	}
	m.tracker.storeResult(task.id, result)
}

func (m *asyncUploadManager) cleanupWorker() {
	defer m.wg.Done()
	ticker := time.NewTicker(asyncCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.tracker.cleanupOldStatuses(asyncCleanupMaxAge)
		}
	}
}

func newUploadStatusTracker() *uploadStatusTracker {
	return &uploadStatusTracker{
		statuses: make(map[string]*UploadProgress),
		results:  make(map[string]*AsyncUploadResult),
		cancels:  make(map[string]context.CancelFunc),
	}
}

// updateStatus merges non-zero fields of progress into the stored status.
func (t *uploadStatusTracker) updateStatus(taskID string, progress *UploadProgress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	existing, exists := t.statuses[taskID]
	if !exists {
		p := *progress
		t.statuses[taskID] = &p
		return
	}
	if existing.Status == UploadStatusCancelled && progress.Status != UploadStatusCancelled {
		return
	}
	if progress.BytesUploaded > 0 {
		existing.BytesUploaded = progress.BytesUploaded
	}
	if progress.TotalBytes > 0 {
		existing.TotalBytes = progress.TotalBytes
	}
	if progress.Percentage > 0 {
		existing.Percentage = progress.Percentage
	}
	if progress.Status != "" {
		existing.Status = progress.Status
	}
	if progress.Error != "" {
		existing.Error = progress.Error
	}
	existing.UpdatedAt = progress.UpdatedAt
}

func (t *uploadStatusTracker) getStatus(taskID string) (*UploadProgress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	progress, exists := t.statuses[taskID]
	if !exists {
		return nil, false
	}
	progressCopy := *progress
	return &progressCopy, true
}

func (t *uploadStatusTracker) setCancel(taskID string, cancel context.CancelFunc) {
	t.mu.Lock()
	t.cancels[taskID] = cancel
	t.mu.Unlock()
}

func (t *uploadStatusTracker) cancel(taskID string) {
	t.mu.RLock()
	cancel := t.cancels[taskID]
	t.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

func (t *uploadStatusTracker) storeResult(taskID string, result *AsyncUploadResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results[taskID] = result
	delete(t.cancels, taskID)
}

func (t *uploadStatusTracker) getResult(taskID string) *AsyncUploadResult {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.results[taskID]
}

func (t *uploadStatusTracker) remove(taskID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.statuses, taskID)
	delete(t.results, taskID)
	delete(t.cancels, taskID)
}

func (t *uploadStatusTracker) cleanupOldStatuses(maxAge time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	for taskID, progress := range t.statuses {
		if progress.Status.IsFinal() && now.Sub(progress.UpdatedAt) > maxAge {
			delete(t.statuses, taskID)
			delete(t.results, taskID)
			delete(t.cancels, taskID)
		}
	}
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += int64(n)
		if pr.onProgress != nil {
			pr.onProgress(pr.read)
		}
	}
	return n, err
}

var _ io.Reader = (*progressReader)(nil)

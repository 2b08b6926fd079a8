package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"spyglass-srv/internal/media"
	"spyglass-srv/internal/media/repository"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	gemini.IGemini

	mu         sync.Mutex
	err        error
	text       string
	prompts    []string
	opts       []int
	pcm        []byte
	image      []byte
	imageMime  string
	startErr   error
	starts     int
	ops        []gemini.Operation
	polls      int
	video      []byte
	downloaded []string
}

func (g *fakeGemini) Generate(ctx context.Context, prompt string, opts ...gemini.GenerateOption) (string, error) {
	g.prompts = append(g.prompts, prompt)
	g.opts = append(g.opts, len(opts))
	return g.text, g.err
}

func (g *fakeGemini) GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	return g.pcm, g.err
}

func (g *fakeGemini) EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	return g.image, g.imageMime, g.err
}

func (g *fakeGemini) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return g.text, g.err
}

func (g *fakeGemini) StartVideo(ctx context.Context, req gemini.VideoRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.starts++
	if g.startErr != nil {
		return "", g.startErr
	}
	return "operations/video-1", nil
}

func (g *fakeGemini) GetOperation(ctx context.Context, name string) (gemini.Operation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.polls
	g.polls++
	if i >= len(g.ops) {
		return gemini.Operation{Name: name}, nil
	}
	return g.ops[i], nil
}

func (g *fakeGemini) Download(ctx context.Context, uri string) ([]byte, error) {
	g.downloaded = append(g.downloaded, uri)
	return g.video, nil
}

type fakeStorage struct {
	minio.MinIO

	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	b, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := req.BucketName + "/" + req.ObjectName
	s.objects[key] = b
	s.types[key] = req.ContentType
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(b))}, nil
}

func (s *fakeStorage) DownloadFile(ctx context.Context, req *minio.DownloadRequest) (io.ReadCloser, *minio.DownloadHeaders, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[req.BucketName+"/"+req.ObjectName]
	if !ok {
		return nil, nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(b)), &minio.DownloadHeaders{}, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, bucketName+"/"+objectName)
	delete(s.types, bucketName+"/"+objectName)
	return nil
}

func (s *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "https://files.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC),
		Method:    req.Method,
	}, nil
}

type memJobs struct {
	mu   sync.Mutex
	jobs map[string]model.VideoJob
}

func (r *memJobs) Save(ctx context.Context, job model.VideoJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *memJobs) Get(ctx context.Context, id string) (model.VideoJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return model.VideoJob{}, repository.ErrJobNotFound
	}
	return job, nil
}

type fakeProducer struct {
	tasks []media.VideoJobTask
	err   error
}

func (p *fakeProducer) PublishVideoJob(ctx context.Context, task media.VideoJobTask) error {
	if p.err != nil {
		return p.err
	}
	p.tasks = append(p.tasks, task)
	return nil
}

type deps struct {
	gemini   *fakeGemini
	storage  *fakeStorage
	jobs     *memJobs
	producer *fakeProducer
}

func newTestUseCase() (*implUseCase, deps) {
	d := deps{
		gemini:   &fakeGemini{},
		storage:  newFakeStorage(),
		jobs:     &memJobs{jobs: map[string]model.VideoJob{}},
		producer: &fakeProducer{},
	}
	uc := New(log.NewNop(), d.gemini, d.storage, d.jobs, d.producer, media.Config{
		SpeechBucket:      "spyglass-speech",
		VideoBucket:       "spyglass-video",
		VideoPollInterval: time.Millisecond,
	}).(*implUseCase)
	uc.newID = func() string { return "id-1" }
	return uc, d
}

var alice = model.Scope{UserID: "alice", Role: model.RoleGuest}

func TestEditImage(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newTestUseCase()
		_, err := uc.EditImage(context.Background(), alice, media.EditImageInput{Image: []byte{1}, MimeType: "image/png", Prompt: "  "})
		assert.ErrorIs(t, err, media.ErrImageRequired)
	})

	t.Run("returns edited image", func(t *testing.T) {
		uc, d := newTestUseCase()
		d.gemini.image, d.gemini.imageMime = []byte{9, 9}, "image/png"

		o, err := uc.EditImage(context.Background(), alice, media.EditImageInput{Image: []byte{1}, MimeType: "image/jpeg", Prompt: "add a hat"})

		require.NoError(t, err)
		assert.Equal(t, []byte{9, 9}, o.Image)
		assert.Equal(t, "image/png", o.MimeType)
	})

	t.Run("collaborator failure", func(t *testing.T) {
		uc, d := newTestUseCase()
		d.gemini.err = errors.New("blocked")

		_, err := uc.EditImage(context.Background(), alice, media.EditImageInput{Image: []byte{1}, MimeType: "image/jpeg", Prompt: "x"})
		assert.ErrorIs(t, err, media.ErrGenerationFailed)
	})
}

func TestTranscribe(t *testing.T) {
	uc, d := newTestUseCase()
	d.gemini.text = " olá mundo \n"

	_, err := uc.Transcribe(context.Background(), alice, media.TranscribeInput{Audio: []byte{1}})
	assert.ErrorIs(t, err, media.ErrAudioRequired)

	o, err := uc.Transcribe(context.Background(), alice, media.TranscribeInput{Audio: []byte{1}, MimeType: "audio/webm"})
	require.NoError(t, err)
	assert.Equal(t, "olá mundo", o.Text)
}

func TestSummarize(t *testing.T) {
	uc, d := newTestUseCase()
	d.gemini.text = "Enquanto os alvos dormem..."

	_, err := uc.Summarize(context.Background(), alice, media.SummaryInput{ReportContent: " "})
	assert.ErrorIs(t, err, media.ErrReportRequired)

	o, err := uc.Summarize(context.Background(), alice, media.SummaryInput{ReportContent: "## Acme\nSEO fraco."})
	require.NoError(t, err)
	assert.Equal(t, "Enquanto os alvos dormem...", o.Summary)
	assert.Contains(t, d.gemini.prompts[0], "SEO fraco.")
	assert.Equal(t, []int{1}, d.gemini.opts)
}

func TestGenerateSpeech(t *testing.T) {
	tcs := map[string]struct {
		input   media.SpeechInput
		err     error
		upload  error
		wantErr error
	}{
		"empty text": {
			input:   media.SpeechInput{Text: "  "},
			wantErr: media.ErrTextRequired,
		},
		"unknown voice": {
			input:   media.SpeechInput{Text: "olá", Voice: "Robot"},
			wantErr: media.ErrInvalidVoice,
		},
		"synthesis failure": {
			input:   media.SpeechInput{Text: "olá"},
			err:     errors.New("quota"),
			wantErr: media.ErrGenerationFailed,
		},
		"storage failure": {
			input:   media.SpeechInput{Text: "olá"},
			upload:  errors.New("bucket missing"),
			wantErr: media.ErrStorageFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, d := newTestUseCase()
			d.gemini.pcm = []byte{0, 0, 0, 0}
			d.gemini.err = tc.err
			d.storage.uploadErr = tc.upload

			_, err := uc.GenerateSpeech(context.Background(), alice, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("stores wav and presigns it", func(t *testing.T) {
		uc, d := newTestUseCase()
		d.gemini.pcm = []byte{0x00, 0x40, 0x00, 0xC0}

		o, err := uc.GenerateSpeech(context.Background(), alice, media.SpeechInput{Text: "olá", Voice: "Puck"})

		require.NoError(t, err)
		assert.Equal(t, "Puck", o.Voice)
		assert.Equal(t, "alice/id-1.wav", o.ObjectName)
		assert.Equal(t, "https://files.local/spyglass-speech/alice/id-1.wav", o.URL)
		stored := d.storage.objects["spyglass-speech/alice/id-1.wav"]
		require.Len(t, stored, 48)
		assert.Equal(t, "RIFF", string(stored[:4]))
		assert.Equal(t, media.ContentTypeWAV, d.storage.types["spyglass-speech/alice/id-1.wav"])
		assert.Equal(t, 2*time.Second/24000, o.Duration)
	})

	t.Run("default voice", func(t *testing.T) {
		uc, d := newTestUseCase()
		d.gemini.pcm = []byte{0, 0}

		o, err := uc.GenerateSpeech(context.Background(), alice, media.SpeechInput{Text: "olá"})

		require.NoError(t, err)
		assert.Equal(t, gemini.DefaultVoice, o.Voice)
	})
}

func createJob(t *testing.T, uc *implUseCase) media.VideoJobOutput {
	t.Helper()
	o, err := uc.CreateVideoJob(context.Background(), alice, media.CreateVideoJobInput{
		Image:       []byte("png-bytes"),
		MimeType:    "image/png",
		Prompt:      "câmera lenta",
		AspectRatio: gemini.AspectLandscape,
	})
	require.NoError(t, err)
	return o
}

func TestCreateVideoJob(t *testing.T) {
	t.Run("invalid aspect ratio", func(t *testing.T) {
		uc, d := newTestUseCase()
		_, err := uc.CreateVideoJob(context.Background(), alice, media.CreateVideoJobInput{
			Image: []byte{1}, MimeType: "image/png", Prompt: "x", AspectRatio: "4:3",
		})
		assert.ErrorIs(t, err, media.ErrInvalidAspectRatio)
		assert.Empty(t, d.producer.tasks)
	})

	t.Run("queues a pending job", func(t *testing.T) {
		uc, d := newTestUseCase()

		o := createJob(t, uc)

		assert.Equal(t, model.VideoJobPending, o.Job.Status)
		assert.Equal(t, "png-bytes", string(d.storage.objects["spyglass-video/alice/id-1/source"]))
		require.Len(t, d.producer.tasks, 1)
		assert.Equal(t, media.VideoJobTask{
			JobID:       "id-1",
			Owner:       "alice",
			Prompt:      "câmera lenta",
			ImageObject: "alice/id-1/source",
			MimeType:    "image/png",
			AspectRatio: gemini.AspectLandscape,
		}, d.producer.tasks[0])
	})

	t.Run("queue failure marks the job failed", func(t *testing.T) {
		uc, d := newTestUseCase()
		d.producer.err = errors.New("channel closed")

		_, err := uc.CreateVideoJob(context.Background(), alice, media.CreateVideoJobInput{
			Image: []byte{1}, MimeType: "image/png", Prompt: "x", AspectRatio: gemini.AspectPortrait,
		})

		assert.ErrorIs(t, err, media.ErrGenerationFailed)
		assert.Equal(t, model.VideoJobFailed, d.jobs.jobs["id-1"].Status)
	})
}

func TestProcessVideoJob(t *testing.T) {
	t.Run("polls until done and stores the video", func(t *testing.T) {
		uc, d := newTestUseCase()
		createJob(t, uc)
		d.gemini.ops = []gemini.Operation{
			{Name: "operations/video-1"},
			{Name: "operations/video-1"},
			{Name: "operations/video-1", Done: true, VideoURI: "https://video/1"},
		}
		d.gemini.video = []byte("mp4")

		require.NoError(t, uc.ProcessVideoJob(context.Background(), d.producer.tasks[0]))

		job := d.jobs.jobs["id-1"]
		assert.Equal(t, model.VideoJobDone, job.Status)
		assert.Equal(t, "operations/video-1", job.Operation)
		assert.Equal(t, "alice/id-1/video.mp4", job.Object)
		assert.Equal(t, 3, d.gemini.polls)
		assert.Equal(t, "mp4", string(d.storage.objects["spyglass-video/alice/id-1/video.mp4"]))
		assert.NotContains(t, d.storage.objects, "spyglass-video/alice/id-1/source")

		o, err := uc.GetVideoJob(context.Background(), alice, media.GetVideoJobInput{JobID: "id-1"})
		require.NoError(t, err)
		assert.Equal(t, "https://files.local/spyglass-video/alice/id-1/video.mp4", o.URL)

		_, err = uc.GetVideoJob(context.Background(), model.Scope{UserID: "bob"}, media.GetVideoJobInput{JobID: "id-1"})
		assert.ErrorIs(t, err, media.ErrVideoJobNotFound)
	})

	t.Run("operation error fails the job", func(t *testing.T) {
		uc, d := newTestUseCase()
		createJob(t, uc)
		d.gemini.ops = []gemini.Operation{{Done: true, Error: "safety filter"}}

		require.NoError(t, uc.ProcessVideoJob(context.Background(), d.producer.tasks[0]))

		job := d.jobs.jobs["id-1"]
		assert.Equal(t, model.VideoJobFailed, job.Status)
		assert.Equal(t, "safety filter", job.Error)

		o, err := uc.GetVideoJob(context.Background(), alice, media.GetVideoJobInput{JobID: "id-1"})
		require.NoError(t, err)
		assert.Empty(t, o.URL)
	})

	t.Run("start failure fails the job", func(t *testing.T) {
		uc, d := newTestUseCase()
		createJob(t, uc)
		d.gemini.startErr = errors.New("invalid image")

		require.NoError(t, uc.ProcessVideoJob(context.Background(), d.producer.tasks[0]))
		assert.Equal(t, model.VideoJobFailed, d.jobs.jobs["id-1"].Status)
	})

	t.Run("redelivery resumes the started operation", func(t *testing.T) {
		uc, d := newTestUseCase()
		createJob(t, uc)
		job := d.jobs.jobs["id-1"]
		job.Status = model.VideoJobRunning
		job.Operation = "operations/earlier"
		d.jobs.jobs["id-1"] = job
		d.gemini.ops = []gemini.Operation{{Done: true, VideoURI: "https://video/2"}}

		require.NoError(t, uc.ProcessVideoJob(context.Background(), d.producer.tasks[0]))

		assert.Zero(t, d.gemini.starts)
		assert.Equal(t, []string{"https://video/2"}, d.gemini.downloaded)
		assert.Equal(t, model.VideoJobDone, d.jobs.jobs["id-1"].Status)
	})

	t.Run("finished jobs are skipped", func(t *testing.T) {
		uc, d := newTestUseCase()
		createJob(t, uc)
		job := d.jobs.jobs["id-1"]
		job.Status = model.VideoJobDone
		d.jobs.jobs["id-1"] = job

		require.NoError(t, uc.ProcessVideoJob(context.Background(), d.producer.tasks[0]))
		assert.Zero(t, d.gemini.starts)
	})

	t.Run("cancellation leaves the job running", func(t *testing.T) {
		uc, d := newTestUseCase()
		uc.cfg.VideoPollInterval = time.Hour
		createJob(t, uc)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := uc.ProcessVideoJob(ctx, d.producer.tasks[0])

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, model.VideoJobRunning, d.jobs.jobs["id-1"].Status)
	})
}

func TestGetVideoJobUnknown(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.GetVideoJob(context.Background(), alice, media.GetVideoJobInput{JobID: "nope"})
	assert.ErrorIs(t, err, media.ErrVideoJobNotFound)
}

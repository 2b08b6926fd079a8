package consumer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"spyglass-srv/config"
	"spyglass-srv/internal/media"
	rabbitDelivery "spyglass-srv/internal/media/delivery/rabbitmq"
	"spyglass-srv/pkg/log"
	pkgRabbit "spyglass-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	pkgRabbit.IChannel

	queues   []pkgRabbit.QueueArgs
	binds    []pkgRabbit.QueueBindArgs
	prefetch int
	consume  pkgRabbit.ConsumeArgs
	deliv    chan amqp.Delivery
}

func (f *fakeChannel) ExchangeDeclare(exc pkgRabbit.ExchangeArgs) error { return nil }

func (f *fakeChannel) QueueDeclare(q pkgRabbit.QueueArgs) (amqp.Queue, error) {
	f.queues = append(f.queues, q)
	return amqp.Queue{Name: q.Name}, nil
}

func (f *fakeChannel) QueueBind(b pkgRabbit.QueueBindArgs) error {
	f.binds = append(f.binds, b)
	return nil
}

func (f *fakeChannel) Qos(prefetchCount int) error {
	f.prefetch = prefetchCount
	return nil
}

func (f *fakeChannel) Consume(c pkgRabbit.ConsumeArgs) (<-chan amqp.Delivery, error) {
	f.consume = c
	return f.deliv, nil
}

type ackResult struct {
	acked, nacked, rejected, requeue bool
}

type fakeAcker struct {
	mu      sync.Mutex
	results map[uint64]ackResult
	done    chan uint64
}

func newFakeAcker() *fakeAcker {
	return &fakeAcker{results: map[uint64]ackResult{}, done: make(chan uint64, 8)}
}

func (a *fakeAcker) record(tag uint64, r ackResult) error {
	a.mu.Lock()
	a.results[tag] = r
	a.mu.Unlock()
	a.done <- tag
	return nil
}

func (a *fakeAcker) Ack(tag uint64, multiple bool) error {
	return a.record(tag, ackResult{acked: true})
}

func (a *fakeAcker) Nack(tag uint64, multiple, requeue bool) error {
	return a.record(tag, ackResult{nacked: true, requeue: requeue})
}

func (a *fakeAcker) Reject(tag uint64, requeue bool) error {
	return a.record(tag, ackResult{rejected: true, requeue: requeue})
}

type fakeUseCase struct {
	media.UseCase

	mu    sync.Mutex
	tasks []media.VideoJobTask
	err   error
}

func (f *fakeUseCase) ProcessVideoJob(ctx context.Context, task media.VideoJobTask) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	return f.err
}

func newTestConsumer(t *testing.T, uc *fakeUseCase) (*Consumer, *fakeChannel) {
	t.Helper()
	ch := &fakeChannel{deliv: make(chan amqp.Delivery, 4)}
	c, err := New(Config{
		Logger:         log.NewNop(),
		RabbitMQConfig: config.RabbitMQConfig{VideoExchange: "spyglass.media", VideoQueue: "spyglass.media.video"},
		Channel:        ch,
		UseCase:        uc,
	})
	require.NoError(t, err)
	return c, ch
}

func body(t *testing.T, m rabbitDelivery.VideoJobMessage) []byte {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return b
}

func waitAck(t *testing.T, a *fakeAcker, tag uint64) ackResult {
	t.Helper()
	select {
	case got := <-a.done:
		require.Equal(t, tag, got)
	case <-time.After(time.Second):
		t.Fatalf("delivery %d was not settled", tag)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.results[tag]
}

func TestNewValidation(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}, Channel: &fakeChannel{}})
	assert.Error(t, err)
}

func TestConsumeVideoJobs(t *testing.T) {
	uc := &fakeUseCase{}
	c, ch := newTestConsumer(t, uc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, c.ConsumeVideoJobs(ctx))

	assert.Equal(t, rabbitDelivery.DefaultPrefetchCount, ch.prefetch)
	require.Len(t, ch.queues, 2)
	assert.Equal(t, "spyglass.media.video.dead", ch.queues[0].Name)
	assert.Equal(t, "spyglass.media.video", ch.queues[1].Name)
	assert.Equal(t, "spyglass.media.dlx", ch.queues[1].DeadLetterExchange)
	require.Len(t, ch.binds, 2)
	assert.Equal(t, "spyglass.media.dlx", ch.binds[0].Exchange)
	assert.Equal(t, rabbitDelivery.RoutingKeyVideoJob, ch.binds[1].RoutingKey)
	assert.Equal(t, "spyglass.media.video", ch.consume.Queue)
	assert.False(t, ch.consume.AutoAck)

	acker := newFakeAcker()
	ch.deliv <- amqp.Delivery{
		Acknowledger: acker,
		DeliveryTag:  1,
		Body:         body(t, rabbitDelivery.VideoJobMessage{JobID: "job-1", Owner: "alice", AspectRatio: "16:9"}),
	}
	assert.Equal(t, ackResult{acked: true}, waitAck(t, acker, 1))

	ch.deliv <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 2, Body: []byte("{")}
	assert.Equal(t, ackResult{rejected: true}, waitAck(t, acker, 2))

	ch.deliv <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 3, Body: body(t, rabbitDelivery.VideoJobMessage{Owner: "alice"})}
	assert.Equal(t, ackResult{rejected: true}, waitAck(t, acker, 3))

	c.Wait()
	require.Len(t, uc.tasks, 1)
	assert.Equal(t, media.VideoJobTask{JobID: "job-1", Owner: "alice", AspectRatio: "16:9"}, uc.tasks[0])
}

func TestHandleVideoJobRequeuesOnInterrupt(t *testing.T) {
	uc := &fakeUseCase{err: context.Canceled}
	c, _ := newTestConsumer(t, uc)
	acker := newFakeAcker()

	c.handleVideoJob(context.Background(), amqp.Delivery{
		Acknowledger: acker,
		DeliveryTag:  7,
		Body:         body(t, rabbitDelivery.VideoJobMessage{JobID: "job-1", Owner: "alice"}),
	})

	assert.Equal(t, ackResult{nacked: true, requeue: true}, waitAck(t, acker, 7))
}

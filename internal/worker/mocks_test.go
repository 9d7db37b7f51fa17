package worker

import (
	"context"
	"sync"

	"basegraph.app/helpdesk/internal/queue"
)

type mockConsumer struct {
	mu       sync.Mutex
	batches  [][]queue.Message
	acked    []string
	requeued []string
	dlq      []string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.batches) == 0 {
		return []queue.Message{}, nil
	}
	batch := m.batches[0]
	m.batches = m.batches[1:]
	return batch, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked = append(m.acked, msg.ID)
	return nil
}

func (m *mockConsumer) Requeue(ctx context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requeued = append(m.requeued, msg.ID)
	return nil
}

func (m *mockConsumer) SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dlq = append(m.dlq, msg.ID)
	return nil
}

func (m *mockConsumer) snapshot() (acked, requeued, dlq []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.acked...), append([]string(nil), m.requeued...), append([]string(nil), m.dlq...)
}

type mockHandler struct {
	mu       sync.Mutex
	handleFn func(ctx context.Context, task queue.Task) error
	handled  []queue.Task
}

func (m *mockHandler) Handle(ctx context.Context, task queue.Task) error {
	m.mu.Lock()
	m.handled = append(m.handled, task)
	fn := m.handleFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, task)
	}
	return nil
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handled)
}

package queue

import (
	"context"
	"sync"

	"github.com/inno-lab/innovaid/pkg/domain/model"
)

// Memory is an in-process queue client that records every dispatched
// message. It backs local development and tests where no real delivery
// channel is configured.
type Memory struct {
	mu       sync.Mutex
	messages []*model.QueueMessage
}

func NewMemory() *Memory {
	return &Memory{}
}

// Enqueue records the message. Never fails.
func (q *Memory) Enqueue(_ context.Context, msg *model.QueueMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	copied := *msg
	q.messages = append(q.messages, &copied)
	return nil
}

// Messages returns a snapshot of everything enqueued so far, in dispatch
// order.
func (q *Memory) Messages() []*model.QueueMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]*model.QueueMessage, len(q.messages))
	copy(result, q.messages)
	return result
}

// Clear drops all recorded messages
func (q *Memory) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = nil
}

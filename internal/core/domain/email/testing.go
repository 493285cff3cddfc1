package email

import (
	"context"
	"fmt"
	"sync"
)

type FakeQueue struct {
	Queued      []QueueInput
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeQueue() *FakeQueue {
	return &FakeQueue{}
}

func (q *FakeQueue) Enqueue(ctx context.Context, input QueueInput) error {
	if q.ReturnError {
		return fmt.Errorf("could not enqueue email to %s", input.To)
	}
	if err := input.Validate(); err != nil {
		return err
	}
	q.lock.Lock()
	defer q.lock.Unlock()
	q.Queued = append(q.Queued, input)
	return nil
}

func (q *FakeQueue) QueuedCount() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.Queued)
}

func (q *FakeQueue) LastQueued() QueueInput {
	q.lock.Lock()
	defer q.lock.Unlock()
	l := len(q.Queued)
	if l == 0 {
		panic("Queued count is 0.")
	}
	return q.Queued[l-1]
}

package email

import (
	"context"
	"errors"
	c "forumaccount/internal/core/domain/common"
	"forumaccount/internal/core/domain/user"
	"time"
)

type Status int

const (
	StatusPending Status = 0
	StatusSent    Status = 1
	StatusFailed  Status = 9
)

var ErrEmptyRecipient = errors.New("recipient email is empty")

type QueueInput struct {
	To      c.Email
	Subject string
	Content string
	UserID  c.Optional[user.ID]
}

func (i QueueInput) Validate() error {
	if i.To.IsEmpty() {
		return ErrEmptyRecipient
	}
	return nil
}

type Email struct {
	ID        int64
	UserID    c.Optional[user.ID]
	To        c.Email
	Subject   string
	Content   string
	Status    Status
	Attempt   int
	CreatedAt time.Time
}

// Queue stores an email for asynchronous delivery. A nil error means the email
// was accepted by the queue, not that it was delivered.
type Queue interface {
	Enqueue(ctx context.Context, input QueueInput) error
}

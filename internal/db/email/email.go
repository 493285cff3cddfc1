package email

import (
	"context"
	"forumaccount/internal/core/domain/email"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/db"
	"time"

	"github.com/jackc/pgtype"
)

const insertEmail = `
INSERT INTO email_queue (user_id, recipient, subject, content, status, attempt, created_at)
VALUES ($1, $2, $3, $4, $5, 0, $6)`

// PgxQueue stores emails in the email_queue table. A separate mailer process
// picks pending rows up for delivery.
type PgxQueue struct {
	db  db.DBTX
	now func() time.Time
}

func NewPgxQueue(db db.DBTX, now func() time.Time) *PgxQueue {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &PgxQueue{db: db, now: now}
}

func (q *PgxQueue) Enqueue(ctx context.Context, input email.QueueInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	userID := pgtype.Int8{Status: pgtype.Null}
	if input.UserID.IsPresent {
		userID = pgtype.Int8{Int: int64(input.UserID.Value), Status: pgtype.Present}
	}
	_, err := q.db.Exec(
		ctx,
		insertEmail,
		userID,
		string(input.To),
		input.Subject,
		input.Content,
		int16(email.StatusPending),
		q.now(),
	)
	return err
}

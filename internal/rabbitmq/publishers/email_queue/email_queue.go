package emailqueue

import (
	"context"
	"forumaccount/internal/core/domain/email"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/core/domain/logging"
	"forumaccount/internal/rabbitmq/schema"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQ publishes queued emails to a durable queue via the default exchange.
type RabbitMQ struct {
	log       logging.Logger
	publisher Publisher
	queue     string
	now       func() time.Time
}

func NewRabbitMQ(log logging.Logger, publisher Publisher, queue string, now func() time.Time) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, publisher: publisher, queue: queue, now: now}
}

func (q *RabbitMQ) Enqueue(ctx context.Context, input email.QueueInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	now := q.now()
	message := schema.Email{
		ID:        uuid.NewString(),
		To:        string(input.To),
		Subject:   input.Subject,
		Content:   input.Content,
		CreatedAt: now,
	}
	if input.UserID.IsPresent {
		userID := int64(input.UserID.Value)
		message.UserID = &userID
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = q.publisher.PublishWithContext(ctx, "", q.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    message.ID,
		Timestamp:    now,
		Body:         body,
	})
	if err != nil {
		q.log.Error(ctx, "Could not publish email.", logging.Entry("queue", q.queue), logging.Entry("err", err))
		return err
	}
	q.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", q.queue),
		logging.Entry("messageID", message.ID),
		logging.Entry("userID", input.UserID),
	)
	return nil
}

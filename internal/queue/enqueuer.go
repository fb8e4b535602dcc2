package queue

import (
	"context"

	"coworking-booking/internal/notification"
)

// routing key per notification kind, e.g. notify.confirmation_to_renter
func routingKey(kind notification.Kind) string {
	return "notify." + string(kind)
}

// AMQPEnqueuer publishes notification jobs to the topic exchange.
type AMQPEnqueuer struct {
	publisher *Publisher
}

func NewAMQPEnqueuer(publisher *Publisher) *AMQPEnqueuer {
	return &AMQPEnqueuer{publisher: publisher}
}

func (e *AMQPEnqueuer) Enqueue(ctx context.Context, n notification.Notification) error {
	return e.publisher.PublishJSON(ctx, routingKey(n.Kind), n)
}

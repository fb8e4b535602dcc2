package queue

import (
	"context"
	"encoding/json"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Worker drains the notification queue and delivers each job once.
// Undeliverable jobs are acked anyway: delivery is best-effort and the
// failure already went to the jobs audit category.
type Worker struct {
	consumer *Consumer
	notifier notification.Notifier
	sink     audit.Sink
}

func NewWorker(consumer *Consumer, notifier notification.Notifier, sink audit.Sink) *Worker {
	return &Worker{consumer: consumer, notifier: notifier, sink: sink}
}

func (w *Worker) Run(ctx context.Context) error {
	deliveries, err := w.consumer.Deliveries(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, d)
			_ = d.Ack(false)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var n notification.Notification
	if err := json.Unmarshal(d.Body, &n); err != nil {
		payload, _ := json.Marshal(map[string]string{
			"routing_key": d.RoutingKey,
			"error":       err.Error(),
		})
		w.sink.Record(ctx, audit.CategoryJobs, "DecodeNotification", string(payload))
		return
	}
	notification.Deliver(ctx, w.notifier, w.sink, n)
}

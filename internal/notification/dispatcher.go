package notification

import (
	"context"
	"encoding/json"
	"time"

	"coworking-booking/internal/audit"
)

// Enqueuer accepts a notification for later delivery. Enqueue must not block
// the caller on the actual send.
type Enqueuer interface {
	Enqueue(ctx context.Context, n Notification) error
}

// Deliver renders and sends one notification with a single attempt,
// recording failures to the jobs audit category.
func Deliver(ctx context.Context, notifier Notifier, sink audit.Sink, n Notification) {
	subject, body := Render(n)
	if err := notifier.Send(ctx, n.To, subject, body); err != nil {
		payload, _ := json.Marshal(map[string]string{
			"kind":  string(n.Kind),
			"to":    n.To,
			"error": err.Error(),
		})
		sink.Record(ctx, audit.CategoryJobs, "SendNotification", string(payload))
	}
}

// LocalDispatcher delivers in-process on a goroutine. It backs queue-less
// deployments and tests; production wiring replaces it with the AMQP
// enqueuer plus a worker.
type LocalDispatcher struct {
	notifier Notifier
	sink     audit.Sink
	timeout  time.Duration
}

func NewLocalDispatcher(notifier Notifier, sink audit.Sink) *LocalDispatcher {
	return &LocalDispatcher{
		notifier: notifier,
		sink:     sink,
		timeout:  30 * time.Second,
	}
}

func (d *LocalDispatcher) Enqueue(_ context.Context, n Notification) error {
	go func() {
		// Detached from the request context: the booking response must not
		// wait for, or be failed by, delivery.
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		Deliver(ctx, d.notifier, d.sink, n)
	}()
	return nil
}

package bootstrap

import (
	"context"
	"log/slog"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/notification"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/queue"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewNotifier,
		NewEnqueuer,
	),
	fx.Invoke(StartWorker),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) notification.Notifier {
	if cfg.SMTP.Host != "" {
		return notification.NewSMTPNotifier(cfg.SMTP)
	}
	return notification.NewConsoleNotifier(logger)
}

// NewEnqueuer picks the delivery path: the AMQP publisher when a broker is
// configured, an in-process dispatcher otherwise.
func NewEnqueuer(lc fx.Lifecycle, cfg config.Config, notifier notification.Notifier, sink audit.Sink) (notification.Enqueuer, error) {
	if cfg.Queue.URL == "" {
		return notification.NewLocalDispatcher(notifier, sink), nil
	}

	publisher, err := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return queue.NewAMQPEnqueuer(publisher), nil
}

// StartWorker runs the notification consumer alongside the API when a
// broker is configured. Queue-less runs deliver in-process instead.
func StartWorker(lc fx.Lifecycle, cfg config.Config, notifier notification.Notifier, sink audit.Sink, logger *slog.Logger) error {
	if cfg.Queue.URL == "" {
		return nil
	}

	consumer, err := queue.NewConsumer(cfg.Queue.URL, cfg.Queue.Exchange, cfg.Queue.Queue, []string{"notify.*"})
	if err != nil {
		return err
	}
	worker := queue.NewWorker(consumer, notifier, sink)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := worker.Run(ctx); err != nil {
					logger.Error("notification worker stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return consumer.Close()
		},
	})
	return nil
}

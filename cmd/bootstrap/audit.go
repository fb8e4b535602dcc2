package bootstrap

import (
	"log/slog"

	"coworking-booking/internal/audit"

	"go.uber.org/fx"
)

var AuditModule = fx.Module("audit",
	fx.Provide(
		func(logger *slog.Logger) audit.Sink {
			return audit.NewSlogSink(logger)
		},
	),
)

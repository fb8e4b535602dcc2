package bootstrap

import (
	"coworking-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	ClockModule,
	AuditModule,
	QueueModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)

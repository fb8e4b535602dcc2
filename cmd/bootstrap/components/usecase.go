package components

import (
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		fx.Annotate(
			commands.NewAuthCommands,
			fx.As(new(commands.AuthCommands)),
			fx.As(new(commands.TokenValidator)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

package components

import (
	"coworking-booking/internal/infra"
	"coworking-booking/internal/infra/readstore"
	repo_impl "coworking-booking/internal/infra/repository"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			infra.NewPgUnitOfWork,
			fx.As(new(commands.UnitOfWork)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewRenterRepository,
			fx.As(new(commands.RenterRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side store for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

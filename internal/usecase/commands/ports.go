// Package commands implements the write-side use cases. Ports toward the
// persistence and delivery layers are declared here and satisfied by the
// infra packages.
package commands

import (
	"context"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/domain/renter"
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/infra"

	"github.com/google/uuid"
)

// UnitOfWork serializes a fetch-check-write sequence against everything else
// touching the same booking date.
type UnitOfWork interface {
	WithinDate(ctx context.Context, date string, fn func(tx infra.DBTX) error) error
}

type BookingRepository interface {
	Insert(ctx context.Context, tx infra.DBTX, b *booking.Booking) error
	ListSlotsByDate(ctx context.Context, tx infra.DBTX, date booking.Date) ([]booking.Interval, error)
}

type RenterRepository interface {
	FindByEmail(ctx context.Context, tx infra.DBTX, email string) (*renter.Renter, error)
	Insert(ctx context.Context, tx infra.DBTX, rec *renter.Renter) error
	Update(ctx context.Context, tx infra.DBTX, rec *renter.Renter) error
}

type UserRepository interface {
	Insert(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

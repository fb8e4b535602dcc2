package queries

import (
	"context"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/pkg/errs"
	"coworking-booking/internal/pkg/rules"

	"github.com/google/uuid"
)

// BookingView is the read model for the day listing, flattened with the
// renter's contact data.
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Type      string    `json:"type"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
}

type BookingReadStore interface {
	ListByDate(ctx context.Context, date booking.Date) ([]*BookingView, error)
}

type BookingQueries interface {
	ListBookingsForDate(ctx context.Context, date string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListBookingsForDate(ctx context.Context, date string) ([]*BookingView, error) {
	if fields := booking.ValidateDate(date); fields != nil {
		return nil, &rules.ValidationError{Fields: fields}
	}
	day, err := booking.NewDate(date)
	if err != nil {
		return nil, errs.Wrap(err, "invalid booking date")
	}
	views, err := q.readStore.ListByDate(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}

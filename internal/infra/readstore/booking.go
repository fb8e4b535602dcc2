package readstore

import (
	"context"
	"time"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// ListByDate returns the day's bookings joined with renter contact data,
// ordered by start time ascending. The whole-day result set is bounded by
// the daily capacity limit, so there is no pagination.
func (r *BookingReadStore) ListByDate(ctx context.Context, date booking.Date) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.date, b.start_time, b.end_time, b.type,
		       r.firstname, r.lastname, r.phone, r.email, r.address
		FROM bookings b
		JOIN renters r ON r.id = b.renter_id
		WHERE b.date = $1 AND b.deleted_at IS NULL
		ORDER BY b.start_time ASC
	`, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var (
			id         uuid.UUID
			day        time.Time
			start, end pgtype.Time
			kind       string
			firstname  string
			lastname   string
			phone      *string
			email      *string
			address    *string
		)
		if err := rows.Scan(&id, &day, &start, &end, &kind, &firstname, &lastname, &phone, &email, &address); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &queries.BookingView{
			ID:        id,
			Date:      booking.DateOf(day).String(),
			StartTime: pgTimeString(start),
			EndTime:   pgTimeString(end),
			Type:      kind,
			Firstname: firstname,
			Lastname:  lastname,
			Phone:     phone,
			Email:     email,
			Address:   address,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func pgTimeString(t pgtype.Time) string {
	minutes := int(t.Microseconds / (60 * 1_000_000))
	tod, err := booking.TimeOfDayFromMinutes(minutes)
	if err != nil {
		return ""
	}
	return tod.String()
}

package repository

import (
	"context"

	"coworking-booking/internal/domain/booking"
	"coworking-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRepository runs entirely inside the caller's transaction, so its
// methods take the tx instead of holding a connection.
type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Insert(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (id, renter_id, date, start_time, end_time, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
	`,
		b.ID(),
		b.RenterID(),
		b.Date().Time(),
		minutesToPgTime(b.Slot().Start().Minutes()),
		minutesToPgTime(b.Slot().End().Minutes()),
		b.Kind().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

// ListSlotsByDate returns the occupied intervals of a date ordered by start
// time. Meant to run inside the date-locked transaction so the policy checks
// see a stable snapshot.
func (r *BookingRepository) ListSlotsByDate(ctx context.Context, tx infra.DBTX, date booking.Date) ([]booking.Interval, error) {
	rows, err := tx.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE date = $1 AND deleted_at IS NULL
		ORDER BY start_time ASC
	`, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	defer rows.Close()

	var slots []booking.Interval
	for rows.Next() {
		var start, end pgtype.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slot, err := intervalFromPgTimes(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt booking slot", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slots", err)
	}
	return slots, nil
}

func minutesToPgTime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * 60 * 1_000_000, Valid: true}
}

func intervalFromPgTimes(start, end pgtype.Time) (booking.Interval, error) {
	s, err := booking.TimeOfDayFromMinutes(int(start.Microseconds / (60 * 1_000_000)))
	if err != nil {
		return booking.Interval{}, err
	}
	e, err := booking.TimeOfDayFromMinutes(int(end.Microseconds / (60 * 1_000_000)))
	if err != nil {
		return booking.Interval{}, err
	}
	return booking.NewInterval(s, e)
}

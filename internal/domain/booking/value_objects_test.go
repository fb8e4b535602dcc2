//go:build unit

package booking_test

import (
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("parses Y-m-d", func(t *testing.T) {
		d, err := booking.NewDate("2025-06-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-10", d.String())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, raw := range []string{"10-06-2025", "2025/06/10", "2025-6-10", "", "tomorrow"} {
			_, err := booking.NewDate(raw)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, raw)
		}
	})
}

func TestDateAfter(t *testing.T) {
	today := booking.DateOf(time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC))

	tomorrow, err := booking.NewDate("2025-06-11")
	require.NoError(t, err)
	same, err := booking.NewDate("2025-06-10")
	require.NoError(t, err)
	yesterday, err := booking.NewDate("2025-06-09")
	require.NoError(t, err)

	assert.True(t, tomorrow.After(today))
	assert.False(t, same.After(today))
	assert.False(t, yesterday.After(today))
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("parses H:i", func(t *testing.T) {
		tod, err := booking.NewTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9*60+30, tod.Minutes())
		assert.Equal(t, "09:30", tod.String())
	})

	t.Run("rejects bad values", func(t *testing.T) {
		for _, raw := range []string{"9:30:00", "25:00", "09:61", "half past nine", ""} {
			_, err := booking.NewTimeOfDay(raw)
			assert.ErrorIs(t, err, booking.ErrInvalidTime, raw)
		}
	})

	t.Run("minutes bounds", func(t *testing.T) {
		_, err := booking.TimeOfDayFromMinutes(-1)
		assert.ErrorIs(t, err, booking.ErrInvalidTime)
		_, err = booking.TimeOfDayFromMinutes(24 * 60)
		assert.ErrorIs(t, err, booking.ErrInvalidTime)
		tod, err := booking.TimeOfDayFromMinutes(24*60 - 1)
		require.NoError(t, err)
		assert.Equal(t, "23:59", tod.String())
	})
}

func TestParseInterval(t *testing.T) {
	t.Run("well-formed", func(t *testing.T) {
		iv, err := booking.ParseInterval("09:00", "09:45")
		require.NoError(t, err)
		assert.Equal(t, 45, iv.DurationMinutes())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := booking.ParseInterval("10:00", "09:00")
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("zero length", func(t *testing.T) {
		_, err := booking.ParseInterval("09:00", "09:00")
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

//go:build unit

package booking_test

import (
	"fmt"
	"testing"

	"coworking-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end int) booking.Interval {
	t.Helper()
	s, err := booking.TimeOfDayFromMinutes(start)
	require.NoError(t, err)
	e, err := booking.TimeOfDayFromMinutes(end)
	require.NoError(t, err)
	iv, err := booking.NewInterval(s, e)
	require.NoError(t, err)
	return iv
}

func TestExceedsCapacity(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		max      int
		want     bool
	}{
		{name: "empty day", existing: 0, max: 12, want: false},
		{name: "one below max", existing: 11, max: 12, want: false},
		{name: "at max", existing: 12, max: 12, want: true},
		{name: "above max", existing: 13, max: 12, want: true},
		{name: "max of one", existing: 1, max: 1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.ExceedsCapacity(tt.existing, tt.max))
		})
	}
}

func TestAtWarningThreshold(t *testing.T) {
	// The warning fires with exactly one submission per day: the one that
	// finds precisely threshold existing bookings.
	hits := 0
	for existing := 0; existing <= 12; existing++ {
		if booking.AtWarningThreshold(existing, 10) {
			hits++
			assert.Equal(t, 10, existing)
		}
	}
	assert.Equal(t, 1, hits)
}

func TestExceedsDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		max     int
		want    bool
	}{
		{name: "well under", minutes: 30, max: 45, want: false},
		{name: "exactly max", minutes: 45, max: 45, want: false},
		{name: "one over", minutes: 46, max: 45, want: true},
		{name: "double", minutes: 90, max: 45, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := interval(t, 9*60, 9*60+tt.minutes)
			assert.Equal(t, tt.want, booking.ExceedsDuration(slot, tt.max))
		})
	}
}

func TestOverlaps(t *testing.T) {
	existing := []booking.Interval{interval(t, 9*60, 9*60+30)} // 09:00-09:30

	tests := []struct {
		name       string
		start, end int
		want       bool
	}{
		{name: "touching boundary after", start: 9*60 + 30, end: 10 * 60, want: false},
		{name: "touching boundary before", start: 8 * 60, end: 9 * 60, want: false},
		{name: "straddles start", start: 8*60 + 45, end: 9*60 + 15, want: true},
		{name: "straddles end", start: 9*60 + 15, end: 9*60 + 45, want: true},
		{name: "contained", start: 9*60 + 10, end: 9*60 + 20, want: true},
		{name: "contains", start: 8 * 60, end: 11 * 60, want: true},
		{name: "identical", start: 9 * 60, end: 9*60 + 30, want: true},
		{name: "disjoint before", start: 7 * 60, end: 8 * 60, want: false},
		{name: "disjoint after", start: 11 * 60, end: 12 * 60, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(interval(t, tt.start, tt.end), existing))
		})
	}
}

// The three-clause overlap predicate must agree with the plain half-open
// test candidate.start < existing.end && candidate.end > existing.start for
// every pair of well-formed intervals on a small minute grid.
func TestOverlapsMatchesHalfOpenForm(t *testing.T) {
	const grid = 16

	for cs := 0; cs < grid; cs++ {
		for ce := cs + 1; ce <= grid; ce++ {
			for es := 0; es < grid; es++ {
				for ee := es + 1; ee <= grid; ee++ {
					candidate := interval(t, cs, ce)
					existing := interval(t, es, ee)

					want := cs < ee && ce > es
					got := booking.Overlaps(candidate, []booking.Interval{existing})
					if got != want {
						t.Fatalf("intervals [%d,%d) vs [%d,%d): got %v, want %v",
							cs, ce, es, ee, got, want)
					}
				}
			}
		}
	}
}

func TestOverlapsEmptyExisting(t *testing.T) {
	assert.False(t, booking.Overlaps(interval(t, 9*60, 10*60), nil))
}

func TestOverlapsScansAll(t *testing.T) {
	existing := []booking.Interval{
		interval(t, 8*60, 8*60+30),
		interval(t, 10*60, 10*60+30),
		interval(t, 14*60, 14*60+30),
	}
	for i, e := range existing {
		t.Run(fmt.Sprintf("hits slot %d", i), func(t *testing.T) {
			assert.True(t, booking.Overlaps(e, existing))
		})
	}
	assert.False(t, booking.Overlaps(interval(t, 9*60, 9*60+30), existing))
}

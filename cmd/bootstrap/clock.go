package bootstrap

import (
	"fmt"
	"time"

	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock pins the service clock to the booking timezone so the
// tomorrow-or-later rule is evaluated in the space's local day.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	return clock.NewRealClock(loc), nil
}

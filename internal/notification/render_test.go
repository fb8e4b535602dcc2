//go:build unit

package notification_test

import (
	"context"
	"errors"
	"testing"

	"coworking-booking/internal/audit"
	"coworking-booking/internal/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() notification.BookingData {
	return notification.BookingData{
		Date:      "2025-06-10",
		StartTime: "09:00",
		EndTime:   "09:30",
		Type:      "consultancy",
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "0123456789",
	}
}

func TestRender(t *testing.T) {
	t.Run("confirmation to renter", func(t *testing.T) {
		subject, body := notification.Render(notification.Notification{
			Kind: notification.KindConfirmationToRenter,
			To:   "ada@example.com",
			Data: sampleData(),
		})
		assert.Equal(t, "Your booking has been confirmed", subject)
		assert.Contains(t, body, "Date: 2025-06-10")
		assert.Contains(t, body, "Start time: 09:00")
		assert.Contains(t, body, "Booking type: Consultancy")
	})

	t.Run("confirmation to admin names the client", func(t *testing.T) {
		subject, body := notification.Render(notification.Notification{
			Kind: notification.KindConfirmationToAdmin,
			To:   "admin@coworking.local",
			Data: sampleData(),
		})
		assert.Equal(t, "A new booking has been made", subject)
		assert.Contains(t, body, "Client Ada Lovelace has made a new booking.")
	})

	t.Run("approaching limit carries the numbers", func(t *testing.T) {
		subject, body := notification.Render(notification.Notification{
			Kind:      notification.KindApproachingLimit,
			To:        "admin@coworking.local",
			Data:      sampleData(),
			Threshold: 10,
			MaxPerDay: 12,
		})
		assert.Equal(t, "Booking limit almost reached for 2025-06-10", subject)
		assert.Contains(t, body, "warning threshold of 10 out of a maximum of 12 per day")
	})
}

type failingNotifier struct {
	sent int
	err  error
}

func (f *failingNotifier) Send(_ context.Context, _, _, _ string) error {
	f.sent++
	return f.err
}

func TestDeliver(t *testing.T) {
	t.Run("failure is audited, single attempt", func(t *testing.T) {
		notifier := &failingNotifier{err: errors.New("smtp down")}
		recorder := audit.NewRecorder()

		notification.Deliver(context.Background(), notifier, recorder, notification.Notification{
			Kind: notification.KindConfirmationToAdmin,
			To:   "admin@coworking.local",
			Data: sampleData(),
		})

		assert.Equal(t, 1, notifier.sent)
		events := recorder.Events()
		require.Len(t, events, 1)
		assert.Equal(t, audit.CategoryJobs, events[0].Category)
		assert.Equal(t, "SendNotification", events[0].Operation)
		assert.Contains(t, events[0].Payload, "smtp down")
	})

	t.Run("success leaves no audit trail", func(t *testing.T) {
		notifier := &failingNotifier{}
		recorder := audit.NewRecorder()

		notification.Deliver(context.Background(), notifier, recorder, notification.Notification{
			Kind: notification.KindConfirmationToAdmin,
			To:   "admin@coworking.local",
			Data: sampleData(),
		})

		assert.Equal(t, 1, notifier.sent)
		assert.Empty(t, recorder.Events())
	})
}

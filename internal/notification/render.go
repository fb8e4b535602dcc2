package notification

import (
	"fmt"
	"strings"
)

// Render produces the subject and plain-text body for a notification.
func Render(n Notification) (subject, body string) {
	switch n.Kind {
	case KindConfirmationToRenter:
		subject = "Your booking has been confirmed"
		b := &strings.Builder{}
		fmt.Fprintf(b, "Hi,\n\nYour booking has been confirmed. Here is a summary:\n\n")
		writeBookingDetails(b, n.Data)
		fmt.Fprintf(b, "\nThank you for booking with us, see you soon.\nThe Coworking team\n")
		body = b.String()

	case KindConfirmationToAdmin:
		subject = "A new booking has been made"
		b := &strings.Builder{}
		fmt.Fprintf(b, "Hi,\n\nClient %s %s has made a new booking.\n\nBOOKING DETAILS:\n\n", n.Data.Firstname, n.Data.Lastname)
		writeBookingDetails(b, n.Data)
		fmt.Fprintf(b, "\nThe Coworking team\n")
		body = b.String()

	case KindApproachingLimit:
		subject = fmt.Sprintf("Booking limit almost reached for %s", n.Data.Date)
		body = fmt.Sprintf(
			"Hi,\n\nBookings for %s have reached the warning threshold of %d out of a maximum of %d per day.\n\nThe Coworking team\n",
			n.Data.Date, n.Threshold, n.MaxPerDay,
		)
	}
	return subject, body
}

func writeBookingDetails(b *strings.Builder, d BookingData) {
	fmt.Fprintf(b, "Firstname: %s\n", d.Firstname)
	fmt.Fprintf(b, "Lastname: %s\n", d.Lastname)
	fmt.Fprintf(b, "Date: %s\n", d.Date)
	fmt.Fprintf(b, "Start time: %s\n", d.StartTime)
	fmt.Fprintf(b, "End time: %s\n", d.EndTime)
	fmt.Fprintf(b, "Booking type: %s\n", capitalize(d.Type))
	fmt.Fprintf(b, "Email: %s\n", d.Email)
	fmt.Fprintf(b, "Phone: %s\n", d.Phone)
	fmt.Fprintf(b, "Address: %s\n", d.Address)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

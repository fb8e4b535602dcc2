// Package notification renders and delivers the booking emails. Delivery is
// fire-and-forget with a single attempt: a failed send is recorded to the
// jobs audit category and never surfaced to the booking caller.
package notification

type Kind string

const (
	KindConfirmationToRenter Kind = "confirmation_to_renter"
	KindConfirmationToAdmin  Kind = "confirmation_to_admin"
	KindApproachingLimit     Kind = "approaching_limit"
)

// BookingData is the flat payload every notification carries, mirroring the
// submitted booking fields.
type BookingData struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      string `json:"type"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
}

type Notification struct {
	Kind Kind        `json:"kind"`
	To   string      `json:"to"`
	Data BookingData `json:"data"`

	// Threshold numbers for the approaching-limit mail.
	Threshold int `json:"threshold,omitempty"`
	MaxPerDay int `json:"max_per_day,omitempty"`
}

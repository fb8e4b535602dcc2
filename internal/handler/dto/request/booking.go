package request

import (
	"coworking-booking/internal/domain/booking"
)

// CreateBookingRequest carries the raw booking fields. No binding tags:
// the rule chain validates everything so all field errors come back at once.
type CreateBookingRequest struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Type      string  `json:"type"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r CreateBookingRequest) ToSubmission() booking.Submission {
	return booking.Submission{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Type:      r.Type,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Phone:     deref(r.Phone),
		Email:     deref(r.Email),
		Address:   deref(r.Address),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

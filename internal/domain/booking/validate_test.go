//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"coworking-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = booking.DateOf(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

func validSubmission() booking.Submission {
	return booking.Submission{
		Date:      "2025-06-11",
		StartTime: "09:00",
		EndTime:   "09:30",
		Type:      "consultancy",
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Phone:     "0123456789",
		Email:     "ada@example.com",
		Address:   "Via Roma 1",
	}
}

func TestValidateSubmissionPasses(t *testing.T) {
	assert.Nil(t, booking.ValidateSubmission(validSubmission(), testToday))
}

func TestValidateSubmissionOptionalFieldsMayBeEmpty(t *testing.T) {
	sub := validSubmission()
	sub.Phone = ""
	sub.Email = ""
	sub.Address = ""
	assert.Nil(t, booking.ValidateSubmission(sub, testToday))
}

func TestValidateSubmissionFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*booking.Submission)
		field   string
		message string
	}{
		{
			name:    "missing date",
			mutate:  func(s *booking.Submission) { s.Date = "" },
			field:   "date",
			message: "The date field is required.",
		},
		{
			name:    "bad date format",
			mutate:  func(s *booking.Submission) { s.Date = "11/06/2025" },
			field:   "date",
			message: "The date format must be Y-m-d.",
		},
		{
			name:    "today is too early",
			mutate:  func(s *booking.Submission) { s.Date = "2025-06-10" },
			field:   "date",
			message: "The date must be tomorrow or later.",
		},
		{
			name:    "past date",
			mutate:  func(s *booking.Submission) { s.Date = "2025-06-09" },
			field:   "date",
			message: "The date must be tomorrow or later.",
		},
		{
			name:    "missing start time",
			mutate:  func(s *booking.Submission) { s.StartTime = "" },
			field:   "start_time",
			message: "The start time field is required.",
		},
		{
			name:    "bad start time format",
			mutate:  func(s *booking.Submission) { s.StartTime = "9am" },
			field:   "start_time",
			message: "The start time format must be H:i.",
		},
		{
			name:    "end not after start",
			mutate:  func(s *booking.Submission) { s.StartTime = "10:00"; s.EndTime = "10:00" },
			field:   "end_time",
			message: "The end time must be after the start time.",
		},
		{
			name:    "end before start",
			mutate:  func(s *booking.Submission) { s.StartTime = "10:00"; s.EndTime = "09:00" },
			field:   "end_time",
			message: "The end time must be after the start time.",
		},
		{
			name:    "unknown type",
			mutate:  func(s *booking.Submission) { s.Type = "party" },
			field:   "type",
			message: "The type must be one of consultancy, assistance, commercial.",
		},
		{
			name:    "missing firstname",
			mutate:  func(s *booking.Submission) { s.Firstname = "" },
			field:   "firstname",
			message: "The firstname field is required.",
		},
		{
			name:    "firstname too long",
			mutate:  func(s *booking.Submission) { s.Firstname = strings.Repeat("a", 256) },
			field:   "firstname",
			message: "The firstname may not be greater than 255 characters.",
		},
		{
			name:    "non-numeric phone",
			mutate:  func(s *booking.Submission) { s.Phone = "12345abcde" },
			field:   "phone",
			message: "The phone, if present, must be numeric.",
		},
		{
			name:    "short phone",
			mutate:  func(s *booking.Submission) { s.Phone = "12345" },
			field:   "phone",
			message: "The phone number, if present, must be at least 10 characters.",
		},
		{
			name:    "bad email",
			mutate:  func(s *booking.Submission) { s.Email = "not-an-email" },
			field:   "email",
			message: "The email, if present, must be a valid email address.",
		},
		{
			name:    "address too long",
			mutate:  func(s *booking.Submission) { s.Address = strings.Repeat("a", 256) },
			field:   "address",
			message: "The address, if present, may not be greater than 255 characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			fields := booking.ValidateSubmission(sub, testToday)
			require.NotNil(t, fields)
			assert.Contains(t, fields[tt.field], tt.message)
		})
	}
}

// Every violation is reported, not just the first one found.
func TestValidateSubmissionCollectsAllViolations(t *testing.T) {
	fields := booking.ValidateSubmission(booking.Submission{}, testToday)
	require.NotNil(t, fields)

	for _, field := range []string{"date", "start_time", "end_time", "type", "firstname", "lastname"} {
		assert.NotEmpty(t, fields[field], field)
	}
	// Optional fields do not complain about absence.
	assert.Empty(t, fields["phone"])
	assert.Empty(t, fields["email"])
	assert.Empty(t, fields["address"])
}

func TestValidateSubmissionSkipsCrossFieldOnFormatErrors(t *testing.T) {
	sub := validSubmission()
	sub.Date = "not-a-date"
	sub.EndTime = "whenever"

	fields := booking.ValidateSubmission(sub, testToday)
	require.NotNil(t, fields)
	assert.NotContains(t, fields["date"], "The date must be tomorrow or later.")
	assert.NotContains(t, fields["end_time"], "The end time must be after the start time.")
}

func TestValidateDate(t *testing.T) {
	assert.Nil(t, booking.ValidateDate("2025-06-10"))
	// Past dates are fine for listing.
	assert.Nil(t, booking.ValidateDate("1999-01-01"))

	fields := booking.ValidateDate("")
	require.NotNil(t, fields)
	assert.Contains(t, fields["date"], "The date field is required.")

	fields = booking.ValidateDate("10-06-2025")
	require.NotNil(t, fields)
	assert.Contains(t, fields["date"], "The date format must be Y-m-d.")
}

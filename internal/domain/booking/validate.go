package booking

import (
	"coworking-booking/internal/pkg/rules"
)

// Submission carries the raw field values of a booking request before any
// parsing. Validation messages match the ones the API has always returned.
type Submission struct {
	Date      string
	StartTime string
	EndTime   string
	Type      string
	Firstname string
	Lastname  string
	Phone     string
	Email     string
	Address   string
}

// ValidateSubmission runs the full per-field rule chain and the cross-field
// checks, collecting every violation. today is the submitter's current date;
// bookings are accepted from tomorrow onward.
func ValidateSubmission(sub Submission, today Date) rules.FieldErrors {
	fields := rules.Collect(
		rules.Field{Name: "date", Value: sub.Date, Rules: []rules.Rule{
			rules.Required("The date field is required."),
			rules.TimeLayout(DateLayout, "The date format must be Y-m-d."),
		}},
		rules.Field{Name: "start_time", Value: sub.StartTime, Rules: []rules.Rule{
			rules.Required("The start time field is required."),
			rules.TimeLayout(TimeLayout, "The start time format must be H:i."),
		}},
		rules.Field{Name: "end_time", Value: sub.EndTime, Rules: []rules.Rule{
			rules.Required("The end time field is required."),
			rules.TimeLayout(TimeLayout, "The end time format must be H:i."),
		}},
		rules.Field{Name: "type", Value: sub.Type, Rules: []rules.Rule{
			rules.Required("The type field is required."),
			rules.OneOf(Types(), "The type must be one of consultancy, assistance, commercial."),
		}},
		rules.Field{Name: "firstname", Value: sub.Firstname, Rules: []rules.Rule{
			rules.Required("The firstname field is required."),
			rules.MaxLen(255, "The firstname may not be greater than 255 characters."),
		}},
		rules.Field{Name: "lastname", Value: sub.Lastname, Rules: []rules.Rule{
			rules.Required("The lastname field is required."),
			rules.MaxLen(255, "The lastname may not be greater than 255 characters."),
		}},
		rules.Field{Name: "phone", Value: sub.Phone, Rules: []rules.Rule{
			rules.Optional(rules.Numeric("The phone, if present, must be numeric.")),
			rules.Optional(rules.MinLen(10, "The phone number, if present, must be at least 10 characters.")),
		}},
		rules.Field{Name: "email", Value: sub.Email, Rules: []rules.Rule{
			rules.Optional(rules.Email("The email, if present, must be a valid email address.")),
			rules.MaxLen(255, "The email, if present, may not be greater than 255 characters."),
		}},
		rules.Field{Name: "address", Value: sub.Address, Rules: []rules.Rule{
			rules.MaxLen(255, "The address, if present, may not be greater than 255 characters."),
		}},
	)

	add := func(field, msg string) {
		if fields == nil {
			fields = rules.FieldErrors{}
		}
		fields[field] = append(fields[field], msg)
	}

	// Cross-field rules run only on values whose formats already passed.
	if len(fields["date"]) == 0 {
		if date, err := NewDate(sub.Date); err == nil && !date.After(today) {
			add("date", "The date must be tomorrow or later.")
		}
	}
	if len(fields["start_time"]) == 0 && len(fields["end_time"]) == 0 {
		start, err1 := NewTimeOfDay(sub.StartTime)
		end, err2 := NewTimeOfDay(sub.EndTime)
		if err1 == nil && err2 == nil && !end.After(start) {
			add("end_time", "The end time must be after the start time.")
		}
	}

	return fields
}

// ValidateDate is the shape check for the list endpoint, which accepts any
// well-formed date, past ones included.
func ValidateDate(date string) rules.FieldErrors {
	return rules.Collect(
		rules.Field{Name: "date", Value: date, Rules: []rules.Rule{
			rules.Required("The date field is required."),
			rules.TimeLayout(DateLayout, "The date format must be Y-m-d."),
		}},
	)
}

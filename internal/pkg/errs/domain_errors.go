package errs

import "errors"

// Sentinel errors shared between usecase layers and the HTTP surface.
var (
	// Booking policy errors
	ErrCapacityExceeded = errors.New("maximum number of bookings reached for the given date")
	ErrDurationExceeded = errors.New("booking duration exceeds maximum allowed duration")
	ErrBookingOverlap   = errors.New("booking time overlaps with existing bookings")

	// Booking persistence errors
	ErrRenterNotFound  = errors.New("renter not found")
	ErrBookingNotFound = errors.New("booking not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenGeneration    = errors.New("token generation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Package user models the API account used to authenticate clients. It is
// deliberately small: the booking core treats identity as an external
// concern and only needs enough to issue and validate tokens.
package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidName  = errors.New("invalid name")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	if value == "" || len(value) > 255 || !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	createdAt    time.Time
}

func NewUser(name string, email Email, passwordHash string) (*User, error) {
	if name == "" || len(name) > 255 {
		return nil, ErrInvalidName
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, passwordHash string, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }

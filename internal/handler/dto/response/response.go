// Package response holds the wire shapes of the API. They are kept exactly
// as clients have always received them: a status discriminator plus either
// a message, a field-error map, or the auth payload.
package response

import (
	"coworking-booking/internal/pkg/rules"
	"coworking-booking/internal/usecase/queries"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(msg string) Message {
	return Message{Status: StatusSuccess, Message: msg}
}

func Error(msg string) Message {
	return Message{Status: StatusError, Message: msg}
}

// FieldFailure is the 422 body: every violated rule of every field.
type FieldFailure struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Fields  rules.FieldErrors `json:"fields"`
}

func Invalid(msg string, fields rules.FieldErrors) FieldFailure {
	return FieldFailure{Status: StatusError, Message: msg, Fields: fields}
}

type Authorisation struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

type AuthSuccess struct {
	Status        string            `json:"status"`
	Message       string            `json:"message,omitempty"`
	User          *queries.UserView `json:"user"`
	Authorisation Authorisation     `json:"authorisation"`
}

func Authorised(msg string, user *queries.UserView, token string) AuthSuccess {
	return AuthSuccess{
		Status:        StatusSuccess,
		Message:       msg,
		User:          user,
		Authorisation: Authorisation{Token: token, Type: "bearer"},
	}
}

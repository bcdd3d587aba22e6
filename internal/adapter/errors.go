package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL is returned by [NewPostgRESTAdapter] when the
	// configured base URL is empty or malformed.
	ErrInvalidBaseURL = errors.New("invalid data API base URL")

	// ErrLocationNotSaved is returned by AddUserLocation when the API answers
	// with a non-2xx status.
	ErrLocationNotSaved = errors.New("location not saved")

	// ErrMissingUserID is returned when a location has to be written for a
	// created user the API returned without an id.
	ErrMissingUserID = errors.New("created user has no id")
)

// CreationError is returned by CreateUser when the data API rejects the
// registration.
type CreationError struct {
	// StatusCode is the HTTP status answered by the API.
	StatusCode int

	// Message is the "message" field of the JSON error body, or the raw body
	// text when there is none.
	Message string
}

// Error implements error.
func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create user: %s", e.Message)
}

package common

import (
	"errors"
	"strings"
)

var (
	// Transport / server errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrInvalidResponse marks a 2xx response whose body could not be
	// decoded or failed record validation.
	ErrInvalidResponse = errors.New("invalid server response")

	// Client-side flow errors.
	ErrNotAuthenticated = errors.New("authentication required")
	ErrValidation       = errors.New("validation error")
	ErrClosed           = errors.New("view closed")

	// ErrLocalStorage marks a failure of the local database.
	ErrLocalStorage = errors.New("local storage error")
)

// ValidationError is returned when input is rejected locally, before any
// network call. Messages are shown to the user as-is.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ResponseError describes a request the server rejected with a non-2xx status.
// Message is the server-provided error text when present, otherwise an
// operation-specific fallback.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return e.Message
}

// Unwrap maps well-known status codes onto sentinels so callers can use errors.Is.
func (e *ResponseError) Unwrap() error {
	switch e.StatusCode {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	case 502, 503, 504:
		return ErrUnavailable
	}
	return nil
}

// UserMessage renders err as the text shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	var re *ResponseError
	if errors.As(err, &re) {
		return re.Message
	}

	switch {
	case errors.Is(err, ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, ErrClosed):
		return "request cancelled"
	case errors.Is(err, ErrLocalStorage):
		return "local data could not be read"
	}

	return err.Error()
}

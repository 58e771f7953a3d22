package pastebin

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrTransport is returned when the service answers a non-2xx status.
	ErrTransport
	// ErrAuthentication is returned when the service rejects a login.
	ErrAuthentication
	// ErrValidation is returned when an argument fails local validation,
	// before any request is made.
	ErrValidation
	// ErrAPI is returned when the service answers 200 with an error body,
	// such as a create response that is not a paste URL.
	ErrAPI
	// ErrParse is returned when a response cannot be decoded.
	ErrParse
)

// Error represents an error from the Pastebin client or API.
type Error struct {
	Code    ErrorCode
	Message string

	// Status is the HTTP status code for ErrTransport errors, 0 otherwise.
	Status int

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("pastebin: %s: %v", e.Message, e.cause)
	}
	return fmt.Sprintf("pastebin: %s", e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsTransport returns true if the error indicates a non-2xx HTTP response.
func IsTransport(err error) bool {
	return hasCode(err, ErrTransport)
}

// IsAuthentication returns true if the error indicates rejected credentials.
func IsAuthentication(err error) bool {
	return hasCode(err, ErrAuthentication)
}

// IsValidation returns true if the error indicates an argument rejected
// before any network call.
func IsValidation(err error) bool {
	return hasCode(err, ErrValidation)
}

// IsAPI returns true if the error indicates an error body from the service.
func IsAPI(err error) bool {
	return hasCode(err, ErrAPI)
}

// IsParse returns true if the error indicates a malformed response.
func IsParse(err error) bool {
	return hasCode(err, ErrParse)
}

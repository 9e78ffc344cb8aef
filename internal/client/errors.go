package client

import (
	"errors"
	"fmt"
)

// Kind classifies every error the repository client can surface. Consumers
// pattern-match this single tagged shape instead of probing nested fields.
type Kind string

const (
	// KindValidation is a local precondition failure. It never reaches the network.
	KindValidation Kind = "validation"
	// KindNotFound means the backend reported the referenced record does not exist.
	KindNotFound Kind = "not_found"
	// KindNetwork is a transport-level failure (connection refused, timeout).
	KindNetwork Kind = "network"
	// KindServer is any non-2xx backend response other than 404.
	KindServer Kind = "server"
)

// Error is the single error variant produced at the repository client boundary.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Status  int
	cause   error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// NewValidationError builds a local validation failure.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func notFoundError(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Status: 404}
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
}

func serverError(status int, code, message string) *Error {
	return &Error{Kind: KindServer, Code: code, Message: message, Status: status}
}

// KindOf returns the kind of err, or "" if err is not a client error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsNotFound reports whether err is a backend not-found failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is a local precondition failure.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

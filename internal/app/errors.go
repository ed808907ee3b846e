package app

import (
	"errors"
	"fmt"
)

// ErrorKind classifies service failures so the transport layer can pick a
// status code and a fixed client message.
type ErrorKind string

const (
	KindInvalidInput        ErrorKind = "invalid_input"
	KindPredictionFailed    ErrorKind = "prediction_failed"
	KindUpstreamInvalid     ErrorKind = "upstream_invalid"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
)

// Error wraps an underlying cause with the operation and kind.
// Message is safe to show to clients; Err is for operator logs only.
type Error struct {
	Op      string
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func newError(op string, kind ErrorKind, message string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Message: message, Err: cause}
}

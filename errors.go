package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNilClient is returned when a method is called on a nil [Client].
	ErrNilClient = errors.New("log client is nil")

	// ErrEmptyBatch is returned by [Client.SendBatch] when no entries are given.
	ErrEmptyBatch = errors.New("log entries list cannot be empty")
)

// ValidationError reports an entry that failed validation. It is returned
// before any request is made and is never retried.
type ValidationError struct {
	// Field is the offending JSON field name, or empty when the entry itself
	// is missing.
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BatchValidationError reports the first invalid entry of a batch.
type BatchValidationError struct {
	Index int
	Err   *ValidationError
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("invalid log entry at index %d: %s", e.Index, e.Err.Message)
}

func (e *BatchValidationError) Unwrap() error {
	return e.Err
}

// FailureKind classifies a [TransportError].
type FailureKind int

const (
	// FailureUnknown is any failure that does not fit the other kinds.
	FailureUnknown FailureKind = iota
	// FailureHTTP means the server responded with a non-2xx status.
	FailureHTTP
	// FailureNetwork means no response was received.
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureHTTP:
		return "http"
	case FailureNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// TransportError is a single failed attempt as reported by a [Transport].
type TransportError struct {
	Kind FailureKind

	// StatusCode and Message are set for FailureHTTP.
	StatusCode int
	Message    string

	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case FailureHTTP:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	case FailureNetwork:
		return "Network error: " + e.cause()
	default:
		return "Request error: " + e.cause()
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) cause() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "no response received"
}

// RetryExhaustedError is returned when every attempt to send an entry failed.
// Attempts is the number of transport calls made and Last is the failure of
// the final one.
type RetryExhaustedError struct {
	Attempts int
	Last     *TransportError

	// ctxErr is set when the caller's context ended the sequence early.
	ctxErr error
}

func (e *RetryExhaustedError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("Failed to send log after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("Failed to send log after %d attempts: %s", e.Attempts, e.Last.Error())
}

func (e *RetryExhaustedError) Unwrap() []error {
	var errs []error
	if e.Last != nil {
		errs = append(errs, e.Last)
	}
	if e.ctxErr != nil {
		errs = append(errs, e.ctxErr)
	}
	return errs
}

// asTransportError returns err as a *TransportError, wrapping anything a
// custom transport returned that is not already classified.
func asTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	return &TransportError{Kind: FailureUnknown, Err: err}
}

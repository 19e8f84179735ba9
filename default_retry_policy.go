package client

import (
	"context"
	"errors"
	"net/http"
)

// RetryPolicy decides whether a failed attempt may be followed by another
// one. It is consulted only while attempts remain.
type RetryPolicy func(err *TransportError) bool

// RetryAlways is the default [RetryPolicy]. Every failure is retried until
// the configured number of attempts is used up, including HTTP 4xx responses
// that will fail again.
func RetryAlways(_ *TransportError) bool {
	return true
}

// RetryTransientOnly retries network failures, HTTP 408, 429 and 5xx. It does
// not retry other 4xx responses, context cancellation or deadline exceeded.
//
// Supply it via [WithRetryPolicy] to fail fast on rejected entries.
func RetryTransientOnly(err *TransportError) bool {
	if err == nil {
		return false
	}

	// Don't retry on context cancellation or deadline exceeded
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	switch err.Kind {
	case FailureHTTP:
		return err.StatusCode == http.StatusRequestTimeout ||
			err.StatusCode == http.StatusTooManyRequests ||
			err.StatusCode >= 500
	case FailureNetwork:
		return true
	default:
		return false
	}
}

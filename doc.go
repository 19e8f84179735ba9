// Package client provides an HTTP client for a log ingest API.
//
// The client validates log entries, posts them as JSON to the /logs endpoint
// through [github.com/go-resty/resty/v2] and retries failed attempts a fixed
// number of times with a constant delay.
//
// # Basic Usage
//
//	c := client.New("my-api-key",
//	    client.WithRetryAttempts(5),
//	    client.WithAppName("billing"),
//	    client.WithAppUUID(client.NewAppUUID()),
//	)
//
//	if err := c.Info(ctx, "invoice created", "", ""); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. Settings
// may also be read from a file and LOGSHIP_ environment variables with
// [LoadConfig] and passed to [NewFromConfig].
//
// # Validation
//
// Every entry must carry a non-empty timestamp, level, message, app_name and
// app_uuid, and the timestamp must parse as an ISO 8601 date-time. Invalid
// entries are rejected with a *[ValidationError] before any request is made.
// [Client.SendBatch] validates the whole batch first and reports the index of
// the first invalid entry in a *[BatchValidationError].
//
// # Retry Behaviour
//
// Each entry is attempted up to [WithRetryAttempts] times in total, waiting
// [WithRetryDelay] between attempts. By default [RetryAlways] retries every
// failure, including 4xx responses. Supply [RetryTransientOnly] via
// [WithRetryPolicy] to stop on client errors. When all attempts fail a
// *[RetryExhaustedError] reports the number of attempts and the last
// failure, e.g.
//
//	Failed to send log after 3 attempts: HTTP 400: Bad Request
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. [WithDebug] traces every attempt; without a logger it
// writes to standard error.
package client

package client

import (
	"strings"
	"time"
)

// DefaultBaseURL is the production ingest endpoint.
const DefaultBaseURL = "https://api.logship.dev"

const (
	logsPath            = "/logs"
	defaultAPIKeyHeader = "X-API-Key"
)

type Option func(*Options)

// Options holds the resolved configuration of a [Client]. It is built once by
// [New] and never changed afterwards.
type Options struct {
	baseURL          string
	timeout          time.Duration
	retryAttempts    int
	retryDelay       time.Duration
	debug            bool
	requestLogger    RequestLogger
	loggerSet        bool
	retryPolicy      RetryPolicy
	requestHeaders   map[string]string
	apiKeyHeader     string
	transport        Transport
	batchConcurrency int
	appName          string
	appUUID          string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:          DefaultBaseURL,
		timeout:          5 * time.Second,
		retryAttempts:    3,
		retryDelay:       time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      RetryAlways,
		apiKeyHeader:     defaultAPIKeyHeader,
		batchConcurrency: -1,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryAttempts sets the total number of attempts per entry, including
// the first one.
func WithRetryAttempts(attempts int) Option {
	return func(o *Options) {
		if attempts >= 1 {
			o.retryAttempts = attempts
		}
	}
}

// WithRetryDelay sets the fixed wait between consecutive attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}

// WithDebug enables per-attempt tracing through the request logger.
func WithDebug(enabled bool) Option {
	return func(o *Options) {
		o.debug = enabled
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
			o.loggerSet = true
		}
	}
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, o.apiKeyHeader) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithAPIKeyHeader changes the header the API key is sent in.
func WithAPIKeyHeader(header string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)
		if header != "" {
			o.apiKeyHeader = header
		}
	}
}

// WithTransport replaces the default resty-based transport.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithBatchConcurrency limits how many entries of a batch are in flight at
// once. Zero or a negative value means no limit.
func WithBatchConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.batchConcurrency = n
		} else {
			o.batchConcurrency = -1
		}
	}
}

// WithAppName sets the app_name used when a call passes an empty one.
func WithAppName(name string) Option {
	return func(o *Options) {
		o.appName = name
	}
}

// WithAppUUID sets the app_uuid used when a call passes an empty one.
func WithAppUUID(id string) Option {
	return func(o *Options) {
		o.appUUID = id
	}
}

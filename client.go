package client

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// Client sends log entries to the ingest API. It is safe for concurrent use.
type Client struct {
	baseURL   string
	endpoint  string
	options   Options
	transport Transport
	logger    RequestLogger
	sleep     func(ctx context.Context, d time.Duration) error
}

// New creates a client authenticating with apiKey. Invalid option values are
// ignored and the defaults retained.
func New(apiKey string, opts ...Option) *Client {
	o := newClientOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.debug && !o.loggerSet {
		o.requestLogger = NewWriterLogger(os.Stderr)
	}

	if o.transport == nil {
		o.transport = newRestyTransport(apiKey, o)
	}

	return &Client{
		baseURL:   o.baseURL,
		endpoint:  o.baseURL + logsPath,
		options:   *o,
		transport: o.transport,
		logger:    o.requestLogger,
		sleep:     sleepContext,
	}
}

// BaseURL returns the resolved base URL of the ingest API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the URL entries are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateEntry builds an entry like the package level [CreateEntry], filling
// an empty appName or appUUID from [WithAppName] and [WithAppUUID].
func (c *Client) CreateEntry(level Level, message, appName, appUUID string, timestamp ...string) LogEntry {
	if appName == "" {
		appName = c.options.appName
	}
	if appUUID == "" {
		appUUID = c.options.appUUID
	}
	return CreateEntry(level, message, appName, appUUID, timestamp...)
}

// Send validates entry and posts it, retrying failed attempts. A
// *ValidationError is returned without any request being made; a
// *RetryExhaustedError is returned once all attempts have failed.
func (c *Client) Send(ctx context.Context, entry LogEntry) error {
	if c == nil {
		return ErrNilClient
	}

	if err := ValidateEntry(&entry); err != nil {
		if c.options.debug {
			c.logger.Debugf("log entry rejected: %v", err)
		}
		return err
	}

	return c.sendWithRetry(ctx, entry)
}

// Log builds an entry with the given level and sends it.
func (c *Client) Log(ctx context.Context, level Level, message, appName, appUUID string, timestamp ...string) error {
	if c == nil {
		return ErrNilClient
	}
	return c.Send(ctx, c.CreateEntry(level, message, appName, appUUID, timestamp...))
}

func (c *Client) Debug(ctx context.Context, message, appName, appUUID string, timestamp ...string) error {
	return c.Log(ctx, LevelDebug, message, appName, appUUID, timestamp...)
}

func (c *Client) Info(ctx context.Context, message, appName, appUUID string, timestamp ...string) error {
	return c.Log(ctx, LevelInfo, message, appName, appUUID, timestamp...)
}

func (c *Client) Warn(ctx context.Context, message, appName, appUUID string, timestamp ...string) error {
	return c.Log(ctx, LevelWarn, message, appName, appUUID, timestamp...)
}

func (c *Client) Error(ctx context.Context, message, appName, appUUID string, timestamp ...string) error {
	return c.Log(ctx, LevelError, message, appName, appUUID, timestamp...)
}

func (c *Client) Fatal(ctx context.Context, message, appName, appUUID string, timestamp ...string) error {
	return c.Log(ctx, LevelFatal, message, appName, appUUID, timestamp...)
}

// SendBatch validates every entry before sending any of them, then sends all
// entries concurrently, each with its own retries. It waits for every send to
// finish and returns the first failure observed.
func (c *Client) SendBatch(ctx context.Context, entries []LogEntry) error {
	if c == nil {
		return ErrNilClient
	}

	if len(entries) == 0 {
		return ErrEmptyBatch
	}

	for i := range entries {
		if err := ValidateEntry(&entries[i]); err != nil {
			return &BatchValidationError{Index: i, Err: err.(*ValidationError)}
		}
	}

	if c.options.debug {
		c.logger.Debugf("sending batch of %d log entries", len(entries))
	}

	var g errgroup.Group
	g.SetLimit(c.options.batchConcurrency)

	for _, entry := range entries {
		g.Go(func() error {
			return c.sendWithRetry(ctx, entry)
		})
	}

	return g.Wait()
}

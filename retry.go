package client

import (
	"context"
	"time"
)

// sendWithRetry posts entry until one attempt succeeds, the configured number
// of attempts is used up, the retry policy gives up or ctx is done. The wait
// between attempts is fixed and never follows the last attempt.
func (c *Client) sendWithRetry(ctx context.Context, entry LogEntry) error {
	var last *TransportError

	attempt := 1
	for {
		if c.options.debug {
			c.logger.Debugf("sending log to %s: attempt=%d, maxAttempts=%d, level=%s", c.endpoint, attempt, c.options.retryAttempts, entry.Level)
		}

		resp, err := c.transport.Post(ctx, c.endpoint, entry)
		if err == nil {
			if c.options.debug {
				c.logger.Debugf("log sent: attempt=%d, status=%d", attempt, statusCode(resp))
			}
			return nil
		}

		last = asTransportError(err)

		if attempt >= c.options.retryAttempts || !c.options.retryPolicy(last) {
			break
		}

		if c.options.debug {
			c.logger.Debugf("attempt %d failed; retrying in %v: %v", attempt, c.options.retryDelay, last)
		}

		if err := c.sleep(ctx, c.options.retryDelay); err != nil {
			exhausted := &RetryExhaustedError{Attempts: attempt, Last: last, ctxErr: err}
			c.logger.Warnf("%v (%v)", exhausted, err)
			return exhausted
		}
		attempt++
	}

	exhausted := &RetryExhaustedError{Attempts: attempt, Last: last}
	c.logger.Warnf("%v", exhausted)
	return exhausted
}

func statusCode(resp *Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package client

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Transport performs a single POST of an entry. Implementations must be safe
// for concurrent use; a [Client] shares one Transport across all sends.
//
// A failed attempt should be reported as a *[TransportError]. Any other
// error is treated as [FailureUnknown].
type Transport interface {
	Post(ctx context.Context, url string, entry LogEntry) (*Response, error)
}

// Response describes a successful (2xx) POST.
type Response struct {
	StatusCode int
	Body       []byte
}

// restyTransport is the default [Transport].
type restyTransport struct {
	client *resty.Client
}

var _ Transport = (*restyTransport)(nil)

func newRestyTransport(apiKey string, o *Options) *restyTransport {
	rc := resty.New().
		SetTimeout(o.timeout).
		SetRetryCount(0).
		SetLogger(o.requestLogger).
		SetHeaders(o.requestHeaders)

	if apiKey != "" {
		rc.SetHeader(o.apiKeyHeader, apiKey)
	}

	return &restyTransport{client: rc}
}

func (t *restyTransport) Post(ctx context.Context, url string, entry LogEntry) (*Response, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(entry).
		Post(url)
	if err != nil {
		return nil, classifyRequestError(err)
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{
			Kind:       FailureHTTP,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(resp.StatusCode(), resp.Body()),
		}
	}

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

// classifyRequestError maps an error raised before any response was read.
func classifyRequestError(err error) *TransportError {
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return &TransportError{Kind: FailureNetwork, Err: err}
	}
	return &TransportError{Kind: FailureUnknown, Err: err}
}

// errorMessage extracts the server-supplied message from an error body. It
// prefers a JSON "message" field, then "error", then the raw body and falls
// back to the status text.
func errorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, field := range []string{"message", "error"} {
			if v := gjson.GetBytes(body, field); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "(empty error body)"
}

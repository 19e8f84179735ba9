package client

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// scriptedTransport returns the scripted errors in order, then succeeds.
type scriptedTransport struct {
	mu       sync.Mutex
	failures []error
	fail     func(entry LogEntry) error
	calls    []LogEntry
}

func (s *scriptedTransport) Post(_ context.Context, _ string, entry LogEntry) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, entry)

	if s.fail != nil {
		if err := s.fail(entry); err != nil {
			return nil, err
		}
		return &Response{StatusCode: 200}, nil
	}

	if len(s.failures) > 0 {
		err := s.failures[0]
		s.failures = s.failures[1:]
		return nil, err
	}
	return &Response{StatusCode: 200}, nil
}

func (s *scriptedTransport) entries() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]LogEntry(nil), s.calls...)
}

func (s *scriptedTransport) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// sleepRecorder replaces the client's wait between attempts.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()

	return ctx.Err()
}

func (r *sleepRecorder) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]time.Duration(nil), r.delays...)
}

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
	debugs []string
}

func (l *recordingLogger) Errorf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warnf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Debugf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) debugCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.debugs)
}

func (l *recordingLogger) warnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns)
}

func newTestClient(transport Transport, opts ...Option) (*Client, *sleepRecorder) {
	rec := &sleepRecorder{}
	c := New("test-key", append([]Option{WithTransport(transport)}, opts...)...)
	c.sleep = rec.sleep
	return c, rec
}

func validEntry() LogEntry {
	return LogEntry{
		Timestamp: "2026-01-18T12:00:00.000Z",
		Level:     LevelInfo,
		Message:   "user signed in",
		AppName:   "auth-service",
		AppUUID:   "6f1c2b9e-2b59-4a8e-9d7a-0f3f0e3b6a11",
	}
}

func networkError(msg string) *TransportError {
	return &TransportError{Kind: FailureNetwork, Err: fmt.Errorf("%s", msg)}
}

package client

import (
	"fmt"
	"io"
	"sync"
)

// RequestLogger is the interface used by [Client] for logging send attempts
// and errors. It matches resty's logger interface and is installed on the
// default transport as well. Implement this interface to integrate with your
// logging library and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// WriterLogger is a [RequestLogger] that writes one prefixed line per message
// to an io.Writer. It is safe for concurrent use.
type WriterLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLogger returns a [WriterLogger] writing to w. [New] installs one on
// os.Stderr when debug mode is enabled without a logger.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

func (l *WriterLogger) Errorf(format string, v ...any) {
	l.print("[ERROR] ", format, v...)
}

func (l *WriterLogger) Warnf(format string, v ...any) {
	l.print("[WARN] ", format, v...)
}

func (l *WriterLogger) Debugf(format string, v ...any) {
	l.print("[DEBUG] ", format, v...)
}

func (l *WriterLogger) print(prefix, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = fmt.Fprintln(l.w, prefix+fmt.Sprintf(format, v...))
}

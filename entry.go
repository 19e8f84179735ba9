package client

import (
	"time"

	"github.com/google/uuid"
)

// Level is the severity attached to a [LogEntry]. The ingest API accepts any
// non-empty value; the constants below are the conventional set.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

// TimestampLayout is the layout used for timestamps stamped by [CreateEntry].
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// LogEntry is a single log record as accepted by the ingest API.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	AppName   string `json:"app_name"`
	AppUUID   string `json:"app_uuid"`
}

// CreateEntry builds a [LogEntry]. The current time is used unless a
// non-empty timestamp is supplied. No validation is performed.
func CreateEntry(level Level, message, appName, appUUID string, timestamp ...string) LogEntry {
	ts := ""
	if len(timestamp) > 0 {
		ts = timestamp[0]
	}
	if ts == "" {
		ts = FormatTimestamp(time.Now())
	}

	return LogEntry{
		Timestamp: ts,
		Level:     level,
		Message:   message,
		AppName:   appName,
		AppUUID:   appUUID,
	}
}

// FormatTimestamp renders t in UTC using [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewAppUUID returns a random identifier suitable for [LogEntry.AppUUID].
func NewAppUUID() string {
	return uuid.NewString()
}

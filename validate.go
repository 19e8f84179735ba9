package client

import "time"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidateEntry checks that all required fields of entry are set and that
// its timestamp parses. Fields are checked in wire order and the first
// violation is returned as a *ValidationError.
func ValidateEntry(entry *LogEntry) error {
	if entry == nil {
		return &ValidationError{Message: "log entry must be a non-nil object"}
	}

	fields := []struct {
		name  string
		value string
	}{
		{"timestamp", entry.Timestamp},
		{"level", string(entry.Level)},
		{"message", entry.Message},
		{"app_name", entry.AppName},
		{"app_uuid", entry.AppUUID},
	}

	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{
				Field:   f.name,
				Message: "missing or invalid required field: " + f.name,
			}
		}
	}

	if !validTimestamp(entry.Timestamp) {
		return &ValidationError{Field: "timestamp", Message: "invalid timestamp format"}
	}

	return nil
}

func validTimestamp(ts string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, ts); err == nil {
			return true
		}
	}
	return false
}

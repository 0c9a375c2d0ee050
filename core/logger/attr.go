package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// UserID creates an attribute for user identifiers.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// SessionID creates an attribute for derived session identifiers.
// Session IDs are one-way digests, safe to log; raw tokens never are.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// Username creates an attribute for usernames.
func Username(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("username", name)
}

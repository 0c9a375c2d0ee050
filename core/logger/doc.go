// Package logger provides slog construction from environment configuration
// plus attribute helpers for consistent structured logging keys.
//
// Attribute helpers use the empty Attr pattern for nil safety: passing a nil
// error or empty identifier produces an attribute slog discards, so call
// sites need no conditionals:
//
//	log.Warn("session renewal failed",
//		logger.SessionID(sess.ID),
//		logger.Error(err))
//
// Construction reads LOG_LEVEL and LOG_FORMAT:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "json"})
package logger

// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON (default) or text records and is supplied to the Fx container by App;
// the config resolver and its providers log through the same logger.
package logging

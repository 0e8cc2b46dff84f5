// Package xlog holds the logging defaults shared by the builders.
package xlog

import "log/slog"

var discard = slog.New(slog.DiscardHandler)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return discard
}

// Or returns l, or the discarding logger when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}
	return l
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package logging builds the slog loggers used by the command line tool and
// the HTTP API. The scheduling library itself never logs.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a logger writing to stderr, leaving stdout to program
// output such as tables and CSV. The format is "text" or "json".
func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter returns a logger writing to w.
func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return NewLoggerWithWriter(slog.LevelError, "text", io.Discard)
}

// ParseLevel converts a level name to a slog.Level, falling back to info for
// names it does not recognise.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

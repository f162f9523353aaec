// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes server and its client.
//
// Every entry is JSON with a "role" field naming the binary, a timestamp
// and a "func" field holding the short name of the calling function.
// Request handlers never build loggers themselves; they take the one the
// trace-id middleware put into the request context via FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New returns a logger tagged with role that writes JSON lines to w.
// It resets the global level to debug; call SetLevel afterwards to narrow it.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = callerName

	return &Logger{
		Logger: zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger is New writing to stdout, used by the server.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger writes to stderr so stdout stays free for command output.
func NewClientLogger(role string) *Logger {
	return New(os.Stderr, role)
}

// SetLevel applies a level name such as "info" globally.
// An empty name is a no-op.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromContext returns the logger attached to ctx. Without one the result
// is disabled, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromRequest is FromContext for r.Context().
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// callerName turns "github.com/x/y/internal/http.(*Handler).Login" into
// "http.(*Handler).Login".
func callerName(pc uintptr, file string, line int) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return fmt.Sprintf("%s:%d", path.Base(file), line)
	}

	return path.Base(fn.Name())
}

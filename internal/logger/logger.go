// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the mailer service and mailerctl.
//
// *Logger embeds zerolog.Logger, so the usual level methods are available
// directly. Request handlers take their logger from the request context with
// [FromRequest]; the trace-id middleware puts it there.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application logger.
type Logger struct {
	zerolog.Logger
}

const (
	// ComponentField tags entries of the credential subsystem and the
	// transport configurator.
	ComponentField = "component"

	// Component is the value of ComponentField; operators grep for it when
	// diagnosing encryption failures and SMTP fallbacks.
	Component = "simple-smtp-mailer"

	callerField  = "func"
	clientLogDir = "logs"
)

// NewLogger returns a JSON logger on stdout. Every entry carries role, a
// timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return NewWriterLogger(os.Stdout, role)
}

// NewClientLogger appends to a "logs" file next to the executable so CLI
// output stays clean. It falls back to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var w io.Writer = os.Stdout

	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), clientLogDir)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			w = f
		}
	}

	return NewWriterLogger(w, role)
}

// NewWriterLogger is [NewLogger] writing to w.
func NewWriterLogger(w io.Writer, role string) *Logger {
	configureGlobals()

	return &Logger{
		zerolog.New(w).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be given extra fields without
// touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger with ComponentField set to name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str(ComponentField, name).Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx, or zerolog's default logger
// when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides leveled, key-value structured logging on top of
// log/slog, with a package-context convention used across the codebase:
//
//	var logger = log.WithContext("pkg", "scheduler")
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

const (
	// LevelTrace sits below slog's debug level. Used for very chatty
	// diagnostics that are off by default.
	LevelTrace = slog.Level(-8)

	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Logger is the leveled logging interface used throughout the codebase.
type Logger interface {
	Trace(msg string, ctx ...any)
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)

	// With returns a logger that includes the given attributes in every
	// record.
	With(ctx ...any) Logger
}

var (
	rootLevel = func() *slog.LevelVar {
		v := new(slog.LevelVar)
		v.Set(LevelInfo)
		return v
	}()
	root atomic.Pointer[slog.Logger]
)

func init() {
	root.Store(slog.New(NewTextHandler(os.Stderr)))
}

// SetHandler replaces the handler of the root logger. The swap applies to
// every logger, including those created before the call.
func SetHandler(h slog.Handler) {
	root.Store(slog.New(h))
}

// SetLevel adjusts the minimum level of the handlers created by this package.
func SetLevel(l slog.Level) {
	rootLevel.Set(l)
}

// NewTextHandler returns a human-readable handler honoring the package level.
func NewTextHandler(w *os.File) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: rootLevel})
}

// NewJSONHandler returns a JSON handler honoring the package level.
func NewJSONHandler(w *os.File) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: rootLevel})
}

// FromLegacyLevel maps the 0..4 verbosity scale used by the CLI onto slog
// levels.
func FromLegacyLevel(lvl int) slog.Level {
	switch lvl {
	case 0:
		return LevelError
	case 1:
		return LevelWarn
	case 2:
		return LevelInfo
	case 3:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// WithContext returns a logger carrying the given attributes, typically the
// owning package name.
func WithContext(ctx ...any) Logger {
	return &logger{ctx: ctx}
}

// logger keeps its attributes locally and resolves the root logger on every
// write. Package-level loggers are created during program init, before the
// CLI had a chance to install its handler; late binding makes handler swaps
// reach them.
type logger struct {
	ctx []any
}

func (l *logger) write(level slog.Level, msg string, kv []any) {
	attrs := make([]any, 0, len(l.ctx)+len(kv))
	attrs = append(attrs, l.ctx...)
	attrs = append(attrs, kv...)
	root.Load().Log(context.Background(), level, msg, attrs...)
}

func (l *logger) Trace(msg string, ctx ...any) { l.write(LevelTrace, msg, ctx) }
func (l *logger) Debug(msg string, ctx ...any) { l.write(LevelDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...any)  { l.write(LevelInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...any)  { l.write(LevelWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...any) { l.write(LevelError, msg, ctx) }

func (l *logger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	return &logger{ctx: merged}
}

// Package logging configures the slog logger used across the batch engine.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much is logged
type Options struct {
	// Debug enables debug-level records
	Debug bool
	// Quiet drops the stderr handler entirely; file logging is unaffected
	Quiet bool
	// LogFile enables a rotating file sink at the given path
	LogFile string
}

// New builds a logger according to opts. With no file sink and Quiet set,
// records are discarded.
func New(opts Options) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var handlers []slog.Handler
	if !opts.Quiet {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	if opts.LogFile != "" {
		handlers = append(handlers, slog.NewTextHandler(newRotatingWriter(opts.LogFile), &slog.HandlerOptions{Level: level}))
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	case 1:
		return slog.New(handlers[0])
	default:
		return slog.New(&multiHandler{handlers: handlers})
	}
}

// newRotatingWriter creates the rotating file sink, with limits overridable
// through environment variables.
func newRotatingWriter(path string) io.Writer {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,  // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	if v := os.Getenv("GITBATCH_LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writer.MaxSize = n
		}
	}
	if v := os.Getenv("GITBATCH_LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			writer.MaxBackups = n
		}
	}
	if v := os.Getenv("GITBATCH_LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			writer.MaxAge = n
		}
	}

	return writer
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

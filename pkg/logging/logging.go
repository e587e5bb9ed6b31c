// Package logging configures slog loggers for the command line tools:
// a JSON or charmbracelet text handler, attributes carried on the context,
// and rotating log files.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey struct{}

// Logger builds a logger writing to w, JSON when json is set, otherwise
// human readable text. Attributes added with AppendCtx are included in
// every record logged with that context.
func Logger(w io.Writer, json bool, level slog.Level) *slog.Logger {
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		h = log.NewWithOptions(w, log.Options{
			Level:           log.Level(level),
			ReportTimestamp: true,
		})
	}
	return slog.New(&ContextHandler{Handler: h})
}

// RotatingFile returns a writer that rotates path once it reaches maxMB
// megabytes, keeping a few compressed backups
func RotatingFile(path string, maxMB int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxMB,
		MaxBackups: 3,
		Compress:   true,
	}
}

// ParseLevel reads DEBUG, INFO, WARN or ERROR, case insensitively
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

// AppendCtx returns a context carrying attrs in addition to those already
// on parent
func AppendCtx(parent context.Context, attrs ...slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	existing, _ := parent.Value(ctxKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(parent, ctxKey{}, merged)
}

// ContextHandler adds the attributes carried by a record's context
type ContextHandler struct {
	slog.Handler
}

// Handle adds the context attributes to r
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context handling on derived handlers
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context handling on derived handlers
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// TidyHandler wraps an slog.Handler and rewrites string attribute
// values that start with the user's home directory, replacing the
// prefix with "~".
//
// Design decision: We use a handler wrapper rather than a custom
// logger because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites keep logging full paths; presentation is centralized
type TidyHandler struct {
	// handler is the underlying slog handler that receives tidied records.
	handler slog.Handler

	// home is the home directory prefix to shorten. Resolved once at
	// construction.
	home string
}

// NewTidyHandler creates a TidyHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. If the home
// directory cannot be resolved, paths pass through unchanged.
func NewTidyHandler(handler slog.Handler) *TidyHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &TidyHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *TidyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle tidies the record's attributes and passes it on.
func (h *TidyHandler) Handle(ctx context.Context, r slog.Record) error {
	tidied := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		tidied.AddAttrs(h.tidyAttr(a))
		return true
	})
	return h.handler.Handle(ctx, tidied)
}

// WithAttrs returns a new handler with the given attributes added,
// tidied first.
func (h *TidyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	tidiedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		tidiedAttrs[i] = h.tidyAttr(a)
	}
	return &TidyHandler{handler: h.handler.WithAttrs(tidiedAttrs), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *TidyHandler) WithGroup(name string) slog.Handler {
	return &TidyHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// tidyAttr shortens a single attribute, recursively handling groups.
func (h *TidyHandler) tidyAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		tidiedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			tidiedAttrs[i] = h.tidyAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(tidiedAttrs...)}
	}

	if h.home != "" && a.Value.Kind() == slog.KindString {
		val := a.Value.String()
		if val == h.home {
			return slog.String(a.Key, "~")
		}
		if strings.HasPrefix(val, h.home+string(os.PathSeparator)) {
			return slog.String(a.Key, "~"+val[len(h.home):])
		}
	}

	return a
}

// NewLogger creates a slog.Logger writing text output to w.
// When verbose is true the level is Debug; otherwise only warnings and
// errors are logged. Path attributes are tidied.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTidyHandler(textHandler))
}

// NewJSONLogger creates a slog.Logger writing JSON output to w.
// Useful for structured log aggregation. Path attributes are tidied.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	jsonHandler := slog.NewJSONHandler(w, opts)
	return slog.New(NewTidyHandler(jsonHandler))
}

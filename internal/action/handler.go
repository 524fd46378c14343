package action

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Handler is a slog.Handler writing one workflow command per record.
type Handler struct {
	level slog.Leveler
	attrs slog.Handler // renders attributes only
	buf   *bytes.Buffer
	mu    *sync.Mutex
	out   io.Writer
}

// NewHandler returns a Handler writing to w. A nil opts logs at info level.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	buf := &bytes.Buffer{}

	return &Handler{
		level: level,
		attrs: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// Remove time, level, and message keys.
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey) {
					return slog.Attr{}
				}
				return a
			},
		}),
		buf: buf,
		mu:  &sync.Mutex{},
		out: w,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()

	if err := h.attrs.Handle(ctx, r); err != nil {
		return err
	}

	text := r.Message
	if attrs := strings.TrimSuffix(h.buf.String(), "\n"); attrs != "" {
		if text != "" {
			text += " "
		}
		text += attrs
	}

	_, err := io.WriteString(h.out, command(r.Level, text)+"\n")

	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = h.attrs.WithAttrs(attrs)

	return &h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.attrs = h.attrs.WithGroup(name)

	return &h2
}

// command formats text as the workflow command for level. Info and below
// debug are plain lines.
func command(level slog.Level, text string) string {
	switch {
	case level >= slog.LevelError:
		return "::error::" + escapeData(text)
	case level >= slog.LevelWarn:
		return "::warning::" + escapeData(text)
	case level >= slog.LevelInfo:
		return text
	default:
		return "::debug::" + escapeData(text)
	}
}

// escapeData escapes the characters the runner treats specially in command data.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

// escapeProperty escapes a command property value.
func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}

package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/go-chi/httplog/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	MaxSize    = 100
	MaxBackups = 3
	MaxAge     = 28
)

type Options struct {
	Level   string
	Format  string // "json" or "console"
	File    string // rotated JSON log file, empty disables it
	App     string
	Version string
	Env     string
}

// New builds the process logger. The returned closer flushes the log file, if any.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	logFormat := httplog.SchemaECS.Concise(false)
	handlerOpts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	}

	var handlers []slog.Handler
	switch strings.ToLower(opts.Format) {
	case "console":
		handlers = append(handlers, NewConsoleHandler(os.Stdout, level))
	case "", "json":
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, handlerOpts))
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		logFile := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSize,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAge,
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(logFile, handlerOpts))
		closer = logFile
	}

	var handler slog.Handler = handlers[0]
	if len(handlers) > 1 {
		handler = fanoutHandler(handlers)
	}

	logger := slog.New(handler).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)
	return logger, closer, nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanoutHandler sends each record to every handler.
type fanoutHandler []slog.Handler

func (f fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// ConsoleHandler writes one colored line per record, for local development.
type ConsoleHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []string
	group string
}

func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	return &ConsoleHandler{w: w, level: level}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var colorFn func(format string, args ...interface{}) string
	switch {
	case r.Level >= slog.LevelError:
		colorFn = color.New(color.FgRed).Sprintf
	case r.Level >= slog.LevelWarn:
		colorFn = color.New(color.FgYellow).Sprintf
	case r.Level >= slog.LevelInfo:
		colorFn = color.New(color.FgGreen).Sprintf
	default:
		colorFn = color.New(color.FgCyan).Sprintf
	}

	attrs := append([]string{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.format(a))
		return true
	})

	message := r.Message
	if len(attrs) > 0 {
		message = message + " " + strings.Join(attrs, " ")
	}

	_, err := fmt.Fprintf(h.w, "%s %s %s\n",
		color.New(color.FgBlue).Sprintf("%s", r.Time.Format("2006-01-02 15:04:05.000")),
		colorFn("%-6s", r.Level.String()),
		message,
	)
	return err
}

func (h *ConsoleHandler) format(a slog.Attr) string {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return fmt.Sprintf("%s=%v", key, a.Value)
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string{}, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.format(a))
	}
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es la interfaz que usan router, middleware y handlers.
// Los fields van como map para no acoplar a los call sites con slog.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Output por defecto os.Stdout.
	Output io.Writer
}

type slogLogger struct {
	l *slog.Logger
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	hopts := &slog.HandlerOptions{Level: opts.Level.slog()}

	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(out, hopts)
	default:
		h = slog.NewTextHandler(out, hopts)
	}

	l := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		l = l.With("app", app)
	}
	return &slogLogger{l: l}
}

// Nop descarta todo (tests).
func Nop() Logger {
	return New(Options{Level: Error, Output: io.Discard})
}

func (s *slogLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return s
	}
	return &slogLogger{l: s.l.With(attrs(fields)...)}
}

func (s *slogLogger) Debug(msg string, fields map[string]any) { s.log(Debug, msg, fields) }
func (s *slogLogger) Info(msg string, fields map[string]any)  { s.log(Info, msg, fields) }
func (s *slogLogger) Warn(msg string, fields map[string]any)  { s.log(Warn, msg, fields) }
func (s *slogLogger) Error(msg string, fields map[string]any) { s.log(Error, msg, fields) }

func (s *slogLogger) log(lvl Level, msg string, fields map[string]any) {
	s.l.Log(context.Background(), lvl.slog(), msg, attrs(fields)...)
}

// attrs ordena las keys para salida estable (útil en tests/logs).
func attrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

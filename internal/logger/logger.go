// Package logger scopes zerolog output to the parts of a swatchy run: the
// component doing the work, the theme being resolved, and the files written.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Keys stamped by the scoping methods.
const (
	KeyComponent = "component"
	KeyTheme     = "theme"
	KeyPath      = "path"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level   string
	Console bool
	Writer  io.Writer
}

// Logger writes entries scoped to a component, theme or path. A nil *Logger
// discards everything, so callers never need to check before logging.
type Logger struct {
	zl zerolog.Logger
}

// New builds the root logger. Scope it with ForComponent before handing it out.
func New(opts Options) (*Logger, error) {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ForComponent scopes entries to a subsystem such as "cli" or "export".
func (l *Logger) ForComponent(name string) *Logger {
	return l.scope(KeyComponent, name)
}

// ForTheme scopes entries to the theme being resolved.
func (l *Logger) ForTheme(name string) *Logger {
	return l.scope(KeyTheme, name)
}

// ForPath scopes entries to a document or output location.
func (l *Logger) ForPath(path string) *Logger {
	return l.scope(KeyPath, path)
}

func (l *Logger) scope(key, value string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

// Debug logs msg with alternating key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.zl.Debug(), msg, kv)
}

// Info logs msg with alternating key/value pairs.
func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.zl.Info(), msg, kv)
}

// Warn logs msg with alternating key/value pairs.
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	write(l.zl.Warn(), msg, kv)
}

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	write(event, msg, kv)
}

func write(event *zerolog.Event, msg string, kv []any) {
	if len(kv) > 0 {
		event = event.Fields(kv)
	}
	event.Msg(msg)
}

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// Logger wraps zerolog for the CLI's operational logs. Output defaults to
// stderr so command results on stdout stay machine-readable.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Info writes an informational entry. keyvals are alternating keys and values.
func (l *Logger) Info(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), keyvals).Msg(msg)
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), keyvals).Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string, keyvals ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), keyvals).Msg(msg)
}

// Error writes an error entry including the supplied error context.
func (l *Logger) Error(err error, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, keyvals).Msg(msg)
}

func withFields(event *zerolog.Event, keyvals []any) *zerolog.Event {
	if len(keyvals) == 0 {
		return event
	}
	return event.Fields(keyvals)
}

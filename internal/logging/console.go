// Package logging builds the human-readable console that debug-mode theme
// diagnostics are written to.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

// Options configures the charmbracelet/log console.
type Options struct {
	Writer       io.Writer
	Level        string
	TimeFormat   string
	ReportCaller bool
	Formatter    cblog.Formatter
	Prefix       string
	Component    string
	Fields       map[string]interface{}
}

// Console implements theme.Console on top of charmbracelet/log.
type Console struct {
	logger *cblog.Logger
	fields []interface{}
}

// New creates a Console with the supplied options. Output defaults to stderr.
func New(opts Options) (*Console, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.DebugLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: opts.TimeFormat != "",
		ReportCaller:    opts.ReportCaller,
		Formatter:       opts.Formatter,
		Prefix:          opts.Prefix,
		Fields:          mapToFields(opts.Fields),
	})

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &Console{logger: base, fields: fields}, nil
}

// Debug implements theme.Console.
func (c *Console) Debug(msg interface{}, keyvals ...interface{}) {
	c.log(cblog.DebugLevel, msg, keyvals)
}

// Info implements theme.Console.
func (c *Console) Info(msg interface{}, keyvals ...interface{}) {
	c.log(cblog.InfoLevel, msg, keyvals)
}

// Warn implements theme.Console.
func (c *Console) Warn(msg interface{}, keyvals ...interface{}) {
	c.log(cblog.WarnLevel, msg, keyvals)
}

// Error implements theme.Console.
func (c *Console) Error(msg interface{}, keyvals ...interface{}) {
	c.log(cblog.ErrorLevel, msg, keyvals)
}

// With derives a Console with persistent fields.
func (c *Console) With(keyvals ...interface{}) *Console {
	if c == nil {
		return nil
	}
	next := make([]interface{}, len(c.fields), len(c.fields)+len(keyvals))
	copy(next, c.fields)
	return &Console{logger: c.logger, fields: append(next, keyvals...)}
}

func (c *Console) log(level cblog.Level, msg interface{}, keyvals []interface{}) {
	if c == nil || c.logger == nil {
		return
	}
	payload := mergeFields(c.fields, keyvals)

	switch level {
	case cblog.DebugLevel:
		c.logger.Debug(msg, payload...)
	case cblog.WarnLevel:
		c.logger.Warn(msg, payload...)
	case cblog.ErrorLevel:
		c.logger.Error(msg, payload...)
	default:
		c.logger.Info(msg, payload...)
	}
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens key/value lists, later keys overriding earlier ones
// while keeping first-seen order.
func mergeFields(base []interface{}, additions []interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0)

	process := func(values []interface{}) {
		for i := 0; i+1 < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok || key == "" {
				continue
			}
			if _, exists := store[key]; !exists {
				order = append(order, key)
			}
			store[key] = values[i+1]
		}
	}

	process(base)
	process(additions)

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}

var _ theme.Console = (*Console)(nil)

package theme

import (
	"fmt"
	"strings"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// Channel names a diagnostic stream.
type Channel int

const (
	ChannelDebug Channel = iota
	ChannelInfo
	ChannelWarning
	ChannelError
)

func (c Channel) String() string {
	switch c {
	case ChannelDebug:
		return "debug"
	case ChannelInfo:
		return "info"
	case ChannelWarning:
		return "warning"
	default:
		return "error"
	}
}

// Sink receives the raw arguments of a diagnostic.
type Sink func(args ...any)

// Sinks holds one optional callback per channel.
type Sinks struct {
	Debug   Sink
	Info    Sink
	Warning Sink
	Error   Sink
}

func (s Sinks) forChannel(c Channel) Sink {
	switch c {
	case ChannelDebug:
		return s.Debug
	case ChannelInfo:
		return s.Info
	case ChannelWarning:
		return s.Warning
	default:
		return s.Error
	}
}

// Console is the human-readable log used in debug mode. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Console interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

type policy struct {
	console bool
	raise   bool
	sink    bool
}

var (
	report = policy{sink: true}
	loud   = policy{console: true, sink: true}
	raise  = policy{raise: true}
)

var policies = map[Mode]map[Channel]policy{
	ModeDebug:      {ChannelDebug: loud, ChannelInfo: loud, ChannelWarning: loud, ChannelError: loud},
	ModeStrict:     {ChannelDebug: report, ChannelInfo: report, ChannelWarning: raise, ChannelError: raise},
	ModeProduction: {ChannelDebug: report, ChannelInfo: report, ChannelWarning: report, ChannelError: report},
	ModeNone:       {ChannelDebug: report, ChannelInfo: report, ChannelWarning: report, ChannelError: report},
}

// Error reports a theme content error. In strict mode it returns a ThemeError.
func (r *Resolver) Error(args ...any) error {
	return r.emit(ChannelError, nil, args)
}

// Warning reports a suspicious theme value. In strict mode it returns a ThemeError.
func (r *Resolver) Warning(args ...any) error {
	return r.emit(ChannelWarning, nil, args)
}

// Info reports an informational message. It never fails.
func (r *Resolver) Info(args ...any) {
	_ = r.emit(ChannelInfo, nil, args)
}

// Debug reports a debugging message. It never fails.
func (r *Resolver) Debug(args ...any) {
	_ = r.emit(ChannelDebug, nil, args)
}

func (r *Resolver) emit(channel Channel, cause error, args []any) error {
	p := policies[r.mode][channel]
	msg := joinMessage(args)

	if p.console && r.console != nil {
		keyvals := []interface{}{"mode", r.mode.String()}
		switch channel {
		case ChannelDebug:
			r.console.Debug(msg, keyvals...)
		case ChannelInfo:
			r.console.Info(msg, keyvals...)
		case ChannelWarning:
			r.console.Warn(msg, keyvals...)
		default:
			r.console.Error(msg, keyvals...)
		}
	}

	if p.raise {
		return tonalerrors.NewThemeError(channel.String(), msg, cause)
	}

	if p.sink {
		if sink := r.sinks.forChannel(channel); sink != nil {
			sink(args...)
		}
	}
	return nil
}

func joinMessage(args []any) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, " ")
}

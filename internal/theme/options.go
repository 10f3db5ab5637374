package theme

// Option configures a Resolver.
type Option func(*Resolver)

// WithMode sets the diagnostic mode.
func WithMode(mode Mode) Option {
	return func(r *Resolver) {
		if _, ok := modeNames[mode]; !ok {
			mode = ModeNone
		}
		r.mode = mode
	}
}

// WithModeName sets the diagnostic mode from its name; unknown names select ModeNone.
func WithModeName(name string) Option {
	return WithMode(ParseMode(name))
}

// WithSinks installs diagnostic callbacks.
func WithSinks(sinks Sinks) Option {
	return func(r *Resolver) {
		r.sinks = sinks
	}
}

// WithConsole replaces the debug-mode console. A nil console silences it.
func WithConsole(console Console) Option {
	return func(r *Resolver) {
		r.console = console
	}
}

package theme

import "strings"

// Mode selects how diagnostics are reported.
type Mode int

const (
	// ModeNone is used when no valid mode was supplied. Sinks fire, nothing is logged or raised.
	ModeNone Mode = iota
	// ModeDebug logs diagnostics to the console and fires sinks.
	ModeDebug
	// ModeStrict turns error and warning diagnostics into ThemeErrors.
	ModeStrict
	// ModeProduction fires sinks only.
	ModeProduction
)

var modeNames = map[Mode]string{
	ModeNone:       "none",
	ModeDebug:      "debug",
	ModeStrict:     "strict",
	ModeProduction: "production",
}

// ParseMode maps a mode name to a Mode. Unknown names yield ModeNone.
func ParseMode(name string) Mode {
	norm := strings.ToLower(strings.TrimSpace(name))
	for mode, n := range modeNames {
		if n == norm {
			return mode
		}
	}
	return ModeNone
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return modeNames[ModeNone]
}

// ModeNames lists the accepted mode names.
func ModeNames() []string {
	return []string{"debug", "strict", "production", "none"}
}

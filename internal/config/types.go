package config

// FileName is the project settings file looked up in the working directory.
const FileName = ".tonal.yaml"

// Settings captures how the CLI locates and resolves a theme.
type Settings struct {
	Theme    string   `yaml:"theme,omitempty" validate:"omitempty,theme_path"`
	Overlays []string `yaml:"overlays,omitempty" validate:"omitempty,dive,required,theme_path"`
	Mode     string   `yaml:"mode,omitempty" validate:"omitempty,oneof=debug strict production none"`
	LogLevel string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		Mode:     "production",
		LogLevel: "info",
	}
}

// Merge returns s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	if override.Theme != "" {
		s.Theme = override.Theme
	}
	if len(override.Overlays) > 0 {
		s.Overlays = append([]string(nil), override.Overlays...)
	}
	if override.Mode != "" {
		s.Mode = override.Mode
	}
	if override.LogLevel != "" {
		s.LogLevel = override.LogLevel
	}
	return s
}

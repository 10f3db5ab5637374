package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	envTheme    = "TONAL_THEME"
	envOverlays = "TONAL_OVERLAYS"
	envMode     = "TONAL_MODE"
	envLogLevel = "TONAL_LOG_LEVEL"
)

// FromEnv reads TONAL_THEME, TONAL_OVERLAYS (path-list separated), TONAL_MODE
// and TONAL_LOG_LEVEL. A variable that is set but empty is an error.
func FromEnv() (Settings, error) {
	var s Settings
	var err error

	if s.Theme, err = readOptional(envTheme); err != nil {
		return Settings{}, err
	}

	overlays, err := readOptional(envOverlays)
	if err != nil {
		return Settings{}, err
	}
	if overlays != "" {
		s.Overlays = filepath.SplitList(overlays)
	}

	mode, err := readOptional(envMode)
	if err != nil {
		return Settings{}, err
	}
	s.Mode = strings.ToLower(mode)

	level, err := readOptional(envLogLevel)
	if err != nil {
		return Settings{}, err
	}
	s.LogLevel = strings.ToLower(level)

	return s, nil
}

func readOptional(key string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return "", nil
	}
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	return strings.TrimSpace(raw), nil
}

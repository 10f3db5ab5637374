package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads settings from path and validates them. Relative theme and
// overlay paths are resolved against the file's directory.
func ParseFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, tonalerrors.NewParseError(path, 0, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, tonalerrors.NewParseError(path, extractLine(err), err)
	}

	dir := filepath.Dir(path)
	s.Theme = relativeTo(dir, s.Theme)
	for i, overlay := range s.Overlays {
		s.Overlays[i] = relativeTo(dir, overlay)
	}

	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Discover loads FileName from dir when present. A missing file yields zero
// Settings and no error.
func Discover(dir string) (Settings, error) {
	path := filepath.Join(dir, FileName)
	s, err := ParseFile(path)
	if err != nil {
		var parseErr *tonalerrors.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, err
	}
	return s, nil
}

// Resolve combines defaults, the project file in dir, the environment and
// explicit flag values, in increasing order of precedence.
func Resolve(dir string, flags Settings) (Settings, error) {
	file, err := Discover(dir)
	if err != nil {
		return Settings{}, err
	}

	env, err := FromEnv()
	if err != nil {
		return Settings{}, err
	}

	s := Defaults().Merge(file).Merge(env).Merge(flags)
	if err := Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

package theme

import (
	"fmt"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// Style is a CSS-like style object. Values are strings, numbers, booleans,
// nil, slices or nested mappings.
type Style map[string]any

// AsStyle converts a decoded value into a Style. Anything that is not a
// mapping is a configuration error.
func AsStyle(v any) (Style, error) {
	m, ok := asMap(v)
	if !ok || m == nil {
		return nil, tonalerrors.NewConfigurationError("style", fmt.Sprintf("expected a mapping, got %T", v), nil)
	}
	return Style(m), nil
}

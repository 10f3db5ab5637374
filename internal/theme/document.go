package theme

import (
	"sort"
)

// ColorKey is the reserved top-level key holding color declarations.
const ColorKey = "color"

// Document is an immutable theme document together with the declaration order
// of its colors.
type Document struct {
	values     map[string]any
	colorOrder []string
}

// NewDocument copies values into a Document. Names listed in colorOrder that are
// declared under "color" come first, in the given order; the remaining color
// names follow in lexical order.
func NewDocument(values map[string]any, colorOrder ...string) Document {
	copied, _ := cloneValue(values).(map[string]any)
	if copied == nil {
		copied = map[string]any{}
	}
	return Document{
		values:     copied,
		colorOrder: orderColors(copied[ColorKey], colorOrder),
	}
}

// Values returns a deep copy of the document values.
func (d Document) Values() map[string]any {
	copied, _ := cloneValue(d.values).(map[string]any)
	if copied == nil {
		return map[string]any{}
	}
	return copied
}

// ColorOrder returns the color names in declaration order.
func (d Document) ColorOrder() []string {
	out := make([]string, len(d.colorOrder))
	copy(out, d.colorOrder)
	return out
}

func orderColors(section any, declared []string) []string {
	colors, ok := asMap(section)
	if !ok {
		return nil
	}

	order := make([]string, 0, len(colors))
	seen := make(map[string]struct{}, len(colors))
	for _, name := range declared {
		if _, dup := seen[name]; dup {
			continue
		}
		if _, exists := colors[name]; !exists {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}

	rest := make([]string, 0, len(colors)-len(order))
	for name := range colors {
		if _, done := seen[name]; !done {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

// asMap accepts the map shapes produced by JSON/YAML decoding and by callers
// building documents in Go.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Style:
		return map[string]any(m), true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[string][]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Style:
		out := make(Style, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case map[string]string, map[string][]string:
		m, _ := asMap(val)
		return cloneValue(m)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return val
	}
}

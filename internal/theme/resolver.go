package theme

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

// Resolver answers lookups and color references against one theme document.
// It is immutable after New and safe for concurrent use; sinks and the console
// may then be called from several goroutines.
type Resolver struct {
	doc       Document
	mode      Mode
	sinks     Sinks
	console   Console
	colors    map[string]*ColorSet
	order     []string
	firstName string
}

// New builds a Resolver and a ColorSet for every entry under "color".
//
// Invalid color entries are reported on the error channel and skipped. In
// strict mode the first report aborts construction.
func New(doc Document, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		doc:     doc,
		mode:    ModeNone,
		console: log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel, Prefix: "theme"}),
		colors:  make(map[string]*ColorSet),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.buildColorSets(); err != nil {
		return nil, err
	}
	return r, nil
}

// Mode returns the diagnostic mode.
func (r *Resolver) Mode() Mode { return r.mode }

// Document returns the document the Resolver was built from.
func (r *Resolver) Document() Document { return r.doc }

func (r *Resolver) buildColorSets() error {
	section := r.doc.values[ColorKey]
	if section == nil {
		return nil
	}

	colors, ok := asMap(section)
	if !ok {
		cause := tonalerrors.NewConfigurationError(ColorKey, "must map color names to tone lists", nil)
		return r.emit(ChannelError, cause, []any{"invalid color section:", cause})
	}

	for i, name := range r.doc.colorOrder {
		if i == 0 {
			r.firstName = name
		}

		set, err := buildColorSet(name, colors[name])
		if err != nil {
			if raised := r.emit(ChannelError, err, []any{"invalid color set", name + ":", err}); raised != nil {
				return raised
			}
			continue
		}
		r.colors[name] = set
		r.order = append(r.order, name)
	}
	return nil
}

func buildColorSet(name string, raw any) (*ColorSet, error) {
	switch tones := raw.(type) {
	case []string:
		return NewColorSet(name, tones)
	case []any:
		out := make([]string, 0, len(tones))
		for i, tone := range tones {
			s, ok := tone.(string)
			if !ok {
				return nil, tonalerrors.NewConfigurationError("color set "+name, fmt.Sprintf("tone %d is %T, want string", i, tone), nil)
			}
			out = append(out, s)
		}
		return NewColorSet(name, out)
	default:
		return nil, tonalerrors.NewConfigurationError("color set "+name, "tones must be a non-empty list", nil)
	}
}

// Get walks a dot-separated path through the document. An empty path returns
// the whole document. Missing or falsy values along the way become an empty
// map, so Get never returns nil.
func (r *Resolver) Get(path string) any {
	if path == "" {
		return r.doc.Values()
	}

	var current any = r.doc.values
	for _, key := range strings.Split(path, ".") {
		next := child(current, key)
		if falsy(next) {
			next = map[string]any{}
		}
		current = next
	}
	return cloneValue(current)
}

// GetStyle returns the mapping at path, or an empty Style when the value is not a mapping.
func (r *Resolver) GetStyle(path string) Style {
	style, err := AsStyle(r.Get(path))
	if err != nil {
		return Style{}
	}
	return style
}

func child(parent any, key string) any {
	if m, ok := asMap(parent); ok {
		return m[key]
	}

	rv := reflect.ValueOf(parent)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= rv.Len() {
		return nil
	}
	return rv.Index(idx).Interface()
}

func falsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	default:
		return false
	}
}

// ColorSets returns every registered ColorSet in declaration order.
func (r *Resolver) ColorSets() []*ColorSet {
	out := make([]*ColorSet, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.colors[name])
	}
	return out
}

// ColorSet looks up a registered ColorSet by name.
func (r *Resolver) ColorSet(name string) (*ColorSet, bool) {
	set, ok := r.colors[name]
	return set, ok
}

// FirstColorSet returns the set of the first declared color. It reports false
// when that entry was invalid or no colors are declared.
func (r *Resolver) FirstColorSet() (*ColorSet, bool) {
	return r.ColorSet(r.firstName)
}

// Color returns the base tone of the named color. Unknown names are reported
// as a warning and fall back to the first color's base tone, or to name itself
// when there is none.
func (r *Resolver) Color(name string) (string, error) {
	if set, ok := r.colors[name]; ok {
		return set.Base(), nil
	}
	if err := r.Warning("requested color not found, falling back to default:", name); err != nil {
		return "", err
	}
	if first, ok := r.FirstColorSet(); ok {
		return first.Base(), nil
	}
	return name, nil
}

// ResolveValue resolves strings with ResolveColor and returns nil for any
// other value.
func (r *Resolver) ResolveValue(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, nil
	}
	return r.ResolveColor(s)
}

// ResolveColor turns a symbolic color reference into a concrete value.
//
//   - "name" yields the base tone of a registered color; other strings pass through.
//   - "name|offset" yields the tone at offset. A bad offset is reported as an
//     error and an unknown name as a warning; both return the input unchanged.
//   - Text with spaces has each "name|offset" token resolved in place. Tokens
//     naming unknown colors are kept as written.
//
// The error is non-nil only in strict mode.
func (r *Resolver) ResolveColor(value string) (string, error) {
	if !strings.Contains(value, "|") {
		if set, ok := r.colors[value]; ok {
			return set.Base(), nil
		}
		return value, nil
	}

	if !strings.Contains(value, " ") {
		resolved, ok, err := r.resolveReference(value, true)
		if err != nil {
			return "", err
		}
		if ok {
			return resolved, nil
		}
		return value, nil
	}

	segments := strings.Split(value, " ")
	for i, segment := range segments {
		if strings.Index(segment, "|") <= 0 {
			continue
		}
		resolved, ok, err := r.resolveReference(segment, false)
		if err != nil {
			return "", err
		}
		if ok {
			segments[i] = resolved
		}
	}
	return strings.Join(segments, " "), nil
}

func (r *Resolver) resolveReference(ref string, warnUnknown bool) (string, bool, error) {
	name, rawTone, _ := strings.Cut(ref, "|")

	offset, parsed := parseTone(rawTone)
	if !parsed {
		return "", false, r.Error("cannot parse tone", strconv.Quote(rawTone), "in", ref)
	}

	set, ok := r.colors[name]
	if !ok {
		if warnUnknown {
			return "", false, r.Warning("invalid color value", ref)
		}
		return "", false, nil
	}
	return set.Tone(offset), true, nil
}

// parseTone reads a leading base-10 integer: optional whitespace, an optional
// sign, then digits. Anything after the digits is ignored.
func parseTone(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		if sign == "-" {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

// ResolveStyle returns a copy of style with every string leaf passed through
// ResolveColor. Nested mappings are resolved recursively; all other values,
// slices included, are copied unchanged.
func (r *Resolver) ResolveStyle(style Style) (Style, error) {
	out := make(Style, len(style))

	keys := make([]string, 0, len(style))
	for key := range style {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		resolved, err := r.resolveStyleValue(style[key])
		if err != nil {
			return nil, err
		}
		out[key] = resolved
	}
	return out, nil
}

func (r *Resolver) resolveStyleValue(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return r.ResolveColor(v)
	case Style:
		return r.ResolveStyle(v)
	case nil:
		return nil, nil
	}

	nested, ok := asMap(value)
	if !ok {
		return cloneValue(value), nil
	}
	resolved, err := r.ResolveStyle(Style(nested))
	if err != nil {
		return nil, err
	}
	return map[string]any(resolved), nil
}

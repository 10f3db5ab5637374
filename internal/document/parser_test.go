package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

const jsonTheme = `{
  "color": {
    "secondary": ["#eeeeee", "#cccccc", "#aaaaaa"],
    "primary": ["#82b6d4", "#71acce", "#5fa1c8", "#4d97c2", "#3c8dbc", "#3781ab", "#32749a", "#2c6789", "#275a78"],
    "accent": ["#ffd27f", "#ffb733", "#e69500"]
  },
  "button": {
    "background": "primary",
    "shadow": "0 0 1px 2px primary|-4",
    "radius": 4
  }
}`

const yamlTheme = `
color:
  zeta: ["#000000", "#111111"]
  alpha:
    - "#222222"
button:
  background: zeta|1
`

func TestParseJSONPreservesColorOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(jsonTheme), "theme.json")
	require.NoError(t, err)
	require.Equal(t, []string{"secondary", "primary", "accent"}, doc.ColorOrder())

	r, err := theme.New(doc, theme.WithConsole(nil))
	require.NoError(t, err)

	first, ok := r.FirstColorSet()
	require.True(t, ok)
	require.Equal(t, "secondary", first.Name())

	shadow, err := r.ResolveColor(r.Get("button.shadow").(string))
	require.NoError(t, err)
	require.Equal(t, "0 0 1px 2px #82b6d4", shadow)
	require.Equal(t, 4, r.Get("button.radius"))
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(yamlTheme), "theme.yaml")
	require.NoError(t, err)
	require.Equal(t, []string{"zeta", "alpha"}, doc.ColorOrder())

	r, err := theme.New(doc, theme.WithConsole(nil))
	require.NoError(t, err)
	got, err := r.ResolveColor("zeta|1")
	require.NoError(t, err)
	require.Equal(t, "#111111", got)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(""), "empty.json")
	require.NoError(t, err)
	require.Empty(t, doc.ColorOrder())
	require.Empty(t, doc.Values())
}

func TestParseRejectsNonMapping(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`["primary"]`), "list.json")

	var parseErr *tonalerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "list.json", parseErr.Path)
	require.Equal(t, 1, parseErr.Line)
	require.Contains(t, parseErr.Message, "mapping")
}

func TestParseReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("color:\n  primary: [\"#000\"\nbutton: {"), "broken.yaml")

	var parseErr *tonalerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Greater(t, parseErr.Line, 0)
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonTheme), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.ColorOrder(), 3)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

	var parseErr *tonalerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
	require.Equal(t, 0, extractLine(errors.New("no line here")))
	require.Equal(t, 0, extractLine(nil))
}

package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDocumentColorOrder(t *testing.T) {
	t.Parallel()

	doc := NewDocument(map[string]any{
		"color": map[string]any{
			"zeta":  []any{"#000"},
			"alpha": []any{"#111"},
			"mid":   []any{"#222"},
			"beta":  []any{"#333"},
		},
	}, "mid", "ghost", "zeta", "mid")

	require.Equal(t, []string{"mid", "zeta", "alpha", "beta"}, doc.ColorOrder())
}

func TestNewDocumentWithoutColors(t *testing.T) {
	t.Parallel()

	doc := NewDocument(nil)
	require.Empty(t, doc.ColorOrder())
	require.Equal(t, map[string]any{}, doc.Values())
}

func TestDocumentIsImmutable(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"color":  map[string]any{"primary": []any{"#000", "#111"}},
		"button": map[string]any{"background": "primary"},
	}
	doc := NewDocument(input)

	input["button"].(map[string]any)["background"] = "changed"
	values := doc.Values()
	values["color"] = "gone"

	again := doc.Values()
	require.Equal(t, "primary", again["button"].(map[string]any)["background"])
	require.Contains(t, again["color"], "primary")

	order := doc.ColorOrder()
	order[0] = "mutated"
	require.Equal(t, []string{"primary"}, doc.ColorOrder())
}

func TestNewDocumentAcceptsTypedColorMaps(t *testing.T) {
	t.Parallel()

	doc := NewDocument(map[string]any{
		"color": map[string][]string{"b": {"#1"}, "a": {"#2"}},
	})
	require.Equal(t, []string{"a", "b"}, doc.ColorOrder())

	r, err := New(doc, WithConsole(nil))
	require.NoError(t, err)
	require.Len(t, r.ColorSets(), 2)
}

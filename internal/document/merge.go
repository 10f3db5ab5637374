package document

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

// Merge layers overlays onto base, later overlays winning. Nested mappings are
// merged key by key; scalars and lists from an overlay replace the base value.
// Colors keep the base declaration order, with new names appended in overlay
// order.
func Merge(base theme.Document, overlays ...theme.Document) (theme.Document, error) {
	merged := base.Values()
	order := base.ColorOrder()

	for i, overlay := range overlays {
		if err := mergo.Merge(&merged, overlay.Values(), mergo.WithOverride); err != nil {
			return theme.Document{}, fmt.Errorf("merge overlay %d: %w", i, err)
		}
		order = appendMissing(order, overlay.ColorOrder())
	}

	return theme.NewDocument(merged, order...), nil
}

func appendMissing(order, names []string) []string {
	seen := make(map[string]struct{}, len(order))
	for _, name := range order {
		seen[name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}
	return order
}

// Package preview shows theme color sets in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

// DefaultSwatchWidth is the cell width of one tone.
const DefaultSwatchWidth = 9

// Options controls static rendering.
type Options struct {
	SwatchWidth int
	ShowValues  bool
}

// Render draws one row of swatches per color set, labelled with tone offsets.
func Render(r *theme.Resolver, opts Options) string {
	width := opts.SwatchWidth
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	sets := r.ColorSets()
	if len(sets) == 0 {
		return mutedStyle.Render("no colors declared")
	}

	var b strings.Builder
	for _, set := range sets {
		b.WriteString(renderRow(set, width, opts.ShowValues, nil))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(set *theme.ColorSet, width int, showValues bool, selected *int) string {
	cells := make([]string, 0, set.Len())
	values := make([]string, 0, set.Len())
	for offset := set.LowestOffset(); offset <= set.HighestOffset(); offset++ {
		if set.MiddleIndex()+offset < 0 {
			continue
		}
		label := fmt.Sprintf("%+d", offset)
		if offset == 0 {
			label = "0"
		}
		if selected != nil && *selected == offset {
			label = "[" + label + "]"
		}
		tone := set.Tone(offset)
		cells = append(cells, swatch(tone, label, width))
		values = append(values, mutedStyle.Width(width).Align(lipgloss.Center).Render(truncate(tone, width)))
	}

	label := nameStyle
	if selected != nil {
		label = selectedNameStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, label.Render(set.Name()), lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	if !showValues {
		return row
	}
	valueRow := lipgloss.JoinHorizontal(lipgloss.Top, label.Render(""), lipgloss.JoinHorizontal(lipgloss.Top, values...))
	return lipgloss.JoinVertical(lipgloss.Left, row, valueRow)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tonal/internal/palette"
)

var (
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")
	primaryColor = lipgloss.Color("99")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Width(14)

	selectedNameStyle = nameStyle.
				Foreground(accentColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	referenceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
)

// swatch renders label on a block filled with tone. The label color is picked
// for contrast when tone is a hex color.
func swatch(tone, label string, width int) string {
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(tone)).
		Width(width).
		Align(lipgloss.Center)

	if l, err := palette.Lightness(tone); err == nil {
		if l > 0.6 {
			style = style.Foreground(lipgloss.Color("#000000"))
		} else {
			style = style.Foreground(lipgloss.Color("#ffffff"))
		}
	}
	return style.Render(label)
}

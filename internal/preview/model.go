package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Lighter key.Binding
	Darker  key.Binding
	Reset   key.Binding
	Values  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Lighter, k.Darker, k.Reset, k.Values, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev color")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next color")),
	Lighter: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "tone -1")),
	Darker:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "tone +1")),
	Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "base tone")),
	Values:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "values")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is an interactive tone browser: pick a color set, step through its
// offsets and see the reference and the value it resolves to.
type Model struct {
	resolver *theme.Resolver
	sets     []*theme.ColorSet

	cursor int
	offset int

	showValues bool
	width      int
	height     int

	keys keyMap
	help help.Model
}

// NewModel creates a browser over the resolver's color sets.
func NewModel(r *theme.Resolver) Model {
	return Model{
		resolver: r,
		sets:     r.ColorSets(),
		keys:     defaultKeys,
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.offset = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sets)-1 {
			m.cursor++
			m.offset = 0
		}
	case key.Matches(msg, m.keys.Lighter):
		if set, ok := m.Selected(); ok && m.offset > set.LowestOffset() && set.MiddleIndex()+m.offset > 0 {
			m.offset--
		}
	case key.Matches(msg, m.keys.Darker):
		if set, ok := m.Selected(); ok && m.offset < set.HighestOffset() {
			m.offset++
		}
	case key.Matches(msg, m.keys.Reset):
		m.offset = 0
	case key.Matches(msg, m.keys.Values):
		m.showValues = !m.showValues
	}
	return m, nil
}

// Selected returns the highlighted color set.
func (m Model) Selected() (*theme.ColorSet, bool) {
	if len(m.sets) == 0 {
		return nil, false
	}
	return m.sets[m.cursor], true
}

// Offset returns the highlighted tone offset.
func (m Model) Offset() int { return m.offset }

// Reference returns the symbolic reference for the highlighted tone.
func (m Model) Reference() string {
	set, ok := m.Selected()
	if !ok {
		return ""
	}
	if m.offset == 0 {
		return set.Name()
	}
	return fmt.Sprintf("%s|%d", set.Name(), m.offset)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tonal · tone browser"))
	b.WriteString("\n")

	if len(m.sets) == 0 {
		b.WriteString(mutedStyle.Render("no colors declared"))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	for i, set := range m.sets {
		var selected *int
		if i == m.cursor {
			offset := m.offset
			selected = &offset
		}
		b.WriteString(renderRow(set, DefaultSwatchWidth, m.showValues, selected))
		b.WriteString("\n")
	}

	ref := m.Reference()
	resolved, err := m.resolver.ResolveColor(ref)
	if err != nil {
		resolved = err.Error()
	}
	b.WriteString("\n")
	b.WriteString(referenceStyle.Render(ref))
	b.WriteString(mutedStyle.Render(" → "))
	b.WriteString(resolved)
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

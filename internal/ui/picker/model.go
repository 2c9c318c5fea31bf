package picker

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/event"
	"github.com/flavono123/jsb/internal/ui/theme"
)

const PICKER_WIDTH = 24

// Model is the popup type selector. It filters field.Types while the user types.
type Model struct {
	keys    keyMap
	visible bool
	style   lipgloss.Style
	items   items
	input   textinput.Model
	target  field.ID
	cursor  int
}

func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "Type"
	ti.Prompt = "> "
	ti.Width = PICKER_WIDTH - 4

	return &Model{
		keys: newKeyMap(),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Blue()).
			Width(PICKER_WIDTH),
		items: items(field.Types),
		input: ti,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.visible = true
		m.target = msg.ID
		m.input.Reset()
		m.cursor = max(slices.Index(m.items, msg.Current), 0)
		return m, m.input.Focus()
	case HideMsg:
		m.visible = false
		m.target = ""
		m.input.Blur()
		return m, nil
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}

		filtered := m.items.filter(m.input.Value())
		switch {
		case key.Matches(msg, m.keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.down):
			if m.cursor < len(filtered)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.pick):
			if m.cursor >= len(filtered) {
				return m, nil
			}
			id, picked := m.target, filtered[m.cursor]
			return m, tea.Batch(
				func() tea.Msg { return event.PickTypeMsg{ID: id, Type: picked} },
				Hide,
			)
		case key.Matches(msg, m.keys.hide):
			return m, Hide
		}

		prev := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if prev != m.input.Value() {
			m.cursor = 0
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	filtered := m.items.filter(m.input.Value())

	var rows []string
	for i, item := range filtered {
		rows = append(rows, renderItem(item, i == m.cursor))
	}
	if len(rows) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.Overlay0()).Render("No results found."))
	}

	return m.style.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Margin(0, 0, 1, 0).Render(m.input.View()),
			strings.Join(rows, "\n"),
		),
	)
}

func (m *Model) Visible() bool {
	return m.visible
}

// subcomponents(not model)
type items []field.Type

func (i items) filter(inputValue string) items {
	if inputValue == "" {
		return i
	}

	var names []string
	for _, t := range i {
		names = append(names, t.String())
	}

	var result items
	for _, match := range fuzzy.Find(inputValue, names) {
		result = append(result, i[match.Index])
	}
	return result
}

func renderItem(t field.Type, hovered bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.TypeColor(t)).
		Width(PICKER_WIDTH - 2).
		Padding(0, 0, 0, 1)
	if hovered {
		style = style.Background(theme.Surface0()).Bold(true)
	}
	return style.Render(t.String())
}

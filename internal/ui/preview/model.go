package preview

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/schema"
	"github.com/flavono123/jsb/internal/ui/theme"
)

const (
	PREVIEW_SCROLL_STEP          = 1
	PREVIEW_HEIGHT_BOTTOM_MARGIN = 7 // tabs 1 + format bar 1 + border top, down 2 + help 1 + status 1 + spare 1
	PREVIEW_WARNINGS_MAX         = 3
)

// Model shows the rendered document of the tree. It re-renders lazily after
// the tree reports a change.
type Model struct {
	focus  bool
	tree   *field.Tree
	format schema.Format

	vp    viewport.Model
	style lipgloss.Style

	dirty    bool
	document string
	warnings []string

	keys keyMap
	help help.Model
}

func NewModel(tree *field.Tree) *Model {
	m := &Model{
		tree:   tree,
		format: schema.JSON,
		vp:     viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Overlay0()),
		dirty: true,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	tree.Subscribe(func(field.Change) {
		m.dirty = true
	})

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width - 2
		m.vp.Height = max(1, msg.Height-PREVIEW_HEIGHT_BOTTOM_MARGIN-PREVIEW_WARNINGS_MAX)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if !m.focus {
			break
		}
		switch {
		case key.Matches(msg, m.keys.format):
			m.SetFormat(m.format.Next())
		case key.Matches(msg, m.keys.up):
			m.vp.LineUp(PREVIEW_SCROLL_STEP)
		case key.Matches(msg, m.keys.down):
			m.vp.LineDown(PREVIEW_SCROLL_STEP)
		}
	}

	return m, nil
}

func (m *Model) View() string {
	m.refresh()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderFormatBar(),
		m.style.Render(m.vp.View()),
		m.renderWarnings(),
		m.help.View(m.keys),
	)
}

// Document returns the current rendering, refreshing it first when the tree changed.
func (m *Model) Document() string {
	m.refresh()
	return m.document
}

func (m *Model) Warnings() []string {
	m.refresh()
	return m.warnings
}

func (m *Model) Format() schema.Format {
	return m.format
}

func (m *Model) SetFormat(f schema.Format) {
	if f == m.format {
		return
	}
	m.format = f
	m.dirty = true
	m.vp.GotoTop()
}

func (m *Model) refresh() {
	if !m.dirty {
		return
	}
	m.dirty = false

	nodes := m.tree.Nodes()
	out, err := schema.Render(nodes, m.format)
	if err != nil {
		log.Error("failed to render document", "format", m.format, "err", err)
		m.document = lipgloss.NewStyle().Foreground(theme.Red()).Render(err.Error())
	} else {
		m.document = strings.TrimSuffix(string(out), "\n")
	}
	m.vp.SetContent(m.document)

	m.warnings = nil
	var merr *multierror.Error
	if errors.As(field.Lint(nodes), &merr) {
		for _, w := range merr.Errors {
			m.warnings = append(m.warnings, w.Error())
		}
	}
}

func (m *Model) renderFormatBar() string {
	var tabs []string
	for _, f := range schema.Formats {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Overlay0())
		if f == m.format {
			style = style.Foreground(theme.Blue()).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(string(f)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, tabs...)
}

func (m *Model) renderWarnings() string {
	if len(m.warnings) == 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.Yellow()).MaxWidth(m.vp.Width + 2)
	var lines []string
	for i, w := range m.warnings {
		if i == PREVIEW_WARNINGS_MAX-1 && len(m.warnings) > PREVIEW_WARNINGS_MAX {
			lines = append(lines, style.Render("! ..."))
			break
		}
		lines = append(lines, style.Render("! "+w))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

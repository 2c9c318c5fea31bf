package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/builder"
	"github.com/flavono123/jsb/internal/ui/event"
	"github.com/flavono123/jsb/internal/ui/picker"
	"github.com/flavono123/jsb/internal/ui/preview"
	"github.com/flavono123/jsb/internal/ui/theme"
)

type sessionState uint

const (
	builderView sessionState = iota
	documentView
)

type mainModel struct {
	state   sessionState
	keys    keyMap
	help    help.Model
	tree    *field.Tree
	builder *builder.Model
	preview *preview.Model
	picker  *picker.Model

	width  int
	height int

	status     string
	statusKind event.Status
}

func InitModel(tree *field.Tree) *mainModel {
	return &mainModel{
		state:   builderView,
		keys:    newKeyMap(),
		help:    help.New(),
		tree:    tree,
		builder: builder.NewModel(tree),
		preview: preview.NewModel(tree),
		picker:  picker.NewModel(),
	}
}

func (m *mainModel) Init() tea.Cmd {
	return nil
}

func (m *mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picker.Visible() {
			pm, pCmd := m.picker.Update(msg)
			m.picker = pm.(*picker.Model)
			return m, pCmd
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if !m.builder.Editing() {
			switch {
			case key.Matches(msg, m.keys.quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.tabView):
				return m, m.switchView()
			}
		}

		if m.state == builderView {
			bm, bCmd := m.builder.Update(msg)
			m.builder = bm.(*builder.Model)
			return m, bCmd
		}
		pm, pCmd := m.preview.Update(msg)
		m.preview = pm.(*preview.Model)
		return m, pCmd

	case event.OpenTypePickerMsg:
		pm, pCmd := m.picker.Update(picker.Show(msg.ID, msg.Current)())
		m.picker = pm.(*picker.Model)
		return m, pCmd

	case event.SetStatusMsg:
		m.status = msg.Message
		m.statusKind = msg.Status
		return m, event.ShowStatus()

	case event.HideStatusMsg:
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	bm, bCmd := m.builder.Update(msg)
	m.builder = bm.(*builder.Model)
	cmds = append(cmds, bCmd)

	rm, rCmd := m.preview.Update(msg)
	m.preview = rm.(*preview.Model)
	cmds = append(cmds, rCmd)

	pm, pCmd := m.picker.Update(msg)
	m.picker = pm.(*picker.Model)
	cmds = append(cmds, pCmd)

	return m, tea.Batch(cmds...)
}

func (m *mainModel) View() string {
	var content string
	if m.state == builderView {
		content = m.builder.View()
	} else {
		content = m.preview.View()
	}

	main := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		content,
		m.renderStatus(),
	)

	if m.picker.Visible() {
		return lipgloss.Place(
			m.width,
			m.height,
			lipgloss.Center,
			UPPER_20,
			m.picker.View(),
			lipgloss.WithWhitespaceBackground(theme.Mantle()),
		)
	}

	return main
}

func (m *mainModel) switchView() tea.Cmd {
	if m.state == builderView {
		log.Debug("switching view", "to", TAB_DOCUMENT)
		m.state = documentView
		m.builder.Blur()
		return m.preview.Focus()
	}
	log.Debug("switching view", "to", TAB_BUILDER)
	m.state = builderView
	m.preview.Blur()
	return m.builder.Focus()
}

func (m *mainModel) renderTabs() string {
	active := lipgloss.NewStyle().Padding(0, 1).Bold(true).
		Foreground(theme.Mantle()).Background(theme.Blue())
	inactive := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Subtext1())

	builderTab, documentTab := inactive.Render(TAB_BUILDER), active.Render(TAB_DOCUMENT)
	if m.state == builderView {
		builderTab, documentTab = active.Render(TAB_BUILDER), inactive.Render(TAB_DOCUMENT)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		builderTab,
		" ",
		documentTab,
		"  ",
		m.help.View(m.keys),
	)
}

func (m *mainModel) renderStatus() string {
	if m.status == "" {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.Red())
	if m.statusKind == event.Warn {
		style = style.Foreground(theme.Yellow())
	}
	return style.MaxWidth(m.width).Render(m.status)
}

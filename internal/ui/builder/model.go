package builder

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/event"
	"github.com/flavono123/jsb/internal/ui/theme"
)

const (
	BUILDER_SCROLL_MARGIN        = 2
	BUILDER_HEIGHT_BOTTOM_MARGIN = 6 // tabs 1 + border top, down 2 + help 1 + status 1 + spare 1
	BUILDER_KEY_INPUT_WIDTH      = 32
)

type Model struct {
	focus bool
	tree  *field.Tree

	vp    viewport.Model
	style lipgloss.Style

	lines     []*Line
	cursor    int
	curID     field.ID
	collapsed map[field.ID]bool

	editing bool
	input   textinput.Model

	keys keyMap
	help help.Model
}

func NewModel(tree *field.Tree) *Model {
	input := textinput.New()
	input.Placeholder = "Key"
	input.Prompt = ""
	input.Width = BUILDER_KEY_INPUT_WIDTH
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.Green())
	input.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Blue())

	m := &Model{
		focus: true,
		tree:  tree,
		vp:    viewport.New(0, 0),
		style: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Blue()),
		collapsed: map[field.ID]bool{},
		input:     input,
		keys:      newKeyMap(),
		help:      help.New(),
	}
	tree.Subscribe(m.onChange)
	m.rebuild()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width - 2
		m.vp.Height = max(1, msg.Height-BUILDER_HEIGHT_BOTTOM_MARGIN)
		m.help.Width = msg.Width
		m.scrollToCursor()
	case event.PickTypeMsg:
		return m, m.apply(m.tree.SetTypeID(msg.ID, msg.Type))
	case tea.KeyMsg:
		if m.editing {
			return m, m.updateInput(msg)
		}
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	node := m.curNode()

	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.add):
		var parent field.ID
		if node != nil {
			parent = node.ParentID()
		}
		id, err := m.tree.AppendTo(parent)
		if err != nil {
			return m.apply(err)
		}
		return m.startEdit(id)
	case key.Matches(msg, m.keys.addChild):
		if node == nil {
			break
		}
		id, err := m.tree.AppendTo(node.ID())
		if err != nil {
			return m.apply(err)
		}
		delete(m.collapsed, node.ID())
		m.rebuild()
		return m.startEdit(id)
	case key.Matches(msg, m.keys.remove):
		if node == nil {
			break
		}
		return m.apply(m.tree.RemoveID(node.ID()))
	case key.Matches(msg, m.keys.edit):
		if node == nil {
			break
		}
		return m.startEdit(node.ID())
	case key.Matches(msg, m.keys.pickType):
		if node == nil {
			break
		}
		id, current := node.ID(), node.Type()
		return func() tea.Msg {
			return event.OpenTypePickerMsg{ID: id, Current: current}
		}
	case key.Matches(msg, m.keys.nextType):
		if node == nil {
			break
		}
		return m.apply(m.tree.SetTypeID(node.ID(), node.Type().Next()))
	case key.Matches(msg, m.keys.fold):
		if node != nil && node.Foldable() {
			m.collapsed[node.ID()] = !m.collapsed[node.ID()]
			m.rebuild()
		}
	}

	return nil
}

// updateInput writes every keystroke through to the tree, so the document
// follows the key while it is typed.
func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.done) {
		m.stopEdit()
		return nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		if err := m.tree.SetKeyID(m.curID, m.input.Value()); err != nil {
			m.stopEdit()
			return tea.Batch(cmd, m.apply(err))
		}
	}
	return cmd
}

func (m *Model) startEdit(id field.ID) tea.Cmd {
	n, ok := m.tree.Lookup(id)
	if !ok {
		return m.apply(field.ErrNotFound)
	}
	m.setCursor(id)
	m.editing = true
	m.input.SetValue(n.Key())
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// apply turns a rejected mutation into a status message. The tree is left as it was.
func (m *Model) apply(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	log.Warn("builder edit rejected", "err", err)

	status := event.Error
	if errors.Is(err, field.ErrNotFound) || errors.Is(err, field.ErrNotNested) {
		status = event.Warn
	}
	return event.SetStatus(status, err.Error())
}

func (m *Model) onChange(c field.Change) {
	if c.Op == field.OpRemove {
		delete(m.collapsed, c.ID)
		if m.editing && c.ID == m.curID {
			m.stopEdit()
		}
	}
	m.rebuild()
}

// rebuild re-derives the visible lines from the tree and re-finds the cursor by id.
func (m *Model) rebuild() {
	m.lines = m.buildLines(m.tree.Nodes(), 0, []*Line{})

	for i, line := range m.lines {
		if line.node.ID() == m.curID {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}

	m.cursor = min(m.cursor, len(m.lines)-1)
	m.cursor = max(m.cursor, 0)
	if node := m.curNode(); node != nil {
		m.curID = node.ID()
	} else {
		m.curID = ""
	}
	m.scrollToCursor()
}

func (m *Model) buildLines(nodes []*field.Node, depth int, lines []*Line) []*Line {
	for _, node := range nodes {
		lines = append(lines, newLine(node, depth, len(lines)))
		if node.Nested() && !m.collapsed[node.ID()] {
			lines = m.buildLines(node.Children(), depth+1, lines)
		}
	}
	return lines
}

func (m *Model) View() string {
	m.vp.SetContent(m.renderLines())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.style.Render(m.vp.View()),
		m.help.View(m.keys),
	)
}

func (m *Model) renderLines() string {
	if len(m.lines) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).
			Render("No fields yet. Press a to add one.")
	}

	var result strings.Builder
	leftPadding := len(strconv.Itoa(len(m.lines)))
	for i, line := range m.lines {
		keyView := line.renderKey()
		if m.editing && line.node.ID() == m.curID {
			keyView = m.input.View()
		}
		result.WriteString(line.render(
			leftPadding,
			i == m.cursor,
			m.collapsed[line.node.ID()],
			!m.focus,
			keyView,
			m.vp.Width,
		))
		if i < len(m.lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func (m *Model) moveCursor(delta int) {
	if len(m.lines) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.lines)-1)
	m.curID = m.lines[m.cursor].node.ID()
	m.scrollToCursor()
}

func (m *Model) setCursor(id field.ID) {
	for i, line := range m.lines {
		if line.node.ID() == id {
			m.cursor = i
			m.curID = id
			m.scrollToCursor()
			return
		}
	}
}

func (m *Model) scrollToCursor() {
	m.vp.SetContent(m.renderLines())
	if m.vp.Height <= 0 {
		return
	}
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(max(m.cursor-BUILDER_SCROLL_MARGIN, 0))
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *Model) curNode() *field.Node {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return m.lines[m.cursor].node
}

// CurrentID is the id under the cursor, or the zero ID when the tree is empty.
func (m *Model) CurrentID() field.ID {
	return m.curID
}

func (m *Model) Editing() bool {
	return m.editing
}

func (m *Model) Focus() tea.Cmd {
	m.focus = true
	m.style = m.style.Border(lipgloss.ThickBorder()).BorderForeground(theme.Blue())
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.stopEdit()
	m.style = m.style.Border(lipgloss.NormalBorder()).BorderForeground(theme.Overlay0())
}

package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui/theme"
)

type Line struct {
	node  *field.Node
	depth int
	index int
}

func newLine(node *field.Node, depth int, index int) *Line {
	return &Line{node: node, depth: depth, index: index}
}

func (l *Line) render(leftPadding int, cursored bool, folded bool, blurred bool, key string, maxWidth int) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Left,
		l.number(leftPadding),
		l.indent(),
		l.cursor(cursored, blurred),
		l.action(folded),
		" ",
		key,
		l.renderType(),
	)

	return lipgloss.NewStyle().MaxWidth(maxWidth).Render(line)
}

func (l *Line) renderKey() string {
	if l.node.Key() == "" {
		return lipgloss.NewStyle().Foreground(theme.Overlay0()).Italic(true).Render("<empty>")
	}
	return lipgloss.NewStyle().Foreground(theme.Green()).Render(l.node.Key())
}

func (l *Line) renderType() string {
	style := lipgloss.NewStyle().Foreground(theme.TypeColor(l.node.Type()))
	return style.Render(fmt.Sprintf(" <%s>", l.node.Type()))
}

func (l *Line) number(leftPadding int) string {
	number := lipgloss.NewStyle().Foreground(theme.Overlay0())
	fmtStr := fmt.Sprintf("%%%dd ", leftPadding)
	return number.Render(fmt.Sprintf(fmtStr, l.index+1))
}

func (l *Line) indent() string {
	return strings.Repeat(" ", l.depth*2)
}

func (l *Line) cursor(cursored bool, blurred bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Blue()).Bold(true)
	if blurred {
		style = style.Foreground(theme.Overlay0()).Bold(false)
	}
	if cursored {
		return style.Render(">")
	}
	return style.Render(" ")
}

func (l *Line) action(folded bool) string {
	action := lipgloss.NewStyle().Foreground(theme.Subtext1())
	if l.node.Foldable() {
		if folded {
			return action.Render("+")
		}
		return action.Render("-")
	}
	return action.Render("•")
}

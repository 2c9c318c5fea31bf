package picker

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/jsb/internal/field"
)

type ShowMsg struct {
	ID      field.ID
	Current field.Type
}

type HideMsg struct{}

func Show(id field.ID, current field.Type) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{ID: id, Current: current}
	}
}

func Hide() tea.Msg {
	return HideMsg{}
}

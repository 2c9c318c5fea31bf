package event

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flavono123/jsb/internal/field"
)

// builder -> root
type OpenTypePickerMsg struct {
	ID      field.ID
	Current field.Type
}

// picker -> root -> builder
type PickTypeMsg struct {
	ID   field.ID
	Type field.Type
}

// -> root

type Status uint

const (
	Error Status = iota
	Warn
)

type SetStatusMsg struct {
	Message string
	Status  Status
}

func SetStatus(status Status, message string) tea.Cmd {
	return func() tea.Msg {
		return SetStatusMsg{Message: message, Status: status}
	}
}

const statusDuration = time.Millisecond * 1060

func ShowStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return HideStatusMsg{}
	})
}

type HideStatusMsg struct{}

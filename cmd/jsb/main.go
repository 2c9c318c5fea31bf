package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/flavono123/jsb/internal/config"
	"github.com/flavono123/jsb/internal/field"
	"github.com/flavono123/jsb/internal/ui"
)

func main() {
	cfg := config.Load()

	log.SetOutput(io.Discard)
	if cfg.Debug {
		log.SetLevel(cfg.LogLevel)
		log.SetReportTimestamp(true)
		f, err := tea.LogToFileWith(cfg.LogFile, config.AppID, log.Default())
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal("failed to log to file", "err", err)
		}
		defer f.Close()
	}

	tree := field.NewTree()
	tree.Subscribe(func(c field.Change) {
		log.Debug("tree changed", "op", c.Op, "id", c.ID, "parent", c.Parent, "size", tree.Len())
	})

	program := tea.NewProgram(
		ui.InitModel(tree),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("failed to run program", "err", err)
	}
}

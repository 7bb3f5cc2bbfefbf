package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/custsearch/internal/customer"
	"github.com/Iron-Ham/custsearch/internal/tui/styles"
)

// LoadedMsg carries the outcome of the one dataset load.
type LoadedMsg struct {
	Dataset customer.Dataset
	Err     error
}

// ThemeChangedMsg switches the view to another theme, typically after the
// config file changed on disk.
type ThemeChangedMsg struct {
	Theme styles.ThemeName
}

// loadDataset returns a command that performs the load under ctx and reports
// the result as a LoadedMsg.
func loadDataset(ctx context.Context, l DatasetLoader, location string) tea.Cmd {
	return func() tea.Msg {
		ds, err := l.Load(ctx, location)
		return LoadedMsg{Dataset: ds, Err: err}
	}
}

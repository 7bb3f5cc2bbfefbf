package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubble Tea program running the search view.
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(opts Options) *App {
	m := NewModel(opts)
	return &App{
		model:   m,
		program: tea.NewProgram(m, tea.WithAltScreen()),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// Abandon an in-flight load whichever way the program ends
	defer a.model.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		if _, ok := <-sigChan; ok {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// Send delivers msg to the program. It blocks until Run is processing
// messages and is a no-op once the program has exited.
func (a *App) Send(msg tea.Msg) {
	a.program.Send(msg)
}

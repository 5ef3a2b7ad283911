package tui

import (
	"os"
	"os/signal"
	"syscall"

	"teamdeck/internal/config"
	"teamdeck/internal/logging"
	"teamdeck/internal/teams"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program.
type App struct {
	program *tea.Program
	model   Model
	bridge  *Bridge
	log     *logging.Logger
}

// New creates the TUI application. The bridge must be the same one wired
// into the controller's Deps, so the controller's side effects reach the
// program once Run attaches it.
func New(ctrl *teams.Controller, bridge *Bridge, store teams.Store, tuiCfg config.TUIConfig, log *logging.Logger) *App {
	return &App{
		model:  NewModel(ctrl, store, tuiCfg, log),
		bridge: bridge,
		log:    log,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	a.bridge.Attach(a.program)

	// Quit cleanly on termination signals so the terminal is restored.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}

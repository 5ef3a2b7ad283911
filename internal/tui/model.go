// Package tui renders the host team screen as a Bubbletea program. The
// Model is a thin render layer: all domain state lives in the teams
// controller and reaches the UI through Snapshot and bridge messages.
package tui

import (
	"teamdeck/internal/api"
	"teamdeck/internal/config"
	"teamdeck/internal/logging"
	"teamdeck/internal/teams"
	"teamdeck/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// viewTeams is the main view name. The permission-denied view name is owned
// by the teams package since the controller navigates to it.
const viewTeams = "teams"

// maxTeamNameLength mirrors the server-side limit on team names.
const maxTeamNameLength = 100

// Model is the Bubbletea model for the team screen.
type Model struct {
	ctrl  *teams.Controller
	store teams.Store
	log   *logging.Logger

	// vm is the latest controller snapshot, refreshed on every message.
	vm teams.ViewModel

	view   string
	cursor int

	width  int
	height int
	ready  bool

	spinner        spinner.Model
	loading        bool
	loadingMessage string

	nameInput   textinput.Model
	formFocused bool

	dialog      *dialogRequest
	dialogInput textinput.Model

	notification      string
	notificationLevel teams.Level

	// errorDetail is the stored server message shown on the
	// permission-denied view.
	errorDetail string

	showMembers bool
	quitting    bool
}

// NewModel creates the team screen model. It does not fetch anything;
// Init schedules the first load.
func NewModel(ctrl *teams.Controller, store teams.Store, tuiCfg config.TUIConfig, log *logging.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	name := textinput.New()
	name.Placeholder = "Team name"
	name.CharLimit = maxTeamNameLength
	name.Width = 40

	if log == nil {
		log = logging.NopLogger()
	}

	return Model{
		ctrl:        ctrl,
		store:       store,
		log:         log.WithView(viewTeams),
		vm:          ctrl.Snapshot(),
		view:        viewTeams,
		spinner:     sp,
		nameInput:   name,
		showMembers: tuiCfg.ShowMembers,
	}
}

// Init schedules the spinner and the initial team fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTeams(m.ctrl))
}

// selectedTeam returns the team under the cursor, or nil when the list is
// empty.
func (m Model) selectedTeam() *api.Team {
	if m.cursor < 0 || m.cursor >= len(m.vm.Teams.Results) {
		return nil
	}
	return &m.vm.Teams.Results[m.cursor]
}

// clampCursor keeps the cursor inside the current page after refreshes.
func (m *Model) clampCursor() {
	if n := len(m.vm.Teams.Results); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// busy reports whether any loader is active, used to keep the spinner
// ticking.
func (m Model) busy() bool {
	return m.loading || m.vm.List.Loading || m.vm.Form.Loading
}

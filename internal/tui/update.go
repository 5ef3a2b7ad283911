package tui

import (
	"strings"

	"teamdeck/internal/teams"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The controller mutates its view-model from command goroutines, so
	// every message starts from a fresh snapshot.
	m.vm = m.ctrl.Snapshot()
	m.clampCursor()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.busy() {
			return m, cmd
		}
		return m, nil

	case loaderMsg:
		m.loading = msg.active
		m.loadingMessage = msg.message
		if msg.active {
			return m, m.spinner.Tick
		}
		return m, nil

	case notifyMsg:
		m.notification = msg.message
		m.notificationLevel = msg.level
		return m, clearNotificationAfter()

	case clearNotificationMsg:
		m.notification = ""
		return m, nil

	case navigateMsg:
		m.view = msg.view
		if msg.view == teams.PermissionDeniedView {
			detail, err := m.store.Get(teams.KeyErrorDetail)
			if err != nil {
				m.log.Debug("no stored error detail", "error", err)
				detail = ""
			}
			m.errorDetail = detail
		}
		return m, nil

	case dialogMsg:
		m.dialog = msg.req
		if msg.req.kind == dialogPrompt {
			input := textinput.New()
			input.Placeholder = msg.req.placeholder
			input.Width = 40
			input.Focus()
			m.dialogInput = input
			return m, textinput.Blink
		}
		return m, nil

	case opDoneMsg:
		// Errors were already turned into notifications or log entries by
		// the controller; just sync the draft input with the view-model so
		// a successful create clears the form and a failed one keeps it.
		m.nameInput.SetValue(m.vm.Draft.Name)
		if m.vm.Draft.Name == "" && !m.formFocused {
			m.nameInput.Blur()
		}
		return m, nil
	}

	return m, nil
}

// handleKeypress processes keyboard input. Dialogs capture all keys, then
// the create form, then the list bindings.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.view == teams.PermissionDeniedView {
		return m.handlePermissionDeniedKey(msg)
	}

	if m.formFocused {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.vm.Teams.Results)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "n", "right":
		if m.vm.ShowPagination && !m.vm.NextDisabled {
			return m, loadPage(m.ctrl, m.ctrl.NextURL())
		}
		return m, nil

	case "p", "left":
		if m.vm.ShowPagination && !m.vm.PrevDisabled {
			return m, loadPage(m.ctrl, m.ctrl.PreviousURL())
		}
		return m, nil

	case "c":
		m.formFocused = true
		m.nameInput.Focus()
		return m, textinput.Blink

	case "d":
		if t := m.selectedTeam(); t != nil {
			return m, removeSelf(m.ctrl, t.ID)
		}
		return m, nil

	case "i":
		if t := m.selectedTeam(); t != nil {
			return m, inviteOthers(m.ctrl, t.ID)
		}
		return m, nil

	case "m":
		m.showMembers = !m.showMembers
		return m, nil

	case "r":
		return m, loadTeams(m.ctrl)
	}

	return m, nil
}

// handleDialogKey processes input while a modal dialog is open.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	req := m.dialog

	if req.kind == dialogConfirm {
		switch msg.String() {
		case "y", "Y", "enter":
			m.dialog = nil
			req.answer("", true)
		case "n", "N", "esc", "q":
			m.dialog = nil
			req.answer("", false)
		}
		return m, nil
	}

	// Prompt dialog
	switch msg.Type {
	case tea.KeyEnter:
		m.dialog = nil
		req.answer(strings.TrimSpace(m.dialogInput.Value()), true)
		return m, nil
	case tea.KeyEsc:
		m.dialog = nil
		req.answer("", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.dialogInput, cmd = m.dialogInput.Update(msg)
	return m, cmd
}

// handlePermissionDeniedKey processes input on the permission-denied view.
func (m Model) handlePermissionDeniedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		// Retry from scratch; a success navigates nowhere and clears the
		// stored detail, so switch back to the list optimistically.
		m.view = viewTeams
		m.errorDetail = ""
		return m, loadTeams(m.ctrl)
	}

	return m, nil
}

// handleFormKey processes input while the create-team form has focus. The
// draft in the controller tracks every keystroke so a failed create keeps
// the entered name.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.formFocused = false
		m.nameInput.Blur()
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.ctrl.SetDraftName(name)
		m.formFocused = false
		m.nameInput.Blur()
		return m, createTeam(m.ctrl)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.ctrl.SetDraftName(m.nameInput.Value())
	return m, cmd
}

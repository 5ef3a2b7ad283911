package tui

import (
	"context"
	"time"

	"teamdeck/internal/teams"

	tea "github.com/charmbracelet/bubbletea"
)

// loaderMsg toggles the global busy indicator.
type loaderMsg struct {
	active  bool
	message string
}

// notifyMsg carries a transient user-facing notification.
type notifyMsg struct {
	level   teams.Level
	message string
}

// navigateMsg switches the active view.
type navigateMsg struct {
	view string
}

// dialogMsg asks the UI to show a modal dialog. The originating operation
// blocks on req.resp until the user answers.
type dialogMsg struct {
	req *dialogRequest
}

// opDoneMsg is sent when a controller operation finishes. Errors are already
// surfaced through notifications and the log; the message only triggers a
// view-model refresh.
type opDoneMsg struct {
	err error
}

// clearNotificationMsg hides the notification line.
type clearNotificationMsg struct{}

// Commands

// notificationTTL is how long a notification stays visible.
const notificationTTL = 4 * time.Second

// loadTeams returns a command that fetches the first page of teams.
func loadTeams(ctrl *teams.Controller) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.Load(context.Background())}
	}
}

// loadPage returns a command that fetches the given page URL in place.
func loadPage(ctrl *teams.Controller, pageURL string) tea.Cmd {
	return func() tea.Msg {
		ctrl.LoadPage(context.Background(), pageURL)
		return opDoneMsg{}
	}
}

// createTeam returns a command that submits the create-team draft.
func createTeam(ctrl *teams.Controller) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.CreateTeam(context.Background())}
	}
}

// removeSelf returns a command that removes the user from the team after
// confirmation. It blocks on the confirm dialog, so it must run as a
// command, never inline in Update.
func removeSelf(ctrl *teams.Controller, teamID int) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.RemoveSelf(context.Background(), teamID)}
	}
}

// inviteOthers returns a command that prompts for an email address and
// invites it to the team. Blocks on the prompt dialog like removeSelf.
func inviteOthers(ctrl *teams.Controller, teamID int) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: ctrl.InviteOthers(context.Background(), teamID)}
	}
}

// clearNotificationAfter hides the notification line once its TTL expires.
func clearNotificationAfter() tea.Cmd {
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{}
	})
}

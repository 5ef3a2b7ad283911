package tui

import (
	"fmt"
	"strings"

	"teamdeck/internal/api"
	"teamdeck/internal/teams"
	"teamdeck/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	if m.view == teams.PermissionDeniedView {
		return m.renderPermissionDenied()
	}

	sections := []string{
		styles.Header.Render("Challenge Host Teams"),
	}

	if m.loading {
		sections = append(sections, fmt.Sprintf("%s %s", m.spinner.View(), styles.Muted.Render(m.loadingMessage)))
	}

	sections = append(sections, m.renderList())
	sections = append(sections, m.renderPagination())
	sections = append(sections, m.renderForm())

	if m.notification != "" {
		style := styles.NotificationStyle(m.notificationLevel.String())
		sections = append(sections, style.Render(m.notification))
	}

	if m.dialog != nil {
		sections = append(sections, m.renderDialog())
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderList renders the team table, or the region loader while a page
// fetch is in flight.
func (m Model) renderList() string {
	if m.vm.List.Loading {
		return fmt.Sprintf("%s %s", m.spinner.View(), styles.Muted.Render(m.vm.List.Message))
	}

	if len(m.vm.Teams.Results) == 0 {
		return styles.Muted.Render(teams.EmptyStateMessage)
	}

	var b strings.Builder
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  %-6s %-30s %-20s %s", "ID", "TEAM", "CREATED BY", "MEMBERS")))
	b.WriteString("\n")

	for i, t := range m.vm.Teams.Results {
		line := fmt.Sprintf("%-6d %-30s %-20s %d", t.ID, truncate(t.TeamName, 30), truncate(t.CreatedBy, 20), len(t.Members))

		if i == m.cursor {
			b.WriteString(styles.RowSelected.Render("> " + line))
		} else {
			b.WriteString(styles.Row.Render("  " + line))
		}
		b.WriteString("\n")

		if m.showMembers && i == m.cursor {
			b.WriteString(renderMembers(t.Members))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderMembers renders the expanded member list under the selected row.
func renderMembers(members []api.TeamMember) string {
	if len(members) == 0 {
		return styles.Muted.Render("         (no members)") + "\n"
	}

	var b strings.Builder
	for _, member := range members {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("         %s · %s", member.User, member.Status)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderPagination renders the page indicator, or the empty-state message
// when there are no teams at all.
func (m Model) renderPagination() string {
	if !m.vm.ShowPagination {
		return styles.Info.Render(m.vm.PaginationMessage)
	}

	prev := styles.HelpKey.Render("p")
	if m.vm.PrevDisabled {
		prev = styles.Muted.Render("p")
	}
	next := styles.HelpKey.Render("n")
	if m.vm.NextDisabled {
		next = styles.Muted.Render("n")
	}

	return fmt.Sprintf("%s  %s prev · %s next",
		styles.Text.Render(fmt.Sprintf("Page %d · %d teams", m.vm.CurrentPage, m.vm.Teams.Count)),
		prev, next)
}

// renderForm renders the create-team input when focused, the form-region
// loader while a create is in flight, and the draft error in either case.
func (m Model) renderForm() string {
	var b strings.Builder

	switch {
	case m.vm.Form.Loading:
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), styles.Muted.Render(m.vm.Form.Message)))
	case m.formFocused:
		b.WriteString(styles.FormBox.Render("New team: " + m.nameInput.View()))
	default:
		return renderDraftErr(m.vm.Draft.Err)
	}

	if err := renderDraftErr(m.vm.Draft.Err); err != "" {
		b.WriteString("\n")
		b.WriteString(err)
	}
	return b.String()
}

func renderDraftErr(err string) string {
	if err == "" {
		return ""
	}
	return styles.FieldError.Render(err)
}

// renderDialog renders the modal confirm or prompt box.
func (m Model) renderDialog() string {
	var body string
	if m.dialog.kind == dialogConfirm {
		body = fmt.Sprintf("%s\n\n%s yes · %s no",
			styles.Text.Render(m.dialog.message),
			styles.HelpKey.Render("y"),
			styles.HelpKey.Render("n"))
	} else {
		body = fmt.Sprintf("%s\n\n%s\n\n%s submit · %s cancel",
			styles.Text.Render(m.dialog.message),
			m.dialogInput.View(),
			styles.HelpKey.Render("enter"),
			styles.HelpKey.Render("esc"))
	}
	return styles.Dialog.Render(body)
}

// renderPermissionDenied renders the error view shown when the team list
// cannot be fetched at all.
func (m Model) renderPermissionDenied() string {
	detail := m.errorDetail
	if detail == "" {
		detail = "You do not have permission to view host teams."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Render("Permission Denied"),
		styles.ErrorMsg.Render(detail),
		"",
		styles.HelpBar.Render(fmt.Sprintf("%s retry · %s quit",
			styles.HelpKey.Render("r"),
			styles.HelpKey.Render("q"))),
	)
}

// renderHelp renders the key binding bar.
func (m Model) renderHelp() string {
	if m.dialog != nil {
		return ""
	}
	if m.formFocused {
		return styles.HelpBar.Render(fmt.Sprintf("%s submit · %s cancel",
			styles.HelpKey.Render("enter"),
			styles.HelpKey.Render("esc")))
	}

	keys := []string{
		styles.HelpKey.Render("j/k") + " move",
		styles.HelpKey.Render("n/p") + " page",
		styles.HelpKey.Render("c") + " create",
		styles.HelpKey.Render("d") + " leave",
		styles.HelpKey.Render("i") + " invite",
		styles.HelpKey.Render("m") + " members",
		styles.HelpKey.Render("r") + " reload",
		styles.HelpKey.Render("q") + " quit",
	}
	return styles.HelpBar.Render(strings.Join(keys, " · "))
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

package tui

import (
	"context"
	"strings"
	"testing"

	"teamdeck/internal/api"
	"teamdeck/internal/config"
	"teamdeck/internal/teams"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeDispatcher struct {
	page      api.TeamPage
	listErr   error
	created   api.Team
	createErr error
}

func (f *fakeDispatcher) ListTeams(context.Context) (api.TeamPage, error) {
	return f.page, f.listErr
}

func (f *fakeDispatcher) Page(context.Context, string) (api.TeamPage, error) {
	return f.page, f.listErr
}

func (f *fakeDispatcher) CreateTeam(_ context.Context, name string) (api.Team, error) {
	if f.createErr != nil {
		return api.Team{}, f.createErr
	}
	if f.created.ID == 0 {
		f.created = api.Team{ID: 7, TeamName: name}
	}
	return f.created, nil
}

func (f *fakeDispatcher) RemoveSelf(context.Context, int) error { return nil }

func (f *fakeDispatcher) Invite(context.Context, int, string) error { return nil }

type memStore map[string]string

func (s memStore) Get(key string) (string, error) { return s[key], nil }
func (s memStore) Set(key, value string) error    { s[key] = value; return nil }
func (s memStore) Delete(key string) error        { delete(s, key); return nil }

func newTestModel(t *testing.T, d teams.Dispatcher, store teams.Store) Model {
	t.Helper()

	if store == nil {
		store = memStore{}
	}
	ctrl := teams.NewController(teams.Deps{Dispatcher: d, Store: store})
	m := NewModel(ctrl, store, config.TUIConfig{}, nil)

	// Mark ready the way the terminal would.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func teamPage(count int, names ...string) api.TeamPage {
	results := make([]api.Team, len(names))
	for i, name := range names {
		results[i] = api.Team{ID: i + 1, TeamName: name, CreatedBy: "host"}
	}
	return api.TeamPage{Count: count, Results: results}
}

func TestView_EmptyState(t *testing.T) {
	d := &fakeDispatcher{page: teamPage(0)}
	m := newTestModel(t, d, nil)

	if err := m.ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	updated, _ := m.Update(opDoneMsg{})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, teams.EmptyStateMessage) {
		t.Errorf("expected empty state message in view:\n%s", view)
	}
	if strings.Contains(view, "Page ") {
		t.Errorf("expected no pagination in empty view:\n%s", view)
	}
}

func TestView_TeamRows(t *testing.T) {
	d := &fakeDispatcher{page: teamPage(2, "Red Team", "Blue Team")}
	m := newTestModel(t, d, nil)

	if err := m.ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	updated, _ := m.Update(opDoneMsg{})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{"Red Team", "Blue Team", "Page 1", "2 teams"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	d := &fakeDispatcher{page: teamPage(2, "Red Team", "Blue Team")}
	m := newTestModel(t, d, nil)

	if err := m.ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	// Cursor stops at the last row
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor clamped to 1, got %d", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", m.cursor)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(Model)
	if !m.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestNotification_ShownThenCleared(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	updated, cmd := m.Update(notifyMsg{level: teams.LevelSuccess, message: "Team Red has been created successfully!"})
	m = updated.(Model)
	if cmd == nil {
		t.Error("expected a clear timer command")
	}
	if !strings.Contains(m.View(), "created successfully") {
		t.Errorf("expected notification in view:\n%s", m.View())
	}

	updated, _ = m.Update(clearNotificationMsg{})
	m = updated.(Model)
	if strings.Contains(m.View(), "created successfully") {
		t.Error("expected notification cleared")
	}
}

func TestNavigate_PermissionDenied(t *testing.T) {
	store := memStore{teams.KeyErrorDetail: "Authentication credentials were not provided."}
	m := newTestModel(t, &fakeDispatcher{}, store)

	updated, _ := m.Update(navigateMsg{view: teams.PermissionDeniedView})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Permission Denied") {
		t.Errorf("expected permission denied header:\n%s", view)
	}
	if !strings.Contains(view, "credentials were not provided") {
		t.Errorf("expected stored error detail in view:\n%s", view)
	}
}

func TestPermissionDenied_RetryReturnsToList(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{page: teamPage(0)}, nil)

	updated, _ := m.Update(navigateMsg{view: teams.PermissionDeniedView})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(Model)
	if m.view != viewTeams {
		t.Errorf("expected teams view after retry, got %q", m.view)
	}
	if cmd == nil {
		t.Error("expected a load command")
	}
}

func TestConfirmDialog_Answer(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	req := &dialogRequest{kind: dialogConfirm, message: "Would you like to remove yourself?", resp: make(chan dialogResponse, 1)}
	updated, _ := m.Update(dialogMsg{req: req})
	m = updated.(Model)

	if !strings.Contains(m.View(), "remove yourself") {
		t.Errorf("expected dialog message in view:\n%s", m.View())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m = updated.(Model)
	if m.dialog != nil {
		t.Error("expected dialog closed")
	}

	select {
	case r := <-req.resp:
		if !r.ok {
			t.Error("expected ok answer")
		}
	default:
		t.Fatal("expected an answer on the response channel")
	}
}

func TestConfirmDialog_Dismiss(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	req := &dialogRequest{kind: dialogConfirm, message: "Would you like to remove yourself?", resp: make(chan dialogResponse, 1)}
	updated, _ := m.Update(dialogMsg{req: req})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_ = updated.(Model)

	select {
	case r := <-req.resp:
		if r.ok {
			t.Error("expected dismissed answer")
		}
	default:
		t.Fatal("expected an answer on the response channel")
	}
}

func TestPromptDialog_Submit(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	req := &dialogRequest{kind: dialogPrompt, message: "Add other members to this team", placeholder: "Enter email address", resp: make(chan dialogResponse, 1)}
	updated, _ := m.Update(dialogMsg{req: req})
	m = updated.(Model)

	for _, r := range "a@b.io" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = updated.(Model)

	select {
	case r := <-req.resp:
		if !r.ok || r.value != "a@b.io" {
			t.Errorf("unexpected answer: %+v", r)
		}
	default:
		t.Fatal("expected an answer on the response channel")
	}
}

func TestFormSubmit_SetsDraft(t *testing.T) {
	d := &fakeDispatcher{page: teamPage(0)}
	m := newTestModel(t, d, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(Model)
	if !m.formFocused {
		t.Fatal("expected form focused after c")
	}

	for _, r := range "Red Team" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected a create command")
	}
	if got := m.ctrl.Snapshot().Draft.Name; got != "Red Team" {
		t.Errorf("expected draft name set, got %q", got)
	}
	if m.formFocused {
		t.Error("expected form blurred after submit")
	}
}

func TestFormKey_EscCancels(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.formFocused {
		t.Error("expected form blurred after esc")
	}
}

func TestPaginationKeys_RespectDisabledFlags(t *testing.T) {
	// A single full page: both links nil, both directions disabled.
	d := &fakeDispatcher{page: teamPage(3, "A", "B", "C")}
	m := newTestModel(t, d, nil)

	if err := m.ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if cmd != nil {
		t.Error("expected no command when next is disabled")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if cmd != nil {
		t.Error("expected no command when previous is disabled")
	}
}

func TestView_DraftErrorShown(t *testing.T) {
	m := newTestModel(t, &fakeDispatcher{}, nil)

	m.vm.Draft.Err = "A team with this name already exists"
	if !strings.Contains(m.View(), "already exists") {
		t.Errorf("expected draft error in view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("unexpected: %q", got)
	}
	if got := truncate("a very long team name", 10); len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %q", got)
	}
}

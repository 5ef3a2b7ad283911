// Package internal contains integration tests that verify the packages work
// together: the HTTP client against a fake server, driven through the teams
// controller, with state persisted in a real file store.
package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teamdeck/internal/api"
	"teamdeck/internal/store"
	"teamdeck/internal/teams"
)

// fakePlatform is an in-memory stand-in for the challenge platform API.
type fakePlatform struct {
	teams  []api.Team
	nextID int
}

func (p *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/hosts/challenge_host_team/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token integration-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
			return
		}
		_ = json.NewEncoder(w).Encode(api.TeamPage{Count: len(p.teams), Results: p.teams})
	})

	mux.HandleFunc("POST /api/hosts/create_challenge_host_team", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			TeamName string `json:"team_name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		for _, t := range p.teams {
			if t.TeamName == body.TeamName {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string][]string{
					"team_name": {"A team with this name already exists"},
				})
				return
			}
		}

		p.nextID++
		team := api.Team{ID: p.nextID, TeamName: body.TeamName, CreatedBy: "host"}
		p.teams = append(p.teams, team)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(team)
	})

	return mux
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ teams.Level, message string) {
	n.messages = append(n.messages, message)
}

type recordingNavigator struct {
	views []string
}

func (n *recordingNavigator) Go(view string) {
	n.views = append(n.views, view)
}

func newIntegrationController(t *testing.T, baseURL, token string) (*teams.Controller, *store.FileStore, *recordingNotifier, *recordingNavigator) {
	t.Helper()

	fileStore, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	notifier := &recordingNotifier{}
	navigator := &recordingNavigator{}
	ctrl := teams.NewController(teams.Deps{
		Dispatcher: api.NewClient(baseURL, token),
		Notifier:   notifier,
		Navigator:  navigator,
		Store:      fileStore,
	})
	return ctrl, fileStore, notifier, navigator
}

func TestCreateAndListTeams(t *testing.T) {
	platform := &fakePlatform{}
	server := httptest.NewServer(platform.handler())
	defer server.Close()

	ctrl, _, notifier, _ := newIntegrationController(t, server.URL+"/api", "integration-token")
	ctx := context.Background()

	if err := ctrl.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	vm := ctrl.Snapshot()
	if vm.ShowPagination {
		t.Error("expected pagination hidden with no teams")
	}
	if vm.PaginationMessage != teams.EmptyStateMessage {
		t.Errorf("expected empty state message, got %q", vm.PaginationMessage)
	}

	ctrl.SetDraftName("Red Team")
	if err := ctrl.CreateTeam(ctx); err != nil {
		t.Fatalf("CreateTeam failed: %v", err)
	}

	vm = ctrl.Snapshot()
	if len(vm.Teams.Results) != 1 || vm.Teams.Results[0].TeamName != "Red Team" {
		t.Errorf("expected refreshed list with the new team, got %+v", vm.Teams.Results)
	}
	if vm.Draft.Name != "" {
		t.Errorf("expected draft reset after create, got %q", vm.Draft.Name)
	}
	if ctrl.CreatedTeamID() == 0 {
		t.Error("expected created team id recorded")
	}

	found := false
	for _, msg := range notifier.messages {
		if strings.Contains(msg, "Red Team has been created successfully") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected success notification, got %v", notifier.messages)
	}
}

func TestDuplicateTeamKeepsDraft(t *testing.T) {
	platform := &fakePlatform{}
	server := httptest.NewServer(platform.handler())
	defer server.Close()

	ctrl, _, _, _ := newIntegrationController(t, server.URL+"/api", "integration-token")
	ctx := context.Background()

	ctrl.SetDraftName("Red Team")
	if err := ctrl.CreateTeam(ctx); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	ctrl.SetDraftName("Red Team")
	if err := ctrl.CreateTeam(ctx); err == nil {
		t.Fatal("expected duplicate create to fail")
	}

	vm := ctrl.Snapshot()
	if vm.Draft.Name != "Red Team" {
		t.Errorf("expected entered name kept after failure, got %q", vm.Draft.Name)
	}
	if vm.Draft.Err != "A team with this name already exists" {
		t.Errorf("unexpected draft error: %q", vm.Draft.Err)
	}
}

func TestBadTokenStoresDetailAndNavigates(t *testing.T) {
	platform := &fakePlatform{}
	server := httptest.NewServer(platform.handler())
	defer server.Close()

	ctrl, fileStore, _, navigator := newIntegrationController(t, server.URL+"/api", "wrong-token")

	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected Load to fail with a bad token")
	}

	if len(navigator.views) != 1 || navigator.views[0] != teams.PermissionDeniedView {
		t.Errorf("expected navigation to permission denied, got %v", navigator.views)
	}

	detail, err := fileStore.Get(teams.KeyErrorDetail)
	if err != nil {
		t.Fatalf("expected stored error detail: %v", err)
	}
	if detail != "Invalid token." {
		t.Errorf("unexpected stored detail: %q", detail)
	}
}

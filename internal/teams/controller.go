// Package teams implements the host team screen: a view-model with the team
// list, pagination state and the create-team draft, plus the operations that
// mutate it. Operations call out to small collaborator interfaces for HTTP,
// loading indicators, notifications, dialogs and navigation, so the package
// is testable without a terminal or a server.
package teams

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"teamdeck/internal/api"
	"teamdeck/internal/logging"
)

// Controller owns the view-model and performs the user-triggered operations.
// It is safe for concurrent use: operations may be invoked from separate
// goroutines (the UI runs them off the render loop) and the view-model is
// only read through Snapshot. Overlapping operations are not serialized —
// completions apply in arrival order, last writer wins.
type Controller struct {
	mu            sync.Mutex
	vm            ViewModel
	createdTeamID int

	dispatcher Dispatcher
	loader     Loader
	notifier   Notifier
	navigator  Navigator
	dialogs    Dialogs
	store      Store
	log        *logging.Logger
	pageSize   int
}

// Deps are the collaborators a Controller is wired with. Dispatcher is
// required; every other field may be left nil and defaults to a no-op.
type Deps struct {
	Dispatcher Dispatcher
	Loader     Loader
	Notifier   Notifier
	Navigator  Navigator
	Dialogs    Dialogs
	Store      Store
	Logger     *logging.Logger

	// PageSize is the server's listing page size, used to derive the last
	// page number. Defaults to 10.
	PageSize int
}

// NewController creates a Controller. It does not fetch anything; callers
// run Load once the UI is ready.
func NewController(deps Deps) *Controller {
	c := &Controller{
		dispatcher: deps.Dispatcher,
		loader:     deps.Loader,
		notifier:   deps.Notifier,
		navigator:  deps.Navigator,
		dialogs:    deps.Dialogs,
		store:      deps.Store,
		log:        deps.Logger,
		pageSize:   deps.PageSize,
	}

	if c.loader == nil {
		c.loader = nopLoader{}
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.navigator == nil {
		c.navigator = nopNavigator{}
	}
	if c.dialogs == nil {
		c.dialogs = nopDialogs{}
	}
	if c.store == nil {
		c.store = nopStore{}
	}
	if c.log == nil {
		c.log = logging.NopLogger()
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}

	return c
}

// Snapshot returns a copy of the current view-model for rendering.
func (c *Controller) Snapshot() ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vm
}

// SetDraftName updates the create-team draft.
func (c *Controller) SetDraftName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vm.Draft.Name = name
}

// CreatedTeamID returns the id of the most recently created team, or 0.
func (c *Controller) CreatedTeamID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createdTeamID
}

// NextURL returns the current page's next link, or "" on the last page.
func (c *Controller) NextURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vm.Teams.Next == nil {
		return ""
	}
	return *c.vm.Teams.Next
}

// PreviousURL returns the current page's previous link, or "" on the first
// page.
func (c *Controller) PreviousURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vm.Teams.Previous == nil {
		return ""
	}
	return *c.vm.Teams.Previous
}

// Load fetches the first page of teams behind the global loader. On success
// the whole pagination state is recomputed and any stored error detail from
// an earlier failure is cleared. On failure the server's detail is stored
// for the permission-denied view, which is then navigated to.
func (c *Controller) Load(ctx context.Context) error {
	c.loader.Start(loadingTeamsMessage)
	defer c.loader.Stop()

	page, err := c.dispatcher.ListTeams(ctx)
	if err != nil {
		c.log.Error("team list fetch failed", "error", err)
		if serr := c.store.Set(KeyErrorDetail, api.ErrorDetail(err)); serr != nil {
			c.log.Warn("failed to store error detail", "error", serr)
		}
		c.navigator.Go(PermissionDeniedView)
		return fmt.Errorf("list teams: %w", err)
	}

	c.mu.Lock()
	c.applyPage(page)
	c.mu.Unlock()

	if err := c.store.Delete(KeyErrorDetail); err != nil {
		c.log.Debug("no stored error detail to clear", "error", err)
	}
	return nil
}

// LoadPage fetches the given page URL behind the list-region loader. An
// empty URL only clears the region's loading flag. The loading flag is
// cleared unconditionally; a failed fetch leaves the view-model untouched
// and is reported only to the log.
func (c *Controller) LoadPage(ctx context.Context, pageURL string) {
	if pageURL == "" {
		c.mu.Lock()
		c.vm.List = RegionState{}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.vm.List = RegionState{Loading: true, Message: loadingTeamsMessage}
	c.mu.Unlock()

	page, err := c.dispatcher.Page(ctx, pageURL)
	if err != nil {
		// Page fetch failures stay invisible in the UI; the loader just
		// stops. The log is the only place they surface.
		c.log.Warn("page fetch failed", "url", pageURL, "error", err)
	} else {
		c.mu.Lock()
		c.vm.Teams = page
		if page.Next == nil {
			c.vm.NextDisabled = true
			c.vm.CurrentPage = page.Count / c.pageSize
		} else {
			c.vm.NextDisabled = false
			c.vm.CurrentPage = nextPageNumber(*page.Next) - 1
		}
		c.vm.PrevDisabled = page.Previous == nil
		c.mu.Unlock()
	}

	c.mu.Lock()
	c.vm.List = RegionState{}
	c.mu.Unlock()
}

// CreateTeam posts the draft name as a new host team. On success the draft
// is reset and the first page is refetched in place; on a validation failure
// the first team_name message becomes the draft error and the entered name
// is kept so the user can correct it.
func (c *Controller) CreateTeam(ctx context.Context) error {
	c.mu.Lock()
	name := c.vm.Draft.Name
	c.vm.Form = RegionState{Loading: true, Message: creatingTeamMessage}
	c.mu.Unlock()

	team, err := c.dispatcher.CreateTeam(ctx, name)
	if err != nil {
		msg := ""
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			msg = apiErr.FieldError("team_name")
		}
		if msg == "" {
			msg = api.ErrorDetail(err)
		}

		c.mu.Lock()
		c.vm.Draft.Err = msg
		c.vm.Form = RegionState{}
		c.mu.Unlock()

		c.notifier.Notify(LevelError, msg)
		return fmt.Errorf("create team: %w", err)
	}

	c.notifier.Notify(LevelSuccess, fmt.Sprintf("Team %s has been created successfully!", name))

	c.mu.Lock()
	c.createdTeamID = team.ID
	c.vm.Draft = Draft{}
	c.vm.Form = RegionState{}
	c.mu.Unlock()

	return c.Load(ctx)
}

// RemoveSelf asks for confirmation and, only when confirmed, removes the
// authenticated user from the team and refetches the first page. Dismissing
// the dialog performs no request.
func (c *Controller) RemoveSelf(ctx context.Context, teamID int) error {
	ok, err := c.dialogs.Confirm(ctx, confirmRemoveMessage)
	if err != nil {
		return fmt.Errorf("confirm dialog: %w", err)
	}
	if !ok {
		return nil
	}

	if err := c.dispatcher.RemoveSelf(ctx, teamID); err != nil {
		c.notifier.Notify(LevelError, api.ErrorDetail(err))
		return fmt.Errorf("remove self: %w", err)
	}

	c.mu.Lock()
	c.vm.Draft.Err = ""
	c.mu.Unlock()

	c.notifier.Notify(LevelInfo, "You have removed yourself successfully!")
	return c.Load(ctx)
}

// InviteOthers prompts for an email address and invites it to the team. A
// dismissed or empty prompt performs no request. The address is not
// validated client-side; the server's answer decides the notification.
func (c *Controller) InviteOthers(ctx context.Context, teamID int) error {
	email, ok, err := c.dialogs.Prompt(ctx, invitePromptTitle, invitePlaceholder)
	if err != nil {
		return fmt.Errorf("prompt dialog: %w", err)
	}
	if !ok || email == "" {
		return nil
	}

	if err := c.dispatcher.Invite(ctx, teamID, email); err != nil {
		c.notifier.Notify(LevelError, fmt.Sprintf("Couldn't invite %s to the team", email))
		return fmt.Errorf("invite %s: %w", email, err)
	}

	c.notifier.Notify(LevelSuccess, fmt.Sprintf("%s has been invited to the team", email))
	return nil
}

// applyPage replaces the team list and recomputes the pagination state for
// a first-page fetch. Callers hold c.mu.
func (c *Controller) applyPage(page api.TeamPage) {
	c.vm.Teams = page

	if page.Count == 0 {
		c.vm.ShowPagination = false
		c.vm.PaginationMessage = EmptyStateMessage
	} else {
		c.vm.ShowPagination = true
		c.vm.PaginationMessage = ""
	}

	c.vm.NextDisabled = page.Next == nil
	c.vm.PrevDisabled = page.Previous == nil

	if page.Next != nil {
		c.vm.CurrentPage = nextPageNumber(*page.Next) - 1
	} else {
		c.vm.CurrentPage = 1
	}
}

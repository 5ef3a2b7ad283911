package teams

import "teamdeck/internal/api"

// User-facing messages and view names.
const (
	// EmptyStateMessage is shown in place of the pagination controls when
	// the user belongs to no team.
	EmptyStateMessage = "No team exists for now. Start by creating a new team!"

	// PermissionDeniedView is the view navigated to when the initial list
	// fetch is rejected.
	PermissionDeniedView = "permission-denied"

	// KeyErrorDetail is the store key carrying the server's error detail
	// across views for display on the permission-denied view.
	KeyErrorDetail = "error_detail"

	loadingTeamsMessage  = "Loading Teams"
	creatingTeamMessage  = "Creating Team"
	confirmRemoveMessage = "Would you like to remove yourself?"
	invitePromptTitle    = "Add other members to this team"
	invitePlaceholder    = "Enter email address"
)

// Draft is the create-team form state. Err is the active validation message,
// empty when none.
type Draft struct {
	Name string
	Err  string
}

// RegionState is the loading indicator state for one UI region.
type RegionState struct {
	Loading bool
	Message string
}

// ViewModel is the state the UI renders from. It is replaced wholesale on
// every successful fetch; nothing survives a refresh.
type ViewModel struct {
	Draft Draft

	// Teams is the last fetched page.
	Teams api.TeamPage

	// CurrentPage is derived from the page's next/previous URLs.
	CurrentPage int

	NextDisabled bool
	PrevDisabled bool

	// ShowPagination is false exactly when Teams.Count is zero, in which
	// case PaginationMessage holds the empty-state text.
	ShowPagination    bool
	PaginationMessage string

	// List and Form are the per-region loading indicators for the team
	// list and the create-team form.
	List RegionState
	Form RegionState
}

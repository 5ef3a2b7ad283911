package api

// TeamMember is a single host belonging to a team. Fields beyond the id are
// passed through from the server as-is.
type TeamMember struct {
	ID          int    `json:"id"`
	User        string `json:"user"`
	Status      string `json:"status,omitempty"`
	Permissions string `json:"permissions,omitempty"`
}

// Team is a challenge host team as returned by the listing and creation
// endpoints.
type Team struct {
	ID        int          `json:"id"`
	TeamName  string       `json:"team_name"`
	CreatedBy string       `json:"created_by,omitempty"`
	Members   []TeamMember `json:"members,omitempty"`
}

// TeamPage is the pagination envelope used by the listing endpoints.
// Next and Previous are full page URLs, or nil on the last/first page.
type TeamPage struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Team  `json:"results"`
}

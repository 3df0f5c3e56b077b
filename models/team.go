package models

// Team is an entry of the team pool. ParentStageID is empty for pool teams
// that are not placed inside a stage.
type Team struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Color         string   `json:"color,omitempty"`
	GroupID       string   `json:"group_id,omitempty"`
	ParentStageID string   `json:"parent_stage_id,omitempty"`
	Position      Position `json:"position"`
}

// TeamGroup organizes teams for round-robin pairing and distribution checks.
type TeamGroup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// TeamRole is the part a team plays in a game.
type TeamRole string

const (
	RoleHome     TeamRole = "home"
	RoleAway     TeamRole = "away"
	RoleOfficial TeamRole = "official"
)

// TeamUsage is one appearance of a team in a game.
type TeamUsage struct {
	GameID string   `json:"game_id"`
	Role   TeamRole `json:"role"`
}

package models

// OperationType names a command produced by the generator's assignment pass.
type OperationType string

const (
	OpAssignTeam OperationType = "assign_team"
	OpAddEdges   OperationType = "add_edges"
)

// Operation is one state change to be applied to a graph. Generators return
// lists of operations instead of mutating a graph themselves; the consumer
// applies the whole list or nothing.
type Operation struct {
	Type   OperationType `json:"type"`
	GameID string        `json:"game_id,omitempty"`
	Slot   Slot          `json:"slot,omitempty"`
	TeamID string        `json:"team_id,omitempty"`
	Edges  []EdgeSpec    `json:"edges,omitempty"`
}

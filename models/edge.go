package models

// EdgeKind distinguishes static team assignments from dynamic game propagation.
type EdgeKind string

const (
	EdgeTeamToGame EdgeKind = "team_to_game"
	EdgeGameToGame EdgeKind = "game_to_game"
)

// Edge is a directed relation between two nodes, referenced by id.
// SourceHandle is only set for GameToGame edges.
type Edge struct {
	ID           string     `json:"id"`
	Kind         EdgeKind   `json:"kind"`
	Source       string     `json:"source"`
	SourceHandle OutputType `json:"source_handle,omitempty"`
	Target       string     `json:"target"`
	TargetHandle Slot       `json:"target_handle"`
}

// EdgeSpec describes a GameToGame edge to be created.
type EdgeSpec struct {
	SourceGameID string     `json:"source_game_id"`
	OutputType   OutputType `json:"output_type"`
	TargetGameID string     `json:"target_game_id"`
	TargetSlot   Slot       `json:"target_slot"`
}

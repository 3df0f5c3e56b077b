package models

// StageType is the competition category of a stage.
type StageType string

const (
	StageTypePreliminary  StageType = "preliminary"
	StageTypeIntermediate StageType = "intermediate"
	StageTypePlacement    StageType = "placement"
	StageTypeFinal        StageType = "final"
)

// Rank orders stage categories for sequence checks. Unknown types return -1.
func (t StageType) Rank() int {
	switch t {
	case StageTypePreliminary:
		return 0
	case StageTypeIntermediate:
		return 1
	case StageTypePlacement:
		return 2
	case StageTypeFinal:
		return 3
	default:
		return -1
	}
}

// ProgressionMode describes how games inside a stage are produced.
type ProgressionMode string

const (
	ProgressionManual     ProgressionMode = "manual"
	ProgressionRoundRobin ProgressionMode = "round_robin"
	ProgressionPlacement  ProgressionMode = "placement"
)

// PlacementFormat is the bracket shape of a placement stage.
type PlacementFormat string

const (
	FormatSingleElimination PlacementFormat = "single_elimination"
	FormatCrossover         PlacementFormat = "crossover"
)

// SourceType says which result of a source game (or group) feeds a bracket slot.
type SourceType string

const (
	SourceWinner SourceType = "winner"
	SourceLoser  SourceType = "loser"
	SourceRank   SourceType = "rank"
)

// SourceSpec points at a source game by index, optionally restricted to one stage.
type SourceSpec struct {
	Type          SourceType `json:"type" yaml:"type"`
	SourceIndex   int        `json:"source_index" yaml:"source_index"`
	SourceStageID string     `json:"source_stage_id,omitempty" yaml:"source_stage_id,omitempty"`
	Rank          int        `json:"rank,omitempty" yaml:"rank,omitempty"`
}

// SlotMapping feeds the home and away slot of one bracket game.
type SlotMapping struct {
	Home *SourceSpec `json:"home,omitempty" yaml:"home,omitempty"`
	Away *SourceSpec `json:"away,omitempty" yaml:"away,omitempty"`
}

// ProgressionMapping is keyed by the target game's standing.
type ProgressionMapping map[string]SlotMapping

// ProgressionConfig carries the generator settings a stage was built from.
type ProgressionConfig struct {
	DoubleRound bool               `json:"double_round,omitempty"`
	Positions   int                `json:"positions,omitempty"`
	Format      PlacementFormat    `json:"format,omitempty"`
	Group       string             `json:"group,omitempty"`
	Mapping     ProgressionMapping `json:"mapping,omitempty"`
}

// Stage is a phase of competition within a field.
type Stage struct {
	ID                  string             `json:"id"`
	ParentFieldID       string             `json:"parent_field_id"`
	Name                string             `json:"name"`
	Order               int                `json:"order"`
	StageType           StageType          `json:"stage_type"`
	ProgressionMode     ProgressionMode    `json:"progression_mode"`
	ProgressionConfig   *ProgressionConfig `json:"progression_config,omitempty"`
	StartTime           string             `json:"start_time,omitempty"`
	DefaultGameDuration int                `json:"default_game_duration"`
}

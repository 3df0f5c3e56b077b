package brackets

import (
	"context"

	"github.com/Dosada05/tournament-scheduler/models"
)

// GenerateStageParams carries what a stage generator needs to lay out the
// games of one stage instance.
type GenerateStageParams struct {
	Stage     *models.Stage
	TeamCount int
	// Suffix is appended to bracket tags when a stage is replicated, so that
	// standings stay unique across the tournament.
	Suffix   string
	Duration int
	Break    int
	NewID    func(kind string) string
}

type StageGenerator interface {
	GenerateGames(ctx context.Context, params GenerateStageParams) ([]*models.Game, error)

	GetName() string
}

// generatorFor returns the generator of a progression mode. Manual stages
// have none and start empty.
func generatorFor(mode models.ProgressionMode) (StageGenerator, bool) {
	switch mode {
	case models.ProgressionRoundRobin:
		return NewRoundRobinGenerator(), true
	case models.ProgressionPlacement:
		return NewSingleEliminationGenerator(), true
	default:
		return nil, false
	}
}

func newGame(p GenerateStageParams, index int, standing string) *models.Game {
	return &models.Game{
		ID:            p.NewID("game"),
		ParentStageID: p.Stage.ID,
		Standing:      standing,
		Duration:      p.Duration,
		BreakAfter:    p.Break,
		Position:      models.Position{X: 0, Y: float64(index) * 120},
	}
}

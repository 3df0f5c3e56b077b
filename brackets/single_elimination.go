package brackets

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/tournament-scheduler/models"
)

// Canonical bracket tags.
const (
	TagFinal      = "Final"
	TagThirdPlace = "3rd Place"
)

// PlacementGame is one game of a bracket before it is placed in a stage.
type PlacementGame struct {
	Tag   string `json:"tag"`
	Round int    `json:"round"`
}

// wire routes the result of one bracket game into a slot of a later one.
type wire struct {
	from   string
	output models.OutputType
	to     string
	slot   models.Slot
}

// roundTag names game i (1-based) of a round holding m games.
func roundTag(m, i int) string {
	switch m {
	case 2:
		return fmt.Sprintf("SF%d", i)
	case 4:
		return fmt.Sprintf("QF%d", i)
	default:
		return fmt.Sprintf("R%d-%d", 2*m, i)
	}
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// placementTags validates a bracket shape and returns its games in play
// order: early rounds first, the 3rd place game before the final.
func placementTags(positions int, format models.PlacementFormat) ([]PlacementGame, error) {
	switch format {
	case models.FormatCrossover:
		if positions != 4 {
			return nil, fmt.Errorf("%w: crossover needs 4 positions, got %d", ErrInvalidConfig, positions)
		}
		return []PlacementGame{
			{Tag: "CO1", Round: 1},
			{Tag: "CO2", Round: 1},
			{Tag: TagThirdPlace, Round: 2},
			{Tag: TagFinal, Round: 2},
		}, nil
	case models.FormatSingleElimination, "":
	default:
		return nil, fmt.Errorf("%w: unknown placement format %q", ErrInvalidConfig, format)
	}
	if !isPowerOfTwo(positions) {
		return nil, fmt.Errorf("%w: single elimination needs a power of two positions, got %d", ErrInvalidConfig, positions)
	}
	if positions == 2 {
		return []PlacementGame{{Tag: TagFinal, Round: 1}}, nil
	}

	var games []PlacementGame
	round := 1
	for m := positions / 2; m >= 2; m /= 2 {
		for i := 1; i <= m; i++ {
			games = append(games, PlacementGame{Tag: roundTag(m, i), Round: round})
		}
		round++
	}
	games = append(games,
		PlacementGame{Tag: TagThirdPlace, Round: round},
		PlacementGame{Tag: TagFinal, Round: round},
	)
	return games, nil
}

// GeneratePlacementGames lists the games of a bracket: 2 positions give a
// final; 4 give two semifinals, a 3rd place game and a final; 8 add four
// quarterfinals in front. Crossover gives CO1, CO2, 3rd place and final.
func GeneratePlacementGames(positions int, format models.PlacementFormat) ([]PlacementGame, error) {
	return placementTags(positions, format)
}

// bracketWiring returns the edges inside a bracket: each round's winners move
// on pairwise, and the two semifinals (or crossover games) send their winners
// to the final and their losers to the 3rd place game.
func bracketWiring(positions int, format models.PlacementFormat) []wire {
	if format == models.FormatCrossover {
		return finalWires("CO1", "CO2")
	}
	if positions < 4 {
		return nil
	}
	var wires []wire
	for m := positions / 2; m > 2; m /= 2 {
		for i := 1; i <= m; i++ {
			slot := models.SlotHome
			if i%2 == 0 {
				slot = models.SlotAway
			}
			wires = append(wires, wire{
				from:   roundTag(m, i),
				output: models.OutputWinner,
				to:     roundTag(m/2, (i+1)/2),
				slot:   slot,
			})
		}
	}
	return append(wires, finalWires("SF1", "SF2")...)
}

func finalWires(a, b string) []wire {
	return []wire{
		{from: a, output: models.OutputWinner, to: TagFinal, slot: models.SlotHome},
		{from: b, output: models.OutputWinner, to: TagFinal, slot: models.SlotAway},
		{from: a, output: models.OutputLoser, to: TagThirdPlace, slot: models.SlotHome},
		{from: b, output: models.OutputLoser, to: TagThirdPlace, slot: models.SlotAway},
	}
}

// findByTag returns the game whose standing is tag, or tag followed by a
// space and a replication suffix.
func findByTag(games []*models.Game, tag string) (*models.Game, bool) {
	for _, n := range games {
		if n.Standing == tag || strings.HasPrefix(n.Standing, tag+" ") {
			return n, true
		}
	}
	return nil, false
}

// firstRound returns the games of a stage's opening bracket round.
func firstRound(stage *models.Stage, games []*models.Game) []*models.Game {
	cfg := stage.ProgressionConfig
	if cfg == nil {
		return nil
	}
	tags, err := placementTags(cfg.Positions, cfg.Format)
	if err != nil {
		return nil
	}
	var out []*models.Game
	for _, t := range tags {
		if t.Round != 1 {
			break // теги отсортированы по раундам
		}
		if n, ok := findByTag(games, t.Tag); ok {
			out = append(out, n)
		}
	}
	return out
}

// InternalEdges resolves the bracket wiring of a placement stage against its
// games. Wires whose endpoints are missing are skipped.
func InternalEdges(stage *models.Stage, games []*models.Game) []models.EdgeSpec {
	cfg := stage.ProgressionConfig
	if cfg == nil {
		return nil
	}
	var out []models.EdgeSpec
	for _, w := range bracketWiring(cfg.Positions, cfg.Format) {
		src, ok1 := findByTag(games, w.from)
		dst, ok2 := findByTag(games, w.to)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, models.EdgeSpec{
			SourceGameID: src.ID,
			OutputType:   w.output,
			TargetGameID: dst.ID,
			TargetSlot:   w.slot,
		})
	}
	return out
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() StageGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateGames creates the bracket games of a placement stage, labelled with
// their canonical tags plus the replication suffix.
func (g *SingleEliminationGenerator) GenerateGames(ctx context.Context, params GenerateStageParams) ([]*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := params.Stage.ProgressionConfig
	if cfg == nil {
		return nil, fmt.Errorf("%w: placement stage %q has no progression config", ErrInvalidConfig, params.Stage.Name)
	}
	tags, err := placementTags(cfg.Positions, cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("placement stage %q: %w", params.Stage.Name, err)
	}

	games := make([]*models.Game, 0, len(tags))
	for i, t := range tags {
		standing := t.Tag
		if params.Suffix != "" {
			standing += " " + params.Suffix
		}
		games = append(games, newGame(params, i, standing))
	}
	return games, nil
}

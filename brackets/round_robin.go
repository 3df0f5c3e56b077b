package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
)

// Pairing is one game of a round robin, as indices into the team list.
type Pairing struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Round int `json:"round"`
}

// GenerateRoundRobinGames pairs n teams with the circle method: one team stays
// fixed while the others rotate, so every round has every team at most once.
// A single round yields n*(n-1)/2 pairings, a double round n*(n-1) with home
// and away swapped in the second leg. Fewer than two teams yield nothing.
func GenerateRoundRobinGames(n int, double bool) []Pairing {
	if n < 2 {
		return nil
	}
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i
	}
	if n%2 == 1 {
		slots = append(slots, -1) // bye
	}
	size := len(slots)

	pairs := make([]Pairing, 0, n*(n-1)/2)
	for round := 0; round < size-1; round++ {
		for i := 0; i < size/2; i++ {
			a, b := slots[i], slots[size-1-i]
			if a < 0 || b < 0 {
				continue
			}
			// alternate the fixed team's side so home counts stay balanced
			if i == 0 && round%2 == 1 {
				a, b = b, a
			}
			pairs = append(pairs, Pairing{Home: a, Away: b, Round: round + 1})
		}
		// rotate everything except slots[0]
		last := slots[size-1]
		copy(slots[2:], slots[1:size-1])
		slots[1] = last
	}

	if double {
		rounds, first := size-1, len(pairs)
		for i := 0; i < first; i++ {
			p := pairs[i]
			pairs = append(pairs, Pairing{Home: p.Away, Away: p.Home, Round: p.Round + rounds})
		}
	}
	return pairs
}

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() StageGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateGames creates one game per pairing. Games are numbered after the
// stage name; teams are not assigned here.
func (g *RoundRobinGenerator) GenerateGames(ctx context.Context, params GenerateStageParams) ([]*models.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.TeamCount < 2 {
		return nil, fmt.Errorf("%w: round robin stage %q needs at least 2 teams, got %d", ErrInvalidConfig, params.Stage.Name, params.TeamCount)
	}
	double := params.Stage.ProgressionConfig != nil && params.Stage.ProgressionConfig.DoubleRound
	pairs := GenerateRoundRobinGames(params.TeamCount, double)

	games := make([]*models.Game, 0, len(pairs))
	for i := range pairs {
		games = append(games, newGame(params, i, fmt.Sprintf("%s %d", params.Stage.Name, i+1)))
	}
	return games, nil
}

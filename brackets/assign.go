package brackets

import (
	"log/slog"
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
)

// AssignTeamsToTournamentGames turns a generated tournament and its teams into
// operations. Round-robin stages get assign_team operations: the team pool is
// split evenly over the round-robin stages sharing an order and each game
// receives the next circle-method pairing of its stage's teams, wrapping
// around. Placement stages get one add_edges operation from
// CreatePlacementEdges; a placement stage with no earlier stage has its
// opening games filled with teams in pool order. Nothing is mutated.
func AssignTeamsToTournamentGames(t *Tournament, teams []*models.Team, logger *slog.Logger) []models.Operation {
	if logger == nil {
		logger = slog.Default()
	}
	ops := []models.Operation{}

	levels := make(map[int][]*models.Stage)
	for _, s := range t.Stages {
		levels[s.Order] = append(levels[s.Order], s)
	}
	orders := make([]int, 0, len(levels))
	for o := range levels {
		orders = append(orders, o)
	}
	sort.Ints(orders)

	var prev []*models.Stage
	for _, order := range orders {
		level := levels[order]
		ops = append(ops, assignRoundRobin(t, level, teams, logger)...)

		for i, s := range level {
			if s.ProgressionMode != models.ProgressionPlacement {
				continue
			}
			targets := t.StageGames(s.ID)
			// Первый уровень: команды ставятся в первый раунд напрямую
			if len(prev) == 0 {
				ops = append(ops, seedOpeningRound(s, targets, teams)...)
				continue
			}
			edges := CreatePlacementEdges(s, targets, sourceGames(t, level, prev, i), logger)
			if len(edges) > 0 {
				ops = append(ops, models.Operation{Type: models.OpAddEdges, Edges: edges})
			}
		}
		prev = level
	}
	return ops
}

// AssignTeams runs the assignment pass with the generator's logger.
func (g *Generator) AssignTeams(t *Tournament, teams []*models.Team) []models.Operation {
	return AssignTeamsToTournamentGames(t, teams, g.logger)
}

func assignRoundRobin(t *Tournament, level []*models.Stage, teams []*models.Team, logger *slog.Logger) []models.Operation {
	var rr []*models.Stage
	for _, s := range level {
		if s.ProgressionMode == models.ProgressionRoundRobin {
			rr = append(rr, s)
		}
	}
	var ops []models.Operation
	offset := 0
	for i, size := range splitEven(len(teams), len(rr)) {
		s := rr[i]
		chunk := teams[offset : offset+size]
		offset += size
		if len(chunk) < 2 {
			logger.Warn("round robin stage left without teams",
				slog.String("stage_id", s.ID),
				slog.Int("teams", len(chunk)),
			)
			continue
		}
		double := s.ProgressionConfig != nil && s.ProgressionConfig.DoubleRound
		pairs := GenerateRoundRobinGames(len(chunk), double)
		for k, n := range t.StageGames(s.ID) {
			p := pairs[k%len(pairs)]
			ops = append(ops,
				models.Operation{Type: models.OpAssignTeam, GameID: n.ID, Slot: models.SlotHome, TeamID: chunk[p.Home].ID},
				models.Operation{Type: models.OpAssignTeam, GameID: n.ID, Slot: models.SlotAway, TeamID: chunk[p.Away].ID},
			)
		}
	}
	return ops
}

// sourceGames returns the games feeding the i-th stage of a level. When both
// levels have the same number of stages they chain stage by stage; otherwise
// every game of the previous level is a source.
func sourceGames(t *Tournament, level, prev []*models.Stage, i int) []*models.Game {
	if len(level) == len(prev) {
		return t.StageGames(prev[i].ID)
	}
	var out []*models.Game
	for _, s := range prev {
		out = append(out, t.StageGames(s.ID)...)
	}
	return out
}

func seedOpeningRound(s *models.Stage, targets []*models.Game, teams []*models.Team) []models.Operation {
	var ops []models.Operation
	k := 0
	for _, n := range firstRound(s, targets) {
		for _, slot := range []models.Slot{models.SlotHome, models.SlotAway} {
			if k >= len(teams) {
				return ops
			}
			ops = append(ops, models.Operation{Type: models.OpAssignTeam, GameID: n.ID, Slot: slot, TeamID: teams[k].ID})
			k++
		}
	}
	return ops
}

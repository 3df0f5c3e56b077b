package models

import "sort"

// GameStage returns the stage that owns a game.
func (g *Graph) GameStage(gameID string) (*Stage, bool) {
	game, ok := g.games[gameID]
	if !ok {
		return nil, false
	}
	return g.Stage(game.ParentStageID)
}

// GameField returns the field a game is played on, following game -> stage -> field.
func (g *Graph) GameField(gameID string) (*Field, bool) {
	stage, ok := g.GameStage(gameID)
	if !ok {
		return nil, false
	}
	return g.Field(stage.ParentFieldID)
}

// FieldStages lists the stages of a field by Order, ties broken by insertion order.
func (g *Graph) FieldStages(fieldID string) []*Stage {
	var out []*Stage
	for _, s := range g.Stages() {
		if s.ParentFieldID == fieldID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// StageGames lists the games of a stage in array sequence.
func (g *Graph) StageGames(stageID string) []*Game {
	var out []*Game
	for _, n := range g.Games() {
		if n.ParentStageID == stageID {
			out = append(out, n)
		}
	}
	return out
}

// StageTeams lists the teams placed inside a stage.
func (g *Graph) StageTeams(stageID string) []*Team {
	var out []*Team
	for _, t := range g.Teams() {
		if t.ParentStageID == stageID {
			out = append(out, t)
		}
	}
	return out
}

// TeamUsage lists every game slot in which a team plays or officiates.
func (g *Graph) TeamUsage(teamID string) []TeamUsage {
	var out []TeamUsage
	for _, n := range g.Games() {
		if n.HomeTeamID != nil && *n.HomeTeamID == teamID {
			out = append(out, TeamUsage{GameID: n.ID, Role: RoleHome})
		}
		if n.AwayTeamID != nil && *n.AwayTeamID == teamID {
			out = append(out, TeamUsage{GameID: n.ID, Role: RoleAway})
		}
		if n.OfficialTeamID != nil && *n.OfficialTeamID == teamID {
			out = append(out, TeamUsage{GameID: n.ID, Role: RoleOfficial})
		}
	}
	return out
}

// GamesByStanding returns the games carrying a standing label.
func (g *Graph) GamesByStanding(standing string) []*Game {
	var out []*Game
	for _, n := range g.Games() {
		if n.Standing == standing {
			out = append(out, n)
		}
	}
	return out
}

// Descendants collects id and every node owned by it (field -> stages -> games/teams).
func (g *Graph) Descendants(id string) map[string]struct{} {
	out := make(map[string]struct{})
	kind, ok := g.Kind(id)
	if !ok {
		return out
	}
	out[id] = struct{}{}
	switch kind {
	case KindField:
		for _, s := range g.stages {
			if s.ParentFieldID == id {
				for child := range g.Descendants(s.ID) {
					out[child] = struct{}{}
				}
			}
		}
	case KindStage:
		for _, n := range g.games {
			if n.ParentStageID == id {
				out[n.ID] = struct{}{}
			}
		}
		for _, t := range g.teams {
			if t.ParentStageID == id {
				out[t.ID] = struct{}{}
			}
		}
	}
	return out
}

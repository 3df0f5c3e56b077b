package validation

import (
	"github.com/Dosada05/tournament-scheduler/models"
)

func (v *run) checkStandings() {
	byStanding := make(map[string][]string)
	var order []string
	for _, n := range v.g.Games() {
		if n.Standing == "" {
			continue
		}
		if _, ok := byStanding[n.Standing]; !ok {
			order = append(order, n.Standing)
		}
		byStanding[n.Standing] = append(byStanding[n.Standing], n.ID)
	}
	for _, standing := range order {
		ids := byStanding[standing]
		if len(ids) > 1 {
			v.c.warn(DuplicateStanding, standing, map[string]any{
				"standing": standing,
				"count":    len(ids),
			}, ids...)
		}
	}

	for _, n := range v.g.Games() {
		for _, slot := range []models.Slot{models.SlotHome, models.SlotAway} {
			ref := n.Dynamic(slot)
			if ref == nil {
				continue
			}
			if _, ok := byStanding[ref.MatchName]; !ok {
				v.c.warn(BrokenProgression, string(slot), map[string]any{
					"standing":  n.Standing,
					"slot":      string(slot),
					"matchName": ref.MatchName,
					"type":      string(ref.Type),
				}, n.ID)
			}
		}
	}
}

// teamGameCounts counts the games each team plays in (officiating excluded).
// Static slot ids and TeamToGame edges both count, once per game.
func (v *run) teamGameCounts() map[string]int {
	played := make(map[string]map[string]struct{})
	mark := func(teamID, gameID string) {
		if played[teamID] == nil {
			played[teamID] = make(map[string]struct{})
		}
		played[teamID][gameID] = struct{}{}
	}
	for _, n := range v.g.Games() {
		if n.HomeTeamID != nil {
			mark(*n.HomeTeamID, n.ID)
		}
		if n.AwayTeamID != nil {
			mark(*n.AwayTeamID, n.ID)
		}
	}
	for _, e := range v.g.Edges() {
		if e.Kind != models.EdgeTeamToGame {
			continue
		}
		if _, ok := v.g.Game(e.Target); ok {
			mark(e.Source, e.Target)
		}
	}
	counts := make(map[string]int, len(played))
	for teamID, games := range played {
		counts[teamID] = len(games)
	}
	return counts
}

func (v *run) checkTeams() {
	games := v.g.Games()
	teams := v.g.Teams()
	if len(games) > 0 && len(teams) == 0 {
		v.c.warn(NoTeams, "", nil)
	}
	if len(games) == 0 {
		v.c.warn(NoGames, "", nil)
	}

	counts := v.teamGameCounts()
	for _, t := range teams {
		if t.GroupID != "" {
			if _, ok := v.g.Group(t.GroupID); !ok {
				v.c.warn(OrphanedTeam, "", map[string]any{
					"team":  t.Label,
					"group": t.GroupID,
				}, t.ID)
			}
		}
		if counts[t.ID] == 0 && len(v.g.TeamUsage(t.ID)) == 0 {
			v.c.warn(TeamWithoutGames, "", map[string]any{"team": t.Label}, t.ID)
		}
	}
}

func (v *run) checkFields() {
	fields := v.g.Fields()
	if len(fields) == 0 && len(v.g.Games()) > 0 {
		v.c.warn(UnassignedField, "", nil)
	}
	for _, f := range fields {
		used := false
		for _, s := range v.g.FieldStages(f.ID) {
			if len(v.g.StageGames(s.ID)) > 0 {
				used = true
				break
			}
		}
		if !used {
			v.c.warn(UnusedField, "", map[string]any{"field": f.Name}, f.ID)
		}
	}
}

// checkDistribution compares game counts inside every team group with at
// least two members.
func (v *run) checkDistribution() {
	counts := v.teamGameCounts()
	members := make(map[string][]*models.Team)
	for _, t := range v.g.Teams() {
		if t.GroupID != "" {
			members[t.GroupID] = append(members[t.GroupID], t)
		}
	}
	for _, group := range v.g.Groups() {
		list := members[group.ID]
		if len(list) < 2 {
			continue // одной команде не с кем сравниваться
		}
		lo, hi := counts[list[0].ID], counts[list[0].ID]
		ids := make([]string, 0, len(list))
		for _, t := range list {
			c := counts[t.ID]
			if c < lo {
				lo = c
			}
			if c > hi {
				hi = c
			}
			ids = append(ids, t.ID)
		}
		if lo != hi {
			v.c.warn(UnevenGameDistribution, group.ID, map[string]any{
				"group": group.Name,
				"min":   lo,
				"max":   hi,
			}, ids...)
		}
	}
}

package validation

import "github.com/Dosada05/tournament-scheduler/models"

// slotResolvable reports whether a slot has a static team or a source that
// will produce one.
func (v *run) slotResolvable(game *models.Game, slot models.Slot, standings map[string]struct{}) bool {
	if id := game.TeamID(slot); id != nil {
		if _, ok := v.g.Team(*id); ok {
			return true
		}
	}
	for _, e := range v.g.EdgesInto(game.ID, slot) {
		switch e.Kind {
		case models.EdgeTeamToGame:
			if _, ok := v.g.Team(e.Source); ok {
				return true
			}
		case models.EdgeGameToGame:
			if _, ok := v.g.Game(e.Source); ok {
				return true
			}
		}
	}
	if ref := game.Dynamic(slot); ref != nil {
		if _, ok := standings[ref.MatchName]; ok {
			return true
		}
	}
	return false
}

func (v *run) standingSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, n := range v.g.Games() {
		if n.Standing != "" {
			set[n.Standing] = struct{}{}
		}
	}
	return set
}

func (v *run) checkGameInputs() {
	standings := v.standingSet()
	for _, n := range v.g.Games() {
		for _, slot := range []models.Slot{models.SlotHome, models.SlotAway} {
			if !v.slotResolvable(n, slot, standings) {
				v.c.fail(IncompleteGameInputs, string(slot), map[string]any{
					"standing": n.Standing,
					"slot":     string(slot),
				}, n.ID)
			}
		}

		if n.OfficialTeamID == nil {
			continue
		}
		official := *n.OfficialTeamID
		if (n.HomeTeamID != nil && *n.HomeTeamID == official) || (n.AwayTeamID != nil && *n.AwayTeamID == official) {
			label := official
			if t, ok := v.g.Team(official); ok {
				label = t.Label
			}
			v.c.fail(OfficialPlaying, "", map[string]any{
				"standing": n.Standing,
				"team":     label,
			}, n.ID, official)
		}
	}
}

package interchange

import "github.com/Dosada05/tournament-scheduler/models"

// Export writes g in the flat format: fields by order, and inside each field
// the games of its stages in stage order and array sequence. Static slots are
// written as the team label, dynamic slots in winner/loser syntax.
func Export(g *models.Graph) Schedule {
	out := make(Schedule, 0, len(g.Fields()))
	for _, f := range g.Fields() {
		rec := FieldRecord{Field: f.Name, Games: []GameRecord{}}
		for _, s := range g.FieldStages(f.ID) {
			for _, n := range g.StageGames(s.ID) {
				rec.Games = append(rec.Games, GameRecord{
					Stage:      s.Name,
					Standing:   n.Standing,
					Home:       slotRef(g, n, models.SlotHome),
					Away:       slotRef(g, n, models.SlotAway),
					Official:   teamLabel(g, n.OfficialTeamID),
					BreakAfter: n.BreakAfter,
				})
			}
		}
		out = append(out, rec)
	}
	return out
}

// Marshal exports g as compact JSON.
func Marshal(g *models.Graph) ([]byte, error) {
	return Export(g).Marshal()
}

func slotRef(g *models.Graph, n *models.Game, slot models.Slot) string {
	if ref := n.Dynamic(slot); ref != nil {
		return FormatDynamic(*ref)
	}
	return teamLabel(g, n.TeamID(slot))
}

func teamLabel(g *models.Graph, id *string) string {
	if id == nil {
		return ""
	}
	if t, ok := g.Team(*id); ok {
		return t.Label
	}
	return *id
}

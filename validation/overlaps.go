package validation

import (
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// interval is the half-open [start, end) occupation of a game in minutes.
type interval struct {
	game  *models.Game
	start int
	end   int
}

const minutesPerDay = 24 * 60

func (a interval) overlaps(b interval) bool {
	// игра после полуночи занимает и начало следующих суток
	return a.spans(b) || a.shift(-minutesPerDay).spans(b) || a.spans(b.shift(-minutesPerDay))
}

func (a interval) spans(b interval) bool {
	return a.start < b.end && b.start < a.end
}

func (a interval) shift(by int) interval {
	return interval{game: a.game, start: a.start + by, end: a.end + by}
}

// timedGames returns the intervals of games with a parseable start time.
// Games whose time cannot be evaluated are skipped, never reported.
func (v *run) timedGames() []interval {
	var out []interval
	for _, n := range v.g.Games() {
		iv, ok := v.intervalOf(n)
		if ok {
			out = append(out, iv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func (v *run) intervalOf(n *models.Game) (interval, bool) {
	start, ok := timing.ParseClock(n.StartTime)
	if !ok {
		return interval{}, false
	}
	stage, _ := v.g.Stage(n.ParentStageID)
	return interval{game: n, start: start, end: start + v.engine.GameDuration(stage, n)}, true
}

func (v *run) checkFieldOverlaps() {
	byField := make(map[string][]interval)
	var fieldOrder []string
	for _, iv := range v.timedGames() {
		field, ok := v.g.GameField(iv.game.ID)
		if !ok {
			continue
		}
		if _, seen := byField[field.ID]; !seen {
			fieldOrder = append(fieldOrder, field.ID)
		}
		byField[field.ID] = append(byField[field.ID], iv)
	}

	for _, fieldID := range fieldOrder {
		field, _ := v.g.Field(fieldID)
		list := byField[fieldID]
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if !list[i].overlaps(list[j]) {
					continue
				}
				v.c.fail(FieldOverlap, "", map[string]any{
					"field":  field.Name,
					"game1":  list[i].game.Standing,
					"game2":  list[j].game.Standing,
					"start1": list[i].game.StartTime,
					"start2": list[j].game.StartTime,
				}, list[i].game.ID, list[j].game.ID)
			}
		}
	}
}

type appearance struct {
	iv   interval
	role models.TeamRole
}

// checkTeamOverlaps flags a team that is busy in two overlapping games on any
// fields. Playing and officiating both count as busy; the roles involved are
// reported in the message params.
func (v *run) checkTeamOverlaps() {
	busy := make(map[string][]appearance)
	var teamOrder []string
	note := func(teamID *string, iv interval, role models.TeamRole) {
		if teamID == nil {
			return
		}
		if _, ok := busy[*teamID]; !ok {
			teamOrder = append(teamOrder, *teamID)
		}
		busy[*teamID] = append(busy[*teamID], appearance{iv: iv, role: role})
	}
	for _, iv := range v.timedGames() {
		note(iv.game.HomeTeamID, iv, models.RoleHome)
		note(iv.game.AwayTeamID, iv, models.RoleAway)
		note(iv.game.OfficialTeamID, iv, models.RoleOfficial)
	}

	for _, teamID := range teamOrder {
		label := teamID
		if t, ok := v.g.Team(teamID); ok {
			label = t.Label
		}
		list := busy[teamID]
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i], list[j]
				if a.iv.game.ID == b.iv.game.ID || !a.iv.overlaps(b.iv) {
					continue
				}
				v.c.warn(TeamOverlap, teamID, map[string]any{
					"team":  label,
					"game1": a.iv.game.Standing,
					"game2": b.iv.game.Standing,
					"role1": roleKind(a.role),
					"role2": roleKind(b.role),
				}, teamID, a.iv.game.ID, b.iv.game.ID)
			}
		}
	}
}

func roleKind(r models.TeamRole) string {
	if r == models.RoleOfficial {
		return "officiating"
	}
	return "playing"
}

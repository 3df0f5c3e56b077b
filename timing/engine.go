package timing

import (
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
)

// Engine propagates start times through the stages of a schedule.
type Engine struct {
	// DefaultDuration applies to games and stages that declare no duration.
	DefaultDuration int
	// DefaultBreak is the break given to newly created games.
	DefaultBreak int
	// DefaultStart anchors the first stage level when a stage has no start time.
	DefaultStart string
}

func NewEngine(defaultDuration, defaultBreak int) Engine {
	return Engine{
		DefaultDuration: defaultDuration,
		DefaultBreak:    defaultBreak,
		DefaultStart:    DefaultStartTime,
	}
}

// GameDuration resolves the effective duration of a game inside its stage.
func (e Engine) GameDuration(stage *models.Stage, game *models.Game) int {
	if game.Duration > 0 {
		return game.Duration
	}
	if stage != nil && stage.DefaultGameDuration > 0 {
		return stage.DefaultGameDuration
	}
	return e.DefaultDuration
}

// StageEndTime is the start of the last game plus its duration. The break
// after the final game is never added. It reports false for a stage without
// games or whose last game has no parseable start time.
func (e Engine) StageEndTime(stage *models.Stage, games []*models.Game) (string, bool) {
	if len(games) == 0 {
		return "", false
	}
	last := games[len(games)-1]
	return AddMinutes(last.StartTime, e.GameDuration(stage, last))
}

// Calculate resolves the start time of every non-manual game in g. It returns
// the ids of games whose start time changed.
func (e Engine) Calculate(g *models.Graph) []string {
	return e.propagate(g, func(*models.Stage, int) bool { return true })
}

// RecalculateFrom recomputes games at or after position index inside stageID,
// and every game of every stage whose start is gated on that stage's end.
// Earlier games keep their stored times and act as anchors.
func (e Engine) RecalculateFrom(g *models.Graph, stageID string, index int) []string {
	origin, ok := g.Stage(stageID)
	if !ok {
		return nil
	}
	return e.propagate(g, func(s *models.Stage, i int) bool {
		if s.ID == origin.ID {
			return i >= index
		}
		return s.Order > origin.Order
	})
}

// propagate lays out stages level by level. Stages sharing an Order run in
// parallel and start on the same boundary: the latest end among the stages of
// the previous level. An explicit stage start time overrides the boundary.
func (e Engine) propagate(g *models.Graph, writable func(*models.Stage, int) bool) []string {
	levels := make(map[int][]*models.Stage)
	for _, s := range g.Stages() {
		levels[s.Order] = append(levels[s.Order], s)
	}
	orders := make([]int, 0, len(levels))
	for o := range levels {
		orders = append(orders, o)
	}
	sort.Ints(orders)

	defaultStart, ok := ParseClock(e.DefaultStart)
	if !ok {
		defaultStart, _ = ParseClock(DefaultStartTime)
	}

	var changed []string
	boundary, haveBoundary := 0, false
	for _, order := range orders {
		levelEnd, haveEnd := 0, false
		for _, stage := range levels[order] {
			// Явное время этапа важнее границы предыдущего уровня
			start := defaultStart
			if m, ok := ParseClock(stage.StartTime); ok {
				start = m
			} else if haveBoundary {
				start = boundary
			}
			end, ids := e.layoutStage(g, stage, start, writable)
			changed = append(changed, ids...)
			if !haveEnd || end > levelEnd {
				levelEnd, haveEnd = end, true
			}
		}
		if haveEnd {
			boundary, haveBoundary = levelEnd, true
		}
	}
	// Ревизия растёт только при реальных изменениях
	if len(changed) > 0 {
		g.Touch()
	}
	return changed
}

// layoutStage walks the games of a stage in array sequence. start[i] is
// start[i-1] + duration[i-1] + breakAfter[i-1]; manual or frozen games keep
// their stored time and become the anchor for the following games. Minutes are
// tracked on an absolute scale so that level boundaries compare correctly
// across midnight. It returns the stage end and the ids of rewritten games.
func (e Engine) layoutStage(g *models.Graph, stage *models.Stage, start int, writable func(*models.Stage, int) bool) (int, []string) {
	games := g.StageGames(stage.ID)
	if len(games) == 0 {
		return start, nil
	}
	var changed []string
	cur, end := start, start
	for i, game := range games {
		// Ручное время не трогаем, дальше считаем от него
		if game.ManualTime || !writable(stage, i) {
			if m, ok := ParseClock(game.StartTime); ok {
				cur = anchor(cur, m)
			}
		} else {
			next := FormatClock(cur)
			if game.StartTime != next {
				game.StartTime = next
				changed = append(changed, game.ID)
			}
		}
		dur := e.GameDuration(stage, game)
		end = cur + dur
		cur = end + game.BreakAfter
	}
	return end, changed
}

// anchor places a minutes-of-day value on the same day as the running
// absolute counter.
func anchor(running, minuteOfDay int) int {
	day := running / minutesPerDay
	if running < 0 {
		day--
	}
	return day*minutesPerDay + minuteOfDay
}

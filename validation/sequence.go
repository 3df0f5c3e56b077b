package validation

import (
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// stageStart is the earliest parseable start among a stage's games, falling
// back to the stage's own start time.
func (v *run) stageStart(stage *models.Stage) (int, bool) {
	best, found := 0, false
	for _, n := range v.g.StageGames(stage.ID) {
		if m, ok := timing.ParseClock(n.StartTime); ok && (!found || m < best) {
			best, found = m, true
		}
	}
	if found {
		return best, true
	}
	return timing.ParseClock(stage.StartTime)
}

// checkProgressionOrder rejects GameToGame edges that flow from a later stage
// into an earlier one, either by stage order or by stage start time.
func (v *run) checkProgressionOrder() {
	for _, e := range v.g.Edges() {
		if e.Kind != models.EdgeGameToGame {
			continue
		}
		src, ok := v.g.GameStage(e.Source)
		if !ok {
			continue
		}
		dst, ok := v.g.GameStage(e.Target)
		if !ok || src.ID == dst.ID {
			continue
		}

		// Источник позже по порядку этапов или по времени начала
		later := src.Order > dst.Order
		if !later {
			srcStart, ok1 := v.stageStart(src)
			dstStart, ok2 := v.stageStart(dst)
			later = ok1 && ok2 && srcStart > dstStart
		}
		if !later {
			continue
		}
		srcGame, _ := v.g.Game(e.Source)
		dstGame, _ := v.g.Game(e.Target)
		v.c.fail(ProgressionOrder, e.ID, map[string]any{
			"sourceStage": src.Name,
			"targetStage": dst.Name,
			"source":      srcGame.Standing,
			"target":      dstGame.Standing,
		}, e.Source, e.Target)
	}
}

// checkStageSequence compares consecutive stages of each field: start times
// must not decrease and categories must not step backwards.
func (v *run) checkStageSequence() {
	for _, f := range v.g.Fields() {
		stages := v.g.FieldStages(f.ID)
		for i := 1; i < len(stages); i++ {
			prev, cur := stages[i-1], stages[i]

			prevStart, ok1 := v.stageStart(prev)
			curStart, ok2 := v.stageStart(cur)
			if ok1 && ok2 && curStart < prevStart {
				v.c.warn(StageSequenceTime, "", map[string]any{
					"field":  f.Name,
					"stage1": prev.Name,
					"stage2": cur.Name,
				}, prev.ID, cur.ID)
			}

			pr, cr := prev.StageType.Rank(), cur.StageType.Rank()
			if pr >= 0 && cr >= 0 && cr < pr {
				v.c.warn(StageSequenceType, "", map[string]any{
					"field":  f.Name,
					"stage1": prev.Name,
					"type1":  string(prev.StageType),
					"stage2": cur.Name,
					"type2":  string(cur.StageType),
				}, prev.ID, cur.ID)
			}
		}
	}
}

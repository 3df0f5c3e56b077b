package timing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// buildStage creates one field with one stage holding games with the given
// durations and breaks.
func buildStage(t *testing.T, g *models.Graph, fieldID, stageID string, order int, start string, durations, breaks []int) []*models.Game {
	t.Helper()
	require.Equal(t, len(durations), len(breaks))
	if _, ok := g.Field(fieldID); !ok {
		g.PutField(&models.Field{ID: fieldID, Name: fieldID})
	}
	g.PutStage(&models.Stage{ID: stageID, ParentFieldID: fieldID, Name: stageID, Order: order, StartTime: start})
	games := make([]*models.Game, len(durations))
	for i := range durations {
		games[i] = &models.Game{
			ID:            fmt.Sprintf("%s-g%d", stageID, i+1),
			ParentStageID: stageID,
			Standing:      fmt.Sprintf("%s %d", stageID, i+1),
			Duration:      durations[i],
			BreakAfter:    breaks[i],
		}
		g.PutGame(games[i])
	}
	return games
}

func starts(games []*models.Game) []string {
	out := make([]string, len(games))
	for i, n := range games {
		out[i] = n.StartTime
	}
	return out
}

func TestClock_Wraparound(t *testing.T) {
	got, ok := timing.AddMinutes("23:45", 30)
	assert.True(t, ok)
	assert.Equal(t, "00:15", got)

	_, ok = timing.ParseClock("25:00")
	assert.False(t, ok)
	_, ok = timing.ParseClock("soon")
	assert.False(t, ok)
	m, ok := timing.ParseClock("9:05")
	assert.True(t, ok)
	assert.Equal(t, 545, m)
}

// TestCalculate_Chain covers the basic duration + break chain.
func TestCalculate_Chain(t *testing.T) {
	g := models.NewGraph()
	games := buildStage(t, g, "f1", "s1", 0, "10:00", []int{70, 70, 70}, []int{10, 10, 0})

	engine := timing.NewEngine(70, 10)
	engine.Calculate(g)
	assert.Equal(t, []string{"10:00", "11:20", "12:40"}, starts(games))

	games[0].Duration = 30
	engine.RecalculateFrom(g, "s1", 0)
	assert.Equal(t, []string{"10:00", "10:40", "12:00"}, starts(games))
}

// TestCalculate_ManualAnchor keeps a manual game fixed and recomputes only later games.
func TestCalculate_ManualAnchor(t *testing.T) {
	g := models.NewGraph()
	games := buildStage(t, g, "f1", "s1", 0, "10:00", []int{70, 70, 70}, []int{10, 10, 0})
	engine := timing.NewEngine(70, 10)
	engine.Calculate(g)

	games[1].ManualTime = true
	games[1].StartTime = "11:30"
	games[0].Duration = 30
	engine.RecalculateFrom(g, "s1", 0)

	assert.Equal(t, []string{"10:00", "11:30", "12:50"}, starts(games))
}

// TestCalculate_DefaultStart uses 10:00 when the stage declares no start.
func TestCalculate_DefaultStart(t *testing.T) {
	g := models.NewGraph()
	games := buildStage(t, g, "f1", "s1", 0, "", []int{0, 0}, []int{5, 0})
	g.PutStage(&models.Stage{ID: "s1", ParentFieldID: "f1", Order: 0, DefaultGameDuration: 20})

	timing.NewEngine(70, 10).Calculate(g)
	assert.Equal(t, []string{"10:00", "10:25"}, starts(games))
}

// TestCalculate_ParallelLevels gates order 1 on the latest end of order 0 across fields.
func TestCalculate_ParallelLevels(t *testing.T) {
	g := models.NewGraph()
	a := buildStage(t, g, "f1", "pool-a", 0, "09:00", []int{60, 60}, []int{0, 0})
	b := buildStage(t, g, "f2", "pool-b", 0, "09:00", []int{30}, []int{0})
	finals := buildStage(t, g, "f1", "finals", 1, "", []int{40, 40}, []int{5, 0})
	ranking := buildStage(t, g, "f2", "ranking", 1, "", []int{40}, []int{0})

	timing.NewEngine(70, 10).Calculate(g)

	assert.Equal(t, []string{"09:00", "10:00"}, starts(a))
	assert.Equal(t, []string{"09:00"}, starts(b))
	// pool-a ends at 11:00, so both order-1 stages start there.
	assert.Equal(t, []string{"11:00", "11:45"}, starts(finals))
	assert.Equal(t, []string{"11:00"}, starts(ranking))
}

func TestStageEndTime_NoTrailingBreak(t *testing.T) {
	g := models.NewGraph()
	games := buildStage(t, g, "f1", "s1", 0, "23:00", []int{30, 30}, []int{15, 15})
	engine := timing.NewEngine(70, 10)
	engine.Calculate(g)

	stage, _ := g.Stage("s1")
	end, ok := engine.StageEndTime(stage, games)
	require.True(t, ok)
	assert.Equal(t, "00:15", end)

	_, ok = engine.StageEndTime(stage, nil)
	assert.False(t, ok)
}

// TestRecalculateFrom_LeavesEarlierGames keeps games before the changed index untouched.
func TestRecalculateFrom_LeavesEarlierGames(t *testing.T) {
	g := models.NewGraph()
	games := buildStage(t, g, "f1", "s1", 0, "10:00", []int{60, 60, 60}, []int{0, 0, 0})
	games[0].StartTime = "08:00"
	games[1].StartTime = "09:00"

	changed := timing.NewEngine(60, 0).RecalculateFrom(g, "s1", 2)
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, starts(games))
	assert.Equal(t, []string{"s1-g3"}, changed)
}

package brackets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
)

func TestGenerateRoundRobinGames_Counts(t *testing.T) {
	tests := []struct {
		name   string
		teams  int
		double bool
		want   int
	}{
		{"four teams", 4, false, 6},
		{"four teams double", 4, true, 12},
		{"five teams", 5, false, 10},
		{"six teams", 6, false, 15},
		{"two teams", 2, false, 1},
		{"single team", 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, brackets.GenerateRoundRobinGames(tt.teams, tt.double), tt.want)
		})
	}
}

func TestGenerateRoundRobinGames_EveryPairOnce(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 7, 8} {
		pairs := brackets.GenerateRoundRobinGames(n, false)
		seen := make(map[[2]int]bool)
		for _, p := range pairs {
			require.NotEqual(t, p.Home, p.Away)
			require.True(t, p.Home >= 0 && p.Home < n)
			require.True(t, p.Away >= 0 && p.Away < n)
			key := [2]int{p.Home, p.Away}
			if p.Home > p.Away {
				key = [2]int{p.Away, p.Home}
			}
			assert.False(t, seen[key], "n=%d: pair %v repeated", n, key)
			seen[key] = true
		}
		assert.Len(t, seen, n*(n-1)/2, "n=%d", n)
	}
}

func TestGenerateRoundRobinGames_TeamPlaysOncePerRound(t *testing.T) {
	pairs := brackets.GenerateRoundRobinGames(6, false)
	perRound := make(map[int]map[int]bool)
	for _, p := range pairs {
		if perRound[p.Round] == nil {
			perRound[p.Round] = make(map[int]bool)
		}
		assert.False(t, perRound[p.Round][p.Home], "round %d", p.Round)
		assert.False(t, perRound[p.Round][p.Away], "round %d", p.Round)
		perRound[p.Round][p.Home] = true
		perRound[p.Round][p.Away] = true
	}
	assert.Len(t, perRound, 5)
}

func TestGenerateRoundRobinGames_DoubleRoundMirrors(t *testing.T) {
	pairs := brackets.GenerateRoundRobinGames(4, true)
	require.Len(t, pairs, 12)
	for i := 0; i < 6; i++ {
		first, second := pairs[i], pairs[i+6]
		assert.Equal(t, first.Home, second.Away)
		assert.Equal(t, first.Away, second.Home)
		assert.Equal(t, first.Round+3, second.Round)
	}
}

func TestRoundRobinGenerator_GenerateGames(t *testing.T) {
	stage := &models.Stage{ID: "s1", Name: "Group A", ProgressionMode: models.ProgressionRoundRobin}
	n := 0
	games, err := brackets.NewRoundRobinGenerator().GenerateGames(context.Background(), brackets.GenerateStageParams{
		Stage:     stage,
		TeamCount: 4,
		Duration:  50,
		Break:     5,
		NewID: func(kind string) string {
			n++
			return kind + "-" + string(rune('0'+n))
		},
	})
	require.NoError(t, err)
	require.Len(t, games, 6)
	assert.Equal(t, "Group A 1", games[0].Standing)
	assert.Equal(t, "Group A 6", games[5].Standing)
	for _, g := range games {
		assert.Equal(t, "s1", g.ParentStageID)
		assert.Equal(t, 50, g.Duration)
		assert.Equal(t, 5, g.BreakAfter)
		assert.Nil(t, g.HomeTeamID)
	}
	assert.Equal(t, "game-1", games[0].ID)

	_, err = brackets.NewRoundRobinGenerator().GenerateGames(context.Background(), brackets.GenerateStageParams{Stage: stage, TeamCount: 1})
	assert.ErrorIs(t, err, brackets.ErrInvalidConfig)
}

func TestRoundRobinGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := brackets.NewRoundRobinGenerator().GenerateGames(ctx, brackets.GenerateStageParams{
		Stage:     &models.Stage{ID: "s1"},
		TeamCount: 4,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

package brackets_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
)

func teamPool(n int) []*models.Team {
	out := make([]*models.Team, n)
	for i := range out {
		out[i] = &models.Team{ID: fmt.Sprintf("t%d", i+1), Label: fmt.Sprintf("Team %d", i+1)}
	}
	return out
}

func standings(games []*models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Standing
	}
	return out
}

func TestGenerateTournament_TeamCountMismatch(t *testing.T) {
	gen := brackets.NewGenerator(nil, nil)

	for _, n := range []int{4, 8} {
		_, err := gen.GenerateTournament(context.Background(), teamPool(n), brackets.Config{TemplateID: "round-robin-6"})
		require.ErrorIs(t, err, brackets.ErrTeamCountMismatch)
		assert.Contains(t, err.Error(), "exactly 6 teams")
		assert.Contains(t, err.Error(), fmt.Sprintf("got %d", n))
	}

	_, err := gen.GenerateTournament(context.Background(), teamPool(3), brackets.Config{TemplateID: "crossover-4"})
	require.ErrorIs(t, err, brackets.ErrTeamCountMismatch)
	assert.Contains(t, err.Error(), "between 4 and 8 teams, got 3")
}

func TestGenerateTournament_UnknownTemplate(t *testing.T) {
	_, err := brackets.NewGenerator(nil, nil).GenerateTournament(context.Background(), teamPool(6), brackets.Config{TemplateID: "nope"})
	assert.ErrorIs(t, err, brackets.ErrTemplateNotFound)
}

func TestGenerateTournament_BadStartTime(t *testing.T) {
	_, err := brackets.NewGenerator(nil, nil).GenerateTournament(context.Background(), teamPool(6), brackets.Config{
		TemplateID: "round-robin-6",
		StartTime:  "late",
	})
	assert.ErrorIs(t, err, brackets.ErrInvalidConfig)
}

func TestGenerateTournament_GroupsWithPlayoff(t *testing.T) {
	gen := brackets.NewGenerator(nil, nil)
	teams := teamPool(6)

	tour, err := gen.GenerateTournament(context.Background(), teams, brackets.Config{TemplateID: "groups-2x3-playoff"})
	require.NoError(t, err)

	require.Len(t, tour.Fields, 2)
	assert.Equal(t, "Field 1", tour.Fields[0].Name)
	assert.Equal(t, models.PaletteColor(1), tour.Fields[1].Color)

	require.Len(t, tour.Stages, 3)
	groupA, groupB, playoff := tour.Stages[0], tour.Stages[1], tour.Stages[2]
	assert.Equal(t, "Group A", groupA.Name)
	assert.Equal(t, "Group B", groupB.Name)
	assert.Equal(t, "Playoff", playoff.Name)
	assert.Equal(t, tour.Fields[0].ID, groupA.ParentFieldID)
	assert.Equal(t, tour.Fields[1].ID, groupB.ParentFieldID)
	assert.Equal(t, tour.Fields[0].ID, playoff.ParentFieldID)
	assert.Equal(t, "A", groupA.ProgressionConfig.Group)
	assert.Equal(t, 4, playoff.ProgressionConfig.Positions)

	assert.Equal(t, []string{"Group A 1", "Group A 2", "Group A 3"}, standings(tour.StageGames(groupA.ID)))
	assert.Equal(t, []string{"SF1", "SF2", "3rd Place", "Final"}, standings(tour.StageGames(playoff.ID)))
	assert.Len(t, tour.Games, 10)
	assert.Len(t, tour.Edges, 4)
	assert.Empty(t, tour.Skipped)

	// 70 minute games with 10 minute breaks from 10:00; the playoff level
	// starts when the group level ends.
	a := tour.StageGames(groupA.ID)
	assert.Equal(t, []string{"10:00", "11:20", "12:40"}, []string{a[0].StartTime, a[1].StartTime, a[2].StartTime})
	assert.Equal(t, "13:50", tour.StageGames(playoff.ID)[0].StartTime)

	ops := gen.AssignTeams(tour, teams)
	var assigns, adds []models.Operation
	for _, op := range ops {
		switch op.Type {
		case models.OpAssignTeam:
			assigns = append(assigns, op)
		case models.OpAddEdges:
			adds = append(adds, op)
		}
	}
	assert.Len(t, assigns, 12)
	require.Len(t, adds, 1)

	// group A receives the first half of the pool
	for _, op := range assigns[:6] {
		assert.Contains(t, []string{"t1", "t2", "t3"}, op.TeamID)
	}
	for _, op := range assigns[6:] {
		assert.Contains(t, []string{"t4", "t5", "t6"}, op.TeamID)
	}

	b := tour.StageGames(groupB.ID)
	po := tour.StageGames(playoff.ID)
	require.Len(t, adds[0].Edges, 8)
	assert.Equal(t, models.EdgeSpec{SourceGameID: a[0].ID, OutputType: models.OutputWinner, TargetGameID: po[0].ID, TargetSlot: models.SlotHome}, adds[0].Edges[0])
	assert.Equal(t, models.EdgeSpec{SourceGameID: b[0].ID, OutputType: models.OutputWinner, TargetGameID: po[0].ID, TargetSlot: models.SlotAway}, adds[0].Edges[1])
	assert.Equal(t, models.EdgeSpec{SourceGameID: a[2].ID, OutputType: models.OutputWinner, TargetGameID: po[1].ID, TargetSlot: models.SlotHome}, adds[0].Edges[2])
	assert.Equal(t, models.EdgeSpec{SourceGameID: b[2].ID, OutputType: models.OutputWinner, TargetGameID: po[1].ID, TargetSlot: models.SlotAway}, adds[0].Edges[3])
}

func TestGenerateTournament_RoundRobinPairsEveryTeam(t *testing.T) {
	gen := brackets.NewGenerator(nil, nil)
	teams := teamPool(6)
	tour, err := gen.GenerateTournament(context.Background(), teams, brackets.Config{TemplateID: "round-robin-6", StartTime: "09:30"})
	require.NoError(t, err)
	require.Len(t, tour.Games, 15)
	assert.Equal(t, "09:30", tour.Games[0].StartTime)

	byGame := make(map[string][2]string)
	for _, op := range gen.AssignTeams(tour, teams) {
		require.Equal(t, models.OpAssignTeam, op.Type)
		p := byGame[op.GameID]
		if op.Slot == models.SlotHome {
			p[0] = op.TeamID
		} else {
			p[1] = op.TeamID
		}
		byGame[op.GameID] = p
	}
	require.Len(t, byGame, 15)
	seen := make(map[string]bool)
	for _, p := range byGame {
		require.NotEqual(t, p[0], p[1])
		key := p[0] + "-" + p[1]
		if p[1] < p[0] {
			key = p[1] + "-" + p[0]
		}
		assert.False(t, seen[key], key)
		seen[key] = true
	}
}

func TestGenerateTournament_KnockoutSeedsOpeningRound(t *testing.T) {
	gen := brackets.NewGenerator(nil, nil)
	teams := teamPool(8)
	tour, err := gen.GenerateTournament(context.Background(), teams, brackets.Config{TemplateID: "knockout-8"})
	require.NoError(t, err)
	require.Len(t, tour.Games, 8)
	assert.Len(t, tour.Edges, 8)

	ops := gen.AssignTeams(tour, teams)
	require.Len(t, ops, 8)
	assert.Equal(t, tour.Games[0].ID, ops[0].GameID)
	assert.Equal(t, models.SlotHome, ops[0].Slot)
	assert.Equal(t, "t1", ops[0].TeamID)
	assert.Equal(t, tour.Games[3].ID, ops[7].GameID)
	assert.Equal(t, "t8", ops[7].TeamID)
}

func TestGenerateTournament_ReplicatedStagesGetSuffix(t *testing.T) {
	tmpl := brackets.Template{
		ID:    "twin-finals",
		Name:  "Finals everywhere",
		Teams: brackets.TeamCount{Min: 2},
		Stages: []brackets.StageBlueprint{
			{Name: "Finals", Order: 0, Mode: models.ProgressionPlacement, Fields: brackets.AllFields(), Positions: 2},
		},
	}
	tour, err := brackets.NewGenerator(nil, nil).GenerateTournament(context.Background(), teamPool(4), brackets.Config{
		Template:   &tmpl,
		FieldCount: 2,
	})
	require.NoError(t, err)
	require.Len(t, tour.Stages, 2)
	assert.Equal(t, "Finals Field 1", tour.Stages[0].Name)
	assert.Equal(t, []string{"Final Field 1", "Final Field 2"}, standings(tour.Games))
	assert.Equal(t, models.StageTypePreliminary, tour.Stages[0].StageType)
}

func TestGenerateTournament_FieldIndexOutOfRangeSkipped(t *testing.T) {
	tmpl := brackets.Template{
		ID:    "lopsided",
		Name:  "Lopsided",
		Teams: brackets.TeamCount{Min: 2},
		Stages: []brackets.StageBlueprint{
			{Name: "Pool", Order: 0, Mode: models.ProgressionRoundRobin, Fields: brackets.OnField(0)},
			{Name: "Extra", Order: 1, Mode: models.ProgressionPlacement, Fields: brackets.OnField(3), Positions: 2},
		},
	}
	tour, err := brackets.NewGenerator(nil, nil).GenerateTournament(context.Background(), teamPool(4), brackets.Config{
		Template:   &tmpl,
		FieldCount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Extra"}, tour.Skipped)
	require.Len(t, tour.Stages, 1)
	assert.Len(t, tour.Games, 6)
}

func TestGenerateTournament_CustomIDs(t *testing.T) {
	n := 0
	tour, err := brackets.NewGenerator(nil, nil).GenerateTournament(context.Background(), teamPool(6), brackets.Config{
		TemplateID: "round-robin-6",
		IDFunc: func(kind string) string {
			n++
			return fmt.Sprintf("%s:%d", kind, n)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "field:1", tour.Fields[0].ID)
	assert.Equal(t, "stage:2", tour.Stages[0].ID)
	assert.Equal(t, "game:3", tour.Games[0].ID)
}

func TestCatalogue_Defaults(t *testing.T) {
	cat := brackets.DefaultCatalogue()
	ids := make([]string, 0)
	for _, tmpl := range cat.List() {
		ids = append(ids, tmpl.ID)
		assert.NoError(t, tmpl.Validate(), tmpl.ID)
	}
	assert.Equal(t, []string{"crossover-4", "groups-2x3-playoff", "groups-2x4-crossover", "knockout-8", "round-robin-6"}, ids)

	_, err := cat.Get("missing")
	assert.ErrorIs(t, err, brackets.ErrTemplateNotFound)
}

func TestLoadCatalogueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates:
  - id: mini
    name: Mini cup
    teams:
      exact: 4
    game_duration: 40
    break_duration: 0
    stages:
      - name: Pool
        order: 0
        stage_type: preliminary
        mode: round_robin
        fields: 0
      - name: Final
        order: 1
        stage_type: final
        mode: placement
        fields: all
        positions: 2
        format: single_elimination
`), 0o644))

	cat, err := brackets.LoadCatalogueFile(path)
	require.NoError(t, err)

	mini, err := cat.Get("mini")
	require.NoError(t, err)
	assert.Equal(t, 4, mini.Teams.Exact)
	assert.Equal(t, 40, mini.GameDuration)
	require.NotNil(t, mini.BreakDuration)
	assert.Equal(t, 0, *mini.BreakDuration)
	require.Len(t, mini.Stages, 2)
	assert.Equal(t, brackets.OnField(0), mini.Stages[0].Fields)
	assert.Equal(t, brackets.AllFields(), mini.Stages[1].Fields)

	_, err = cat.Get("knockout-8")
	assert.NoError(t, err, "built-ins stay available")

	tour, err := brackets.NewGenerator(cat, nil).GenerateTournament(context.Background(), teamPool(4), brackets.Config{TemplateID: "mini"})
	require.NoError(t, err)
	assert.Equal(t, 40, tour.Games[0].Duration)
	assert.Equal(t, 0, tour.Games[0].BreakAfter)
	assert.Equal(t, "10:40", tour.Games[1].StartTime)
}

func TestLoadCatalogueFile_InvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
templates:
  - id: broken
    name: Broken
    stages:
      - name: Pool
        mode: swiss
        fields: all
`), 0o644))
	_, err := brackets.LoadCatalogueFile(path)
	assert.ErrorIs(t, err, brackets.ErrInvalidConfig)

	_, err = brackets.LoadCatalogueFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFieldAssignment_JSON(t *testing.T) {
	var bp brackets.StageBlueprint
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","fields":2}`), &bp))
	assert.Equal(t, brackets.OnField(2), bp.Fields)
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","fields":"split"}`), &bp))
	assert.Equal(t, brackets.SplitFields(), bp.Fields)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"fields":"some"}`), &bp), brackets.ErrInvalidConfig)
}

package interchange_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/interchange"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
	"github.com/Dosada05/tournament-scheduler/validation"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

func opts() interchange.Options {
	return interchange.Options{Engine: timing.NewEngine(60, 0), NewID: seqIDs()}
}

const sample = `[{"field":"Feld 1","games":[` +
	`{"stage":"Vorrunde","standing":"Gruppe A 1","home":"0_0","away":"0_1","official":"0_2"},` +
	`{"stage":"Vorrunde","standing":"Gruppe A 2","home":"0_2","away":"0_0","official":"0_1","break_after":15},` +
	`{"stage":"Finale","standing":"HF1","home":"Gewinner Gruppe A 1","away":"Verlierer Gruppe B 1","official":"Team Blau"},` +
	`{"stage":"Finale","standing":"Finale","home":"Gewinner HF1","away":"P1 Gruppe B","official":""}]},` +
	`{"field":"Feld 2","games":[` +
	`{"stage":"Vorrunde","standing":"Gruppe B 1","home":"1_0","away":"1_1","official":"0_0"}]},` +
	`{"field":"Feld 3","games":[]}]`

func TestParseTeamRef(t *testing.T) {
	tests := []struct {
		in   string
		want interchange.TeamRef
	}{
		{"", interchange.TeamRef{Kind: interchange.RefEmpty}},
		{"0_3", interchange.TeamRef{Kind: interchange.RefGroupTeam, Raw: "0_3", Group: 0, Team: 3}},
		{"12_1", interchange.TeamRef{Kind: interchange.RefGroupTeam, Raw: "12_1", Group: 12, Team: 1}},
		{"P2 Gruppe A", interchange.TeamRef{Kind: interchange.RefStanding, Raw: "P2 Gruppe A", Place: 2, Name: "Gruppe A"}},
		{"Gewinner HF1", interchange.TeamRef{Kind: interchange.RefWinner, Raw: "Gewinner HF1", Name: "HF1"}},
		{"Verlierer Spiel 3", interchange.TeamRef{Kind: interchange.RefLoser, Raw: "Verlierer Spiel 3", Name: "Spiel 3"}},
		{"FC Musterstadt", interchange.TeamRef{Kind: interchange.RefLiteral, Raw: "FC Musterstadt"}},
		{"0_x", interchange.TeamRef{Kind: interchange.RefLiteral, Raw: "0_x"}},
		{"P Gruppe A", interchange.TeamRef{Kind: interchange.RefLiteral, Raw: "P Gruppe A"}},
		{"Gewinner", interchange.TeamRef{Kind: interchange.RefLiteral, Raw: "Gewinner"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := interchange.ParseTeamRef(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestFormatDynamic(t *testing.T) {
	assert.Equal(t, "Gewinner SF1", interchange.FormatDynamic(models.DynamicRef{Type: models.OutputWinner, MatchName: "SF1"}))
	assert.Equal(t, "Verlierer SF2", interchange.FormatDynamic(models.DynamicRef{Type: models.OutputLoser, MatchName: "SF2"}))
}

func TestImport_BuildsGraph(t *testing.T) {
	g, warnings, err := interchange.Import([]byte(sample), opts())
	require.NoError(t, err)

	fields := g.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "Feld 1", fields[0].Name)

	stages := g.FieldStages(fields[0].ID)
	require.Len(t, stages, 2)
	assert.Equal(t, "Vorrunde", stages[0].Name)
	assert.Equal(t, "Finale", stages[1].Name)
	assert.Len(t, g.Games(), 5)

	// one team per distinct reference string
	labels := make(map[string]bool)
	for _, team := range g.Teams() {
		assert.False(t, labels[team.Label], "duplicate team %q", team.Label)
		labels[team.Label] = true
	}
	assert.Len(t, labels, 7) // 0_0 0_1 0_2 Team Blau P1 Gruppe B 1_0 1_1
	assert.Len(t, g.Groups(), 2)

	hf1 := g.GamesByStanding("HF1")[0]
	assert.Equal(t, &models.DynamicRef{Type: models.OutputWinner, MatchName: "Gruppe A 1"}, hf1.HomeTeamDynamic)
	assert.Equal(t, &models.DynamicRef{Type: models.OutputLoser, MatchName: "Gruppe B 1"}, hf1.AwayTeamDynamic)
	require.Len(t, g.EdgesInto(hf1.ID, models.SlotAway), 1, "references to later fields resolve")

	final := g.GamesByStanding("Finale")[0]
	require.NotNil(t, final.AwayTeamID)
	assert.Nil(t, final.OfficialTeamID)

	assert.Empty(t, warnings)

	// start times come from the propagation engine
	first := g.GamesByStanding("Gruppe A 1")[0]
	second := g.GamesByStanding("Gruppe A 2")[0]
	assert.Equal(t, "10:00", first.StartTime)
	assert.Equal(t, "11:00", second.StartTime)
	assert.Equal(t, "12:00", hf1.StartTime)
	assert.Equal(t, 15, second.BreakAfter)
}

func TestImport_RoundTrip(t *testing.T) {
	g, _, err := interchange.Import([]byte(sample), opts())
	require.NoError(t, err)
	out, err := interchange.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, sample, string(out))
}

func TestImport_RoundTripRepeatedStageName(t *testing.T) {
	doc := `[{"field":"A","games":[` +
		`{"stage":"Pool","standing":"1","home":"x","away":"y","official":""},` +
		`{"stage":"Cross","standing":"2","home":"Gewinner 1","away":"Verlierer 1","official":"x"},` +
		`{"stage":"Pool","standing":"3","home":"y","away":"x","official":""}]}]`
	g, warnings, err := interchange.Import([]byte(doc), opts())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, g.Stages(), 3)

	out, err := interchange.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
}

func TestImport_UnresolvedReferenceWarns(t *testing.T) {
	doc := `[{"field":"A","games":[` +
		`{"stage":"KO","standing":"Finale","home":"Gewinner HF9","away":"Verlierer Finale","official":""}]}]`
	g, warnings, err := interchange.Import([]byte(doc), opts())
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	assert.Equal(t, interchange.WarnUnresolvedReference, warnings[0].Code)
	assert.Equal(t, "Gewinner HF9", warnings[0].Reference)
	assert.Equal(t, "Finale", warnings[0].Standing)
	assert.Equal(t, "A", warnings[0].Field)
	assert.Empty(t, g.Edges())

	// the reference survives export and is reported by validation
	out, err := interchange.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, doc, string(out))
	res := validation.Validate(g, validation.DefaultOptions())
	assert.True(t, res.HasType(validation.BrokenProgression))
}

func TestImport_Malformed(t *testing.T) {
	tests := map[string]string{
		"syntax":         `[{"field":"A","games":[}]`,
		"truncated":      `[{"field":"A"`,
		"not an array":   `{"field":"A"}`,
		"wrong type":     `[{"field":1,"games":[]}]`,
		"unknown key":    `[{"field":"A","games":[],"color":"red"}]`,
		"empty":          ``,
		"null":           `null`,
		"trailing data":  `[] []`,
		"negative break": `[{"field":"A","games":[{"stage":"s","standing":"1","home":"","away":"","official":"","break_after":-5}]}]`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := interchange.Import([]byte(doc), opts())
			assert.ErrorIs(t, err, interchange.ErrMalformedDocument)
		})
	}
}

func TestImport_EmptySchedule(t *testing.T) {
	g, warnings, err := interchange.Import([]byte(`[]`), opts())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, g.Fields())

	out, err := interchange.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestExport_FollowsEdits(t *testing.T) {
	g, _, err := interchange.Import([]byte(sample), opts())
	require.NoError(t, err)

	// renaming a team label changes every reference to it
	for _, team := range g.Teams() {
		if team.Label == "Team Blau" {
			team.Label = "Team Rot"
		}
	}
	s := interchange.Export(g)
	require.Len(t, s, 3)
	assert.Equal(t, "Team Rot", s[0].Games[2].Official)
	assert.Equal(t, 0, s[0].Games[0].BreakAfter)
	assert.NotNil(t, s[2].Games)
	assert.True(t, strings.HasPrefix(s[0].Games[3].Home, "Gewinner "))
}

func TestDecode_KeepsRecords(t *testing.T) {
	s, err := interchange.Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, interchange.GameRecord{
		Stage: "Vorrunde", Standing: "Gruppe A 2", Home: "0_2", Away: "0_0", Official: "0_1", BreakAfter: 15,
	}, s[0].Games[1])
}

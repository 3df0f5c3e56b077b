package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/cli"
	"github.com/Dosada05/tournament-scheduler/interchange"
)

const poolGame = `[{"field":"A","games":[{"stage":"Pool","standing":"1","home":"x","away":"y","official":""}]}]`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTemplates(t *testing.T) {
	out, _, err := run(t, "", "templates")
	require.NoError(t, err)
	for _, id := range []string{"crossover-4", "knockout-8", "round-robin-6", "groups-2x3-playoff", "groups-2x4-crossover"} {
		assert.Contains(t, out, id)
	}

	out, _, err = run(t, "", "templates", "--yaml")
	require.NoError(t, err)
	var file struct {
		Templates []brackets.Template `yaml:"templates"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Len(t, file.Templates, 5)
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, poolGame, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "-: valid (0 errors")

	invalid := `[{"field":"A","games":[{"stage":"s","standing":"1","home":"x","away":"y","official":"x"}]}]`
	out, _, err = run(t, invalid, "validate", "--json", "-")
	assert.ErrorIs(t, err, cli.ErrInvalidSchedule)

	var res struct {
		Validation struct {
			IsValid bool `json:"is_valid"`
			Errors  []struct {
				Type string `json:"type"`
			} `json:"errors"`
		} `json:"validation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Validation.IsValid)
	assert.NotEmpty(t, res.Validation.Errors)

	_, _, err = run(t, `{"field":"A"}`, "validate")
	assert.ErrorIs(t, err, interchange.ErrMalformedDocument)
}

func TestValidate_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, os.WriteFile(path, []byte(poolGame), 0o644))

	out, _, err := run(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+": valid")

	_, _, err = run(t, "", "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "", "generate",
		"--template", "groups-2x3-playoff",
		"--teams", "Adler,Bären,Füchse,Luchse,Wölfe,Falken",
		"--start", "09:00")
	require.NoError(t, err)

	var schedule interchange.Schedule
	require.NoError(t, json.Unmarshal([]byte(out), &schedule))
	games := 0
	for _, f := range schedule {
		games += len(f.Games)
	}
	assert.Equal(t, 10, games)

	// the generated schedule reads back as a graph document
	_, _, err = run(t, out, "import")
	assert.NoError(t, err)
}

func TestGenerate_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ko.json")
	_, _, err := run(t, "", "generate", "--template", "knockout-8", "--team-count", "8", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Team 8")
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "--template", "round-robin-6", "--teams", "a,b,c")
	assert.ErrorIs(t, err, brackets.ErrTeamCountMismatch)

	_, _, err = run(t, "", "generate", "--template", "swiss", "--team-count", "4")
	assert.ErrorIs(t, err, brackets.ErrTemplateNotFound)

	_, _, err = run(t, "", "generate", "--team-count", "4")
	assert.Error(t, err, "template flag is required")
}

func TestImportExportRoundTrip(t *testing.T) {
	doc, _, err := run(t, poolGame, "import")
	require.NoError(t, err)

	var graph map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(doc), &graph))
	assert.Contains(t, graph, "games")

	flat, _, err := run(t, doc, "export")
	require.NoError(t, err)
	assert.JSONEq(t, poolGame, flat)
}

func TestImport_ReportsUnresolvedReferences(t *testing.T) {
	_, stderr, err := run(t,
		`[{"field":"A","games":[{"stage":"KO","standing":"F","home":"Gewinner HF","away":"x","official":""}]}]`,
		"import")
	require.NoError(t, err)
	assert.Contains(t, stderr, interchange.WarnUnresolvedReference)
}

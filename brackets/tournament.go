package brackets

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

const (
	DefaultGameDuration  = 70
	DefaultBreakDuration = 10
)

// Config selects a template and the physical setup of a tournament.
type Config struct {
	TemplateID    string `json:"template"`
	FieldCount    int    `json:"field_count"`
	StartTime     string `json:"start_time"`
	GameDuration  int    `json:"game_duration,omitempty"`
	BreakDuration *int   `json:"break_duration,omitempty"`

	// Template, when set, is used instead of looking TemplateID up.
	Template *Template `json:"-"`
	// IDFunc names new nodes; nil gives deterministic "gen-<kind>-<n>" ids.
	IDFunc func(kind string) string `json:"-"`
}

// Tournament is the generator's output. Edges are the internal bracket edges;
// the edges feeding brackets from earlier stages come from the assignment pass.
type Tournament struct {
	Template string            `json:"template"`
	Fields   []*models.Field   `json:"fields"`
	Stages   []*models.Stage   `json:"stages"`
	Games    []*models.Game    `json:"games"`
	Edges    []models.EdgeSpec `json:"edges"`
	Skipped  []string          `json:"skipped,omitempty"`
}

// StageGames lists the games of one generated stage in order.
func (t *Tournament) StageGames(stageID string) []*models.Game {
	var out []*models.Game
	for _, n := range t.Games {
		if n.ParentStageID == stageID {
			out = append(out, n)
		}
	}
	return out
}

type Generator struct {
	catalogue *Catalogue
	logger    *slog.Logger
}

func NewGenerator(catalogue *Catalogue, logger *slog.Logger) *Generator {
	if catalogue == nil {
		catalogue = DefaultCatalogue()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{catalogue: catalogue, logger: logger}
}

func (g *Generator) Catalogue() *Catalogue {
	return g.catalogue
}

func sequentialIDs() func(kind string) string {
	counters := make(map[string]int)
	return func(kind string) string {
		counters[kind]++
		return fmt.Sprintf("gen-%s-%d", kind, counters[kind])
	}
}

// splitEven partitions n into k sizes that differ by at most one, larger first.
func splitEven(n, k int) []int {
	if k <= 0 {
		return nil
	}
	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = n / k
		if i < n%k {
			sizes[i]++
		}
	}
	return sizes
}

func groupLetter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("G%d", i+1)
}

type stageInstance struct {
	bp     StageBlueprint
	field  *models.Field
	group  string
	suffix string
}

// GenerateTournament builds fields, stages and games from a template. The team
// count must fit the template; that is the only precondition that fails the
// whole request. Blueprints pinned to a field index beyond the field count are
// skipped and reported in Tournament.Skipped.
func (g *Generator) GenerateTournament(ctx context.Context, teams []*models.Team, cfg Config) (*Tournament, error) {
	tmpl, err := g.resolveTemplate(cfg)
	if err != nil {
		return nil, err
	}
	if err := tmpl.Teams.Check(tmpl.ID, len(teams)); err != nil {
		return nil, err
	}

	fieldCount := cfg.FieldCount
	if fieldCount == 0 {
		fieldCount = tmpl.DefaultFieldCount
	}
	if fieldCount == 0 {
		fieldCount = 1
	}
	if fieldCount < 0 {
		return nil, fmt.Errorf("%w: field count %d", ErrInvalidConfig, fieldCount)
	}
	start := cfg.StartTime
	if start == "" {
		start = timing.DefaultStartTime
	}
	if _, ok := timing.ParseClock(start); !ok {
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidConfig, start)
	}
	duration := cfg.GameDuration
	if duration <= 0 {
		duration = tmpl.GameDuration
	}
	if duration <= 0 {
		duration = DefaultGameDuration
	}
	breakAfter := DefaultBreakDuration
	if tmpl.BreakDuration != nil {
		breakAfter = *tmpl.BreakDuration
	}
	if cfg.BreakDuration != nil {
		breakAfter = *cfg.BreakDuration
	}
	newID := cfg.IDFunc
	if newID == nil {
		newID = sequentialIDs()
	}

	t := &Tournament{Template: tmpl.ID}
	for i := 0; i < fieldCount; i++ {
		t.Fields = append(t.Fields, &models.Field{
			ID:    newID("field"),
			Name:  fmt.Sprintf("Field %d", i+1),
			Order: i,
			Color: models.PaletteColor(i),
		})
	}

	instances := g.placeBlueprints(tmpl, t)
	if len(instances) == 0 {
		return nil, fmt.Errorf("%w: template %q places no stage on %d field(s)", ErrInvalidConfig, tmpl.ID, fieldCount)
	}
	firstOrder := instances[0].bp.Order

	rrCount := make(map[int]int)
	for _, inst := range instances {
		if inst.bp.Mode == models.ProgressionRoundRobin {
			rrCount[inst.bp.Order]++
		}
	}
	rrSeen := make(map[int]int)

	for _, inst := range instances {
		bp := inst.bp
		stage := &models.Stage{
			ID:              newID("stage"),
			ParentFieldID:   inst.field.ID,
			Name:            bp.Name,
			Order:           bp.Order,
			StageType:       bp.StageType,
			ProgressionMode: bp.Mode,
			ProgressionConfig: &models.ProgressionConfig{
				DoubleRound: bp.DoubleRound,
				Positions:   bp.Positions,
				Format:      bp.Format,
				Group:       inst.group,
				Mapping:     copyMapping(bp.Mapping),
			},
			DefaultGameDuration: duration,
		}
		if inst.suffix != "" {
			stage.Name = bp.Name + " " + inst.suffix
		}
		if stage.StageType == "" {
			stage.StageType = models.StageTypePreliminary
		}
		if bp.Order == firstOrder {
			stage.StartTime = start
		}
		t.Stages = append(t.Stages, stage)

		gen, ok := generatorFor(bp.Mode)
		if !ok {
			continue
		}
		params := GenerateStageParams{
			Stage:    stage,
			Suffix:   inst.suffix,
			Duration: duration,
			Break:    breakAfter,
			NewID:    newID,
		}
		if bp.Mode == models.ProgressionRoundRobin {
			sizes := splitEven(len(teams), rrCount[bp.Order])
			params.TeamCount = sizes[rrSeen[bp.Order]]
			rrSeen[bp.Order]++
		}
		games, err := gen.GenerateGames(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("template %q stage %q (%s): %w", tmpl.ID, stage.Name, gen.GetName(), err)
		}
		t.Games = append(t.Games, games...)
		if bp.Mode == models.ProgressionPlacement {
			t.Edges = append(t.Edges, InternalEdges(stage, games)...)
		}
	}

	resolveTimes(t, duration, breakAfter)
	g.logger.Info("tournament generated",
		slog.String("template", tmpl.ID),
		slog.Int("teams", len(teams)),
		slog.Int("fields", len(t.Fields)),
		slog.Int("stages", len(t.Stages)),
		slog.Int("games", len(t.Games)),
	)
	return t, nil
}

func (g *Generator) resolveTemplate(cfg Config) (Template, error) {
	if cfg.Template != nil {
		if err := cfg.Template.Validate(); err != nil {
			return Template{}, err
		}
		return *cfg.Template, nil
	}
	return g.catalogue.Get(cfg.TemplateID)
}

// placeBlueprints spreads blueprints over the fields in stage order.
func (g *Generator) placeBlueprints(tmpl Template, t *Tournament) []stageInstance {
	blueprints := append([]StageBlueprint(nil), tmpl.Stages...)
	sort.SliceStable(blueprints, func(i, j int) bool { return blueprints[i].Order < blueprints[j].Order })

	replicated := len(t.Fields) > 1
	var out []stageInstance
	for _, bp := range blueprints {
		switch bp.Fields.Mode {
		case AssignAll:
			for _, f := range t.Fields {
				inst := stageInstance{bp: bp, field: f}
				if replicated {
					inst.suffix = f.Name
				}
				out = append(out, inst)
			}
		case AssignSplit:
			for i, f := range t.Fields {
				letter := groupLetter(i)
				out = append(out, stageInstance{bp: bp, field: f, group: letter, suffix: letter})
			}
		case AssignIndex:
			if bp.Fields.Index < 0 || bp.Fields.Index >= len(t.Fields) {
				g.logger.Warn("stage skipped: field index out of range",
					slog.String("template", tmpl.ID),
					slog.String("stage", bp.Name),
					slog.Int("field_index", bp.Fields.Index),
					slog.Int("field_count", len(t.Fields)),
				)
				t.Skipped = append(t.Skipped, bp.Name)
				continue
			}
			out = append(out, stageInstance{bp: bp, field: t.Fields[bp.Fields.Index]})
		}
	}
	return out
}

func copyMapping(m models.ProgressionMapping) models.ProgressionMapping {
	if m == nil {
		return nil
	}
	out := make(models.ProgressionMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// resolveTimes runs time propagation over the generated nodes.
func resolveTimes(t *Tournament, duration, breakAfter int) {
	g := models.NewGraph()
	for _, f := range t.Fields {
		g.PutField(f)
	}
	for _, s := range t.Stages {
		g.PutStage(s)
	}
	for _, n := range t.Games {
		g.PutGame(n)
	}
	timing.NewEngine(duration, breakAfter).Calculate(g)
}

package interchange

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// Warning is a non-fatal import finding.
type Warning struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field"`
	Standing  string `json:"standing"`
	Reference string `json:"reference,omitempty"`
}

const WarnUnresolvedReference = "unresolved_reference"

// Options controls how imported nodes are built.
type Options struct {
	// Engine resolves start times after import and supplies stage durations.
	Engine timing.Engine
	// NewID names new nodes; nil uses random UUIDs.
	NewID  func() string
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Engine.DefaultDuration <= 0 {
		o.Engine = timing.NewEngine(70, 10)
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Import decodes data and builds a graph from it.
func Import(data []byte, opts Options) (*models.Graph, []Warning, error) {
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return Build(s, opts)
}

type pendingRef struct {
	game  *models.Game
	slot  models.Slot
	ref   TeamRef
	field string
}

type builder struct {
	opts     Options
	g        *models.Graph
	teams    map[string]*models.Team
	groups   map[int]*models.TeamGroup
	pending  []pendingRef
	warnings []Warning
}

// Build turns a decoded schedule into a graph. Every run of consecutive
// games sharing a stage name becomes one stage, so field-wide game order is
// kept. Each distinct team reference string becomes one pool team; group-team
// references also place the team in a group. Winner and loser references
// become GameToGame edges; those naming a standing that does not exist keep
// their dynamic reference without an edge and are reported as warnings.
func Build(s Schedule, opts Options) (*models.Graph, []Warning, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	b := &builder{
		opts:   opts.withDefaults(),
		g:      models.NewGraph(),
		teams:  make(map[string]*models.Team),
		groups: make(map[int]*models.TeamGroup),
	}

	for i, rec := range s {
		f := &models.Field{ID: b.opts.NewID(), Name: rec.Field, Order: i, Color: models.PaletteColor(i)}
		b.g.PutField(f)

		var stage *models.Stage
		row := 0
		for _, gr := range rec.Games {
			if stage == nil || stage.Name != gr.Stage {
				stage = b.addStage(f, gr.Stage)
				row = 0
			}
			b.addGame(f, stage, gr, row)
			row++
		}
	}
	b.resolvePending()

	b.opts.Engine.Calculate(b.g)
	b.opts.Logger.Info("schedule imported",
		slog.Int("fields", len(b.g.Fields())),
		slog.Int("stages", len(b.g.Stages())),
		slog.Int("games", len(b.g.Games())),
		slog.Int("teams", len(b.g.Teams())),
		slog.Int("warnings", len(b.warnings)),
	)
	return b.g, b.warnings, nil
}

func (b *builder) addStage(f *models.Field, name string) *models.Stage {
	s := &models.Stage{
		ID:                  b.opts.NewID(),
		ParentFieldID:       f.ID,
		Name:                name,
		Order:               len(b.g.FieldStages(f.ID)),
		StageType:           models.StageTypePreliminary,
		ProgressionMode:     models.ProgressionManual,
		DefaultGameDuration: b.opts.Engine.DefaultDuration,
	}
	b.g.PutStage(s)
	return s
}

func (b *builder) addGame(f *models.Field, s *models.Stage, rec GameRecord, row int) {
	n := &models.Game{
		ID:            b.opts.NewID(),
		ParentStageID: s.ID,
		Standing:      rec.Standing,
		BreakAfter:    rec.BreakAfter,
		Position:      models.Position{Y: float64(row) * 120},
	}
	b.g.PutGame(n)

	for _, side := range []struct {
		raw  string
		slot models.Slot
	}{{rec.Home, models.SlotHome}, {rec.Away, models.SlotAway}} {
		ref := ParseTeamRef(side.raw)
		switch {
		case ref.Kind == RefEmpty:
		case ref.IsDynamic():
			b.pending = append(b.pending, pendingRef{game: n, slot: side.slot, ref: ref, field: f.Name})
		default:
			t := b.team(ref)
			b.g.PutEdge(&models.Edge{
				ID:           b.opts.NewID(),
				Kind:         models.EdgeTeamToGame,
				Source:       t.ID,
				Target:       n.ID,
				TargetHandle: side.slot,
			})
			b.g.SetSlotTeam(n.ID, side.slot, models.StringPtr(t.ID))
		}
	}
	if rec.Official != "" {
		n.OfficialTeamID = models.StringPtr(b.team(ParseTeamRef(rec.Official)).ID)
	}
}

// team returns the pool team for a reference string, creating it on first use.
func (b *builder) team(ref TeamRef) *models.Team {
	if t, ok := b.teams[ref.Raw]; ok {
		return t
	}
	t := &models.Team{
		ID:       b.opts.NewID(),
		Label:    ref.Raw,
		Position: models.Position{Y: float64(len(b.teams)) * 120},
	}
	if ref.Kind == RefGroupTeam {
		t.GroupID = b.group(ref.Group).ID
	}
	b.teams[ref.Raw] = t
	b.g.PutTeam(t)
	return t
}

func (b *builder) group(index int) *models.TeamGroup {
	if gr, ok := b.groups[index]; ok {
		return gr
	}
	name := fmt.Sprintf("Group %d", index+1)
	if index < 26 {
		name = fmt.Sprintf("Group %c", rune('A'+index))
	}
	gr := &models.TeamGroup{ID: b.opts.NewID(), Name: name, Order: index}
	b.groups[index] = gr
	b.g.PutGroup(gr)
	return gr
}

// resolvePending links winner and loser references once every standing is
// known, so a reference may name a game listed later in the document.
func (b *builder) resolvePending() {
	for _, p := range b.pending {
		dyn := &models.DynamicRef{Type: p.ref.Output(), MatchName: p.ref.Name}
		sources := b.g.GamesByStanding(p.ref.Name)
		if len(sources) == 0 || sources[0].ID == p.game.ID {
			msg := fmt.Sprintf("no game with standing %q", p.ref.Name)
			if len(sources) > 0 {
				msg = "game references its own result"
			}
			b.g.SetSlotDynamic(p.game.ID, p.slot, dyn)
			b.warnings = append(b.warnings, Warning{
				Code:      WarnUnresolvedReference,
				Message:   msg,
				Field:     p.field,
				Standing:  p.game.Standing,
				Reference: p.ref.Raw,
			})
			continue
		}
		b.g.PutEdge(&models.Edge{
			ID:           b.opts.NewID(),
			Kind:         models.EdgeGameToGame,
			Source:       sources[0].ID,
			SourceHandle: dyn.Type,
			Target:       p.game.ID,
			TargetHandle: p.slot,
		})
		b.g.SetSlotDynamic(p.game.ID, p.slot, dyn)
	}
}

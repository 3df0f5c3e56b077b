package brackets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Dosada05/tournament-scheduler/models"
)

// AssignMode says how a stage blueprint is spread over the fields.
type AssignMode string

const (
	AssignAll   AssignMode = "all"   // one stage per field
	AssignSplit AssignMode = "split" // teams partitioned into one lettered group per field
	AssignIndex AssignMode = "index" // a single stage on one field
)

// FieldAssignment is written as "all", "split" or a zero-based field index.
type FieldAssignment struct {
	Mode  AssignMode
	Index int
}

func AllFields() FieldAssignment { return FieldAssignment{Mode: AssignAll} }

func SplitFields() FieldAssignment { return FieldAssignment{Mode: AssignSplit} }

func OnField(index int) FieldAssignment { return FieldAssignment{Mode: AssignIndex, Index: index} }

func (a FieldAssignment) String() string { return a.scalar() }

// IsZero reports an unset assignment.
func (a FieldAssignment) IsZero() bool { return a.Mode == "" }

func (a FieldAssignment) scalar() string {
	if a.Mode == AssignIndex {
		return strconv.Itoa(a.Index)
	}
	return string(a.Mode)
}

func (a *FieldAssignment) parse(s string) error {
	switch AssignMode(s) {
	case AssignAll, AssignSplit:
		*a = FieldAssignment{Mode: AssignMode(s)}
		return nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: field assignment %q must be all, split or an index", ErrInvalidConfig, s)
	}
	*a = OnField(idx)
	return nil
}

func (a *FieldAssignment) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: field assignment must be a scalar (line %d)", ErrInvalidConfig, n.Line)
	}
	return a.parse(n.Value)
}

func (a FieldAssignment) MarshalYAML() (interface{}, error) {
	if a.Mode == AssignIndex {
		return a.Index, nil
	}
	return string(a.Mode), nil
}

func (a *FieldAssignment) UnmarshalJSON(data []byte) error {
	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		*a = OnField(idx)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: field assignment: %v", ErrInvalidConfig, err)
	}
	return a.parse(s)
}

func (a FieldAssignment) MarshalJSON() ([]byte, error) {
	if a.Mode == AssignIndex {
		return json.Marshal(a.Index)
	}
	return json.Marshal(string(a.Mode))
}

// TeamCount bounds the number of teams a template accepts. Exact wins over
// Min and Max when set; a zero bound is open.
type TeamCount struct {
	Min   int `yaml:"min,omitempty" json:"min,omitempty"`
	Max   int `yaml:"max,omitempty" json:"max,omitempty"`
	Exact int `yaml:"exact,omitempty" json:"exact,omitempty"`
}

// Check reports ErrTeamCountMismatch with the required range and the count given.
func (c TeamCount) Check(templateID string, n int) error {
	switch {
	case c.Exact > 0:
		if n != c.Exact {
			return fmt.Errorf("%w: template %q requires exactly %d teams, got %d", ErrTeamCountMismatch, templateID, c.Exact, n)
		}
	case c.Min > 0 && c.Max > 0:
		if n < c.Min || n > c.Max {
			return fmt.Errorf("%w: template %q requires between %d and %d teams, got %d", ErrTeamCountMismatch, templateID, c.Min, c.Max, n)
		}
	case c.Min > 0:
		if n < c.Min {
			return fmt.Errorf("%w: template %q requires at least %d teams, got %d", ErrTeamCountMismatch, templateID, c.Min, n)
		}
	case c.Max > 0:
		if n > c.Max {
			return fmt.Errorf("%w: template %q requires at most %d teams, got %d", ErrTeamCountMismatch, templateID, c.Max, n)
		}
	}
	return nil
}

// StageBlueprint describes one stage of a template before it is placed on fields.
type StageBlueprint struct {
	Name        string                    `yaml:"name" json:"name"`
	Order       int                       `yaml:"order" json:"order"`
	StageType   models.StageType          `yaml:"stage_type" json:"stage_type"`
	Mode        models.ProgressionMode    `yaml:"mode" json:"mode"`
	Fields      FieldAssignment           `yaml:"fields" json:"fields"`
	DoubleRound bool                      `yaml:"double_round,omitempty" json:"double_round,omitempty"`
	Positions   int                       `yaml:"positions,omitempty" json:"positions,omitempty"`
	Format      models.PlacementFormat    `yaml:"format,omitempty" json:"format,omitempty"`
	Mapping     models.ProgressionMapping `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// Template is a declarative tournament layout.
type Template struct {
	ID                string           `yaml:"id" json:"id"`
	Name              string           `yaml:"name" json:"name"`
	Description       string           `yaml:"description,omitempty" json:"description,omitempty"`
	Teams             TeamCount        `yaml:"teams" json:"teams"`
	DefaultFieldCount int              `yaml:"default_field_count,omitempty" json:"default_field_count,omitempty"`
	GameDuration      int              `yaml:"game_duration,omitempty" json:"game_duration,omitempty"`
	BreakDuration     *int             `yaml:"break_duration,omitempty" json:"break_duration,omitempty"`
	Stages            []StageBlueprint `yaml:"stages" json:"stages"`
}

// Validate checks the parts of a template that do not depend on the team count.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: template id is required", ErrInvalidConfig)
	}
	if len(t.Stages) == 0 {
		return fmt.Errorf("%w: template %q has no stages", ErrInvalidConfig, t.ID)
	}
	for i, s := range t.Stages {
		if s.Name == "" {
			return fmt.Errorf("%w: template %q stage %d has no name", ErrInvalidConfig, t.ID, i)
		}
		if s.Fields.IsZero() {
			return fmt.Errorf("%w: template %q stage %q has no field assignment", ErrInvalidConfig, t.ID, s.Name)
		}
		switch s.Mode {
		case models.ProgressionRoundRobin, models.ProgressionManual:
		case models.ProgressionPlacement:
			if _, err := placementTags(s.Positions, s.Format); err != nil {
				return fmt.Errorf("template %q stage %q: %w", t.ID, s.Name, err)
			}
		default:
			return fmt.Errorf("%w: template %q stage %q has unknown mode %q", ErrInvalidConfig, t.ID, s.Name, s.Mode)
		}
	}
	return nil
}

// Catalogue holds the templates available to the generator.
type Catalogue struct {
	templates map[string]Template
}

type catalogueFile struct {
	Templates []Template `yaml:"templates"`
}

// DefaultCatalogue returns the built-in templates.
func DefaultCatalogue() *Catalogue {
	c := &Catalogue{templates: make(map[string]Template)}
	for _, t := range builtinTemplates() {
		c.templates[t.ID] = t
	}
	return c
}

// LoadCatalogueFile adds the templates of a YAML file to the built-ins.
// File entries replace built-ins with the same id.
func LoadCatalogueFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing template file: %w", err)
	}
	c := DefaultCatalogue()
	for i := range file.Templates {
		if err := c.Add(file.Templates[i]); err != nil {
			return nil, fmt.Errorf("template file %s: %w", path, err)
		}
	}
	return c, nil
}

// Add validates t and stores it under its id.
func (c *Catalogue) Add(t Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.templates[t.ID] = t
	return nil
}

func (c *Catalogue) Get(id string) (Template, error) {
	t, ok := c.templates[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return t, nil
}

// List returns every template sorted by id.
func (c *Catalogue) List() []Template {
	out := make([]Template, 0, len(c.templates))
	for _, t := range c.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func builtinTemplates() []Template {
	return []Template{
		{
			ID:                "crossover-4",
			Name:              "Two groups with crossover",
			Description:       "Two round-robin groups; group games seed a crossover, final and 3rd place game.",
			Teams:             TeamCount{Min: 4, Max: 8},
			DefaultFieldCount: 2,
			Stages: []StageBlueprint{
				{Name: "Group", Order: 0, StageType: models.StageTypePreliminary, Mode: models.ProgressionRoundRobin, Fields: SplitFields()},
				{Name: "Crossover", Order: 1, StageType: models.StageTypePlacement, Mode: models.ProgressionPlacement, Fields: OnField(0), Positions: 4, Format: models.FormatCrossover},
			},
		},
		{
			ID:                "knockout-8",
			Name:              "Knockout for eight",
			Description:       "Quarterfinals, semifinals, final and 3rd place game.",
			Teams:             TeamCount{Exact: 8},
			DefaultFieldCount: 1,
			Stages: []StageBlueprint{
				{Name: "Knockout", Order: 0, StageType: models.StageTypeFinal, Mode: models.ProgressionPlacement, Fields: OnField(0), Positions: 8, Format: models.FormatSingleElimination},
			},
		},
		{
			ID:                "round-robin-6",
			Name:              "Round robin for six",
			Description:       "Every team plays every other team once.",
			Teams:             TeamCount{Exact: 6},
			DefaultFieldCount: 1,
			Stages: []StageBlueprint{
				{Name: "Round Robin", Order: 0, StageType: models.StageTypePreliminary, Mode: models.ProgressionRoundRobin, Fields: OnField(0)},
			},
		},
		{
			ID:                "groups-2x3-playoff",
			Name:              "Two groups of three with playoff",
			Description:       "Group winners and third-game winners meet across groups in the semifinals.",
			Teams:             TeamCount{Exact: 6},
			DefaultFieldCount: 2,
			Stages: []StageBlueprint{
				{Name: "Group", Order: 0, StageType: models.StageTypePreliminary, Mode: models.ProgressionRoundRobin, Fields: SplitFields()},
				{Name: "Playoff", Order: 1, StageType: models.StageTypeFinal, Mode: models.ProgressionPlacement, Fields: OnField(0), Positions: 4, Format: models.FormatSingleElimination},
			},
		},
		{
			ID:                "groups-2x4-crossover",
			Name:              "Two groups of four with crossover",
			Description:       "Two groups of four; the last game of each group seeds the crossover.",
			Teams:             TeamCount{Exact: 8},
			DefaultFieldCount: 2,
			Stages: []StageBlueprint{
				{Name: "Group", Order: 0, StageType: models.StageTypePreliminary, Mode: models.ProgressionRoundRobin, Fields: SplitFields()},
				{Name: "Crossover", Order: 1, StageType: models.StageTypePlacement, Mode: models.ProgressionPlacement, Fields: OnField(0), Positions: 4, Format: models.FormatCrossover},
			},
		},
	}
}

package validation

import (
	"strings"
)

// Severity separates blocking errors from advisory warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueType is the machine-readable kind of a finding.
type IssueType string

// Errors block export.
const (
	IncompleteGameInputs IssueType = "incomplete_game_inputs"
	OfficialPlaying      IssueType = "official_playing"
	CircularDependency   IssueType = "circular_dependency"
	TeamOutsideContainer IssueType = "team_outside_container"
	GameOutsideContainer IssueType = "game_outside_container"
	StageOutsideField    IssueType = "stage_outside_field"
	StageInvalidParent   IssueType = "stage_invalid_parent"
	FieldOverlap         IssueType = "field_overlap"
	ProgressionOrder     IssueType = "progression_order"
)

// Warnings never block.
const (
	DuplicateStanding      IssueType = "duplicate_standing"
	OrphanedTeam           IssueType = "orphaned_team"
	UnassignedField        IssueType = "unassigned_field"
	NoTeams                IssueType = "no_teams"
	NoGames                IssueType = "no_games"
	TeamWithoutGames       IssueType = "team_without_games"
	UnusedField            IssueType = "unused_field"
	BrokenProgression      IssueType = "broken_progression"
	UnevenGameDistribution IssueType = "uneven_game_distribution"
	TeamOverlap            IssueType = "team_overlap"
	StageSequenceTime      IssueType = "stage_sequence_time"
	StageSequenceType      IssueType = "stage_sequence_type"
)

// Issue is one finding. MessageKey and MessageParams are meant for a
// presentation layer to localize; AffectedNodes drive highlighting.
type Issue struct {
	ID            string         `json:"id"`
	Type          IssueType      `json:"type"`
	Severity      Severity       `json:"severity"`
	MessageKey    string         `json:"message_key"`
	MessageParams map[string]any `json:"message_params,omitempty"`
	AffectedNodes []string       `json:"affected_nodes"`
}

// Result is the outcome of validating a whole graph.
type Result struct {
	IsValid  bool    `json:"is_valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// HasType reports whether any error or warning of the given type was found.
func (r *Result) HasType(t IssueType) bool {
	return len(r.OfType(t)) > 0
}

// OfType returns the findings of one type.
func (r *Result) OfType(t IssueType) []Issue {
	var out []Issue
	for _, list := range [][]Issue{r.Errors, r.Warnings} {
		for _, is := range list {
			if is.Type == t {
				out = append(out, is)
			}
		}
	}
	return out
}

type collector struct {
	errors   []Issue
	warnings []Issue
	seen     map[string]struct{}
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

// add records a finding. The id is derived from the type, a discriminator and
// the affected nodes so that it stays stable between runs.
func (c *collector) add(sev Severity, t IssueType, discriminator string, params map[string]any, nodes ...string) {
	parts := []string{string(t)}
	if discriminator != "" {
		parts = append(parts, discriminator)
	}
	parts = append(parts, nodes...)
	id := strings.Join(parts, ":")
	if _, dup := c.seen[id]; dup {
		return
	}
	c.seen[id] = struct{}{}

	affected := append([]string{}, nodes...)
	is := Issue{
		ID:            id,
		Type:          t,
		Severity:      sev,
		MessageKey:    "validation." + string(sev) + "." + string(t),
		MessageParams: params,
		AffectedNodes: affected,
	}
	if sev == SeverityError {
		c.errors = append(c.errors, is)
	} else {
		c.warnings = append(c.warnings, is)
	}
}

func (c *collector) fail(t IssueType, discriminator string, params map[string]any, nodes ...string) {
	c.add(SeverityError, t, discriminator, params, nodes...)
}

func (c *collector) warn(t IssueType, discriminator string, params map[string]any, nodes ...string) {
	c.add(SeverityWarning, t, discriminator, params, nodes...)
}

func (c *collector) result() *Result {
	res := &Result{
		IsValid:  len(c.errors) == 0,
		Errors:   c.errors,
		Warnings: c.warnings,
	}
	if res.Errors == nil {
		res.Errors = []Issue{}
	}
	if res.Warnings == nil {
		res.Warnings = []Issue{}
	}
	return res
}

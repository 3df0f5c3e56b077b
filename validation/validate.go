// Package validation derives errors and warnings from a whole schedule graph.
// Validate is a pure function of the graph; Validator memoizes it so that
// callers can re-run it after every edit.
package validation

import (
	"sync"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// Options tune the checks that need scheduling defaults.
type Options struct {
	// DefaultDuration is used for games and stages declaring no duration.
	DefaultDuration int
}

// DefaultOptions match the defaults of the time propagation engine.
func DefaultOptions() Options {
	return Options{DefaultDuration: 70}
}

// Validate runs every rule over g. It never mutates g.
func Validate(g *models.Graph, opts Options) *Result {
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = DefaultOptions().DefaultDuration
	}
	v := &run{
		g:      g,
		c:      newCollector(),
		engine: timing.NewEngine(opts.DefaultDuration, 0),
	}
	v.checkHierarchy()
	v.checkGameInputs()
	v.checkCycles()
	v.checkFieldOverlaps()
	v.checkProgressionOrder()
	v.checkStandings()
	v.checkTeams()
	v.checkFields()
	v.checkDistribution()
	v.checkTeamOverlaps()
	v.checkStageSequence()
	return v.c.result()
}

type run struct {
	g      *models.Graph
	c      *collector
	engine timing.Engine
}

// Validator returns the identical *Result for an unchanged graph: same graph
// pointer and same revision.
type Validator struct {
	opts Options

	mu       sync.Mutex
	graph    *models.Graph
	revision uint64
	result   *Result
}

func NewValidator(opts Options) *Validator {
	return &Validator{opts: opts}
}

func (v *Validator) Validate(g *models.Graph) *Result {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.result != nil && v.graph == g && v.revision == g.Revision() {
		return v.result
	}
	v.graph = g
	v.revision = g.Revision()
	v.result = Validate(g, v.opts)
	return v.result
}

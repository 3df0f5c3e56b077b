package services

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

// Vertical distance between nodes stacked in a container.
const rowSpacing = 120.0

// Designer is the single writer of a schedule graph. Every mutation goes
// through it so that dynamic references stay a projection of the edge set and
// start times stay propagated.
type Designer struct {
	g      *models.Graph
	engine timing.Engine
	logger *slog.Logger
	newID  func() string
}

// NewDesigner wraps g. A nil graph starts an empty schedule.
func NewDesigner(g *models.Graph, engine timing.Engine, logger *slog.Logger) *Designer {
	if g == nil {
		g = models.NewGraph()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Designer{
		g:      g,
		engine: engine,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Graph returns the graph being edited. Callers must not mutate it directly.
func (d *Designer) Graph() *models.Graph {
	return d.g
}

// Engine returns the time propagation engine used after edits.
func (d *Designer) Engine() timing.Engine {
	return d.engine
}

// Recalculate re-runs time propagation over the whole graph.
func (d *Designer) Recalculate() []string {
	return d.engine.Calculate(d.g)
}

// atomically runs fn against the graph and restores the previous state if fn
// fails, so that a batch is applied entirely or not at all.
func (d *Designer) atomically(fn func() error) error {
	snapshot := d.g.Clone()
	if err := fn(); err != nil {
		// Откат к снимку
		d.g.Restore(snapshot)
		return err
	}
	return nil
}

// recalcFrom recomputes start times after a change at position index of a stage.
func (d *Designer) recalcFrom(stageID string, index int) {
	if _, ok := d.g.Stage(stageID); !ok {
		return
	}
	d.engine.RecalculateFrom(d.g, stageID, index)
}

func indexInStage(g *models.Graph, stageID, gameID string) int {
	for i, n := range g.StageGames(stageID) {
		if n.ID == gameID {
			return i
		}
	}
	return 0
}

package services

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
)

// ApplyOperations applies the generator's command list as one unit. On the
// first failure the graph is restored and the error returned.
func (d *Designer) ApplyOperations(ops []models.Operation) error {
	err := d.atomically(func() error {
		return d.applyOps(ops)
	})
	if err != nil {
		d.logger.Warn("operations rolled back", slog.Int("operations", len(ops)), slog.Any("error", err))
	}
	return err
}

func (d *Designer) applyOps(ops []models.Operation) error {
	for i, op := range ops {
		switch op.Type {
		case models.OpAssignTeam:
			if err := d.AssignTeamToGame(op.GameID, op.Slot, op.TeamID); err != nil {
				return fmt.Errorf("operation %d (%s): %w", i, op.Type, err)
			}
		case models.OpAddEdges:
			for _, spec := range op.Edges {
				if _, err := d.AddGameToGameEdge(spec.SourceGameID, spec.OutputType, spec.TargetGameID, spec.TargetSlot); err != nil {
					return fmt.Errorf("operation %d (%s): %w", i, op.Type, err)
				}
			}
		default:
			return fmt.Errorf("operation %d (%q): %w", i, op.Type, ErrInvalidOperation)
		}
	}
	return nil
}

// ApplyTournament inserts a generated tournament and its assignment operations
// into the graph, then propagates start times. Nothing is kept if any part
// fails.
func (d *Designer) ApplyTournament(t *brackets.Tournament, ops []models.Operation) error {
	err := d.atomically(func() error {
		claim := func(id string) error {
			if d.g.Has(id) {
				return fmt.Errorf("generated node %q: %w", id, models.ErrDuplicateID)
			}
			return nil
		}
		for _, f := range t.Fields {
			if err := claim(f.ID); err != nil {
				return err
			}
			v := *f
			d.g.PutField(&v)
		}
		for _, s := range t.Stages {
			if err := claim(s.ID); err != nil {
				return err
			}
			v := *s
			d.g.PutStage(&v)
		}
		for _, n := range t.Games {
			if err := claim(n.ID); err != nil {
				return err
			}
			v := *n
			d.g.PutGame(&v)
		}
		for _, spec := range t.Edges {
			if _, err := d.AddGameToGameEdge(spec.SourceGameID, spec.OutputType, spec.TargetGameID, spec.TargetSlot); err != nil {
				return fmt.Errorf("bracket edge %s -> %s: %w", spec.SourceGameID, spec.TargetGameID, err)
			}
		}
		return d.applyOps(ops)
	})
	if err != nil {
		d.logger.Warn("tournament rolled back", slog.Any("error", err))
		return err
	}
	d.Recalculate()
	d.logger.Info("tournament applied",
		slog.Int("fields", len(t.Fields)),
		slog.Int("stages", len(t.Stages)),
		slog.Int("games", len(t.Games)),
		slog.Int("operations", len(ops)),
	)
	return nil
}

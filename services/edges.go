package services

import (
	"fmt"

	"github.com/Dosada05/tournament-scheduler/models"
)

// AddGameToGameEdge routes the result of sourceGameID into a slot of
// targetGameID. Any edge already feeding that slot is removed first, the
// slot's static team is cleared and its dynamic reference is set to the
// source's standing.
func (d *Designer) AddGameToGameEdge(sourceGameID string, output models.OutputType, targetGameID string, slot models.Slot) (string, error) {
	src, ok := d.g.Game(sourceGameID)
	if !ok {
		return "", fmt.Errorf("edge source %q: %w", sourceGameID, ErrGameNotFound)
	}
	if _, ok := d.g.Game(targetGameID); !ok {
		return "", fmt.Errorf("edge target %q: %w", targetGameID, ErrGameNotFound)
	}
	if !output.Valid() {
		return "", fmt.Errorf("edge output %q: %w", output, ErrInvalidOutput)
	}
	if !slot.Valid() {
		return "", fmt.Errorf("edge slot %q: %w", slot, ErrInvalidSlot)
	}
	if sourceGameID == targetGameID {
		return "", fmt.Errorf("edge %q: %w", sourceGameID, ErrSelfReference)
	}

	// В слот входит не больше одного ребра
	d.detachSlot(targetGameID, slot)
	e := &models.Edge{
		ID:           d.newID(),
		Kind:         models.EdgeGameToGame,
		Source:       sourceGameID,
		SourceHandle: output,
		Target:       targetGameID,
		TargetHandle: slot,
	}
	d.g.PutEdge(e)
	d.g.SetSlotDynamic(targetGameID, slot, &models.DynamicRef{Type: output, MatchName: src.Standing})
	return e.ID, nil
}

// RemoveGameToGameEdge drops the edge feeding a slot, if any, and clears the
// slot's dynamic reference.
func (d *Designer) RemoveGameToGameEdge(targetGameID string, slot models.Slot) error {
	n, ok := d.g.Game(targetGameID)
	if !ok {
		return fmt.Errorf("remove edge into %q: %w", targetGameID, ErrGameNotFound)
	}
	if !slot.Valid() {
		return fmt.Errorf("remove edge slot %q: %w", slot, ErrInvalidSlot)
	}
	for _, e := range d.g.EdgesInto(targetGameID, slot) {
		if e.Kind == models.EdgeGameToGame {
			d.g.RemoveEdge(e.ID)
		}
	}
	if n.Dynamic(slot) != nil {
		d.g.SetSlotDynamic(targetGameID, slot, nil)
	}
	return nil
}

// AddBulkGameToGameEdges applies every spec or none of them.
func (d *Designer) AddBulkGameToGameEdges(specs []models.EdgeSpec) ([]string, error) {
	ids := make([]string, 0, len(specs))
	if len(specs) == 0 {
		return ids, nil
	}
	err := d.atomically(func() error {
		for i, spec := range specs {
			id, err := d.AddGameToGameEdge(spec.SourceGameID, spec.OutputType, spec.TargetGameID, spec.TargetSlot)
			if err != nil {
				return fmt.Errorf("edge %d of %d: %w", i+1, len(specs), err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteEdge removes one edge and clears the projection it backed.
func (d *Designer) DeleteEdge(id string) error {
	e, ok := d.g.Edge(id)
	if !ok {
		return fmt.Errorf("delete edge %q: %w", id, ErrEdgeNotFound)
	}
	d.g.RemoveEdge(id)
	d.clearProjection(e)
	return nil
}

// DeleteEdgesByNodes removes every edge touching one of nodeIDs and returns
// the removed edge ids.
func (d *Designer) DeleteEdgesByNodes(nodeIDs []string) []string {
	set := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		set[id] = struct{}{}
	}
	removed := []string{}
	for _, e := range d.g.Edges() {
		_, src := set[e.Source]
		_, dst := set[e.Target]
		if !src && !dst {
			continue
		}
		d.g.RemoveEdge(e.ID)
		d.clearProjection(e)
		removed = append(removed, e.ID)
	}
	return removed
}

// AssignTeamToGame puts a team into a slot through a TeamToGame edge. Any edge
// already feeding the slot is removed and the dynamic reference is cleared.
func (d *Designer) AssignTeamToGame(gameID string, slot models.Slot, teamID string) error {
	if _, ok := d.g.Game(gameID); !ok {
		return fmt.Errorf("assign to %q: %w", gameID, ErrGameNotFound)
	}
	if _, ok := d.g.Team(teamID); !ok {
		return fmt.Errorf("assign %q: %w", teamID, ErrTeamNotFound)
	}
	if !slot.Valid() {
		return fmt.Errorf("assign slot %q: %w", slot, ErrInvalidSlot)
	}

	d.detachSlot(gameID, slot)
	d.g.PutEdge(&models.Edge{
		ID:           d.newID(),
		Kind:         models.EdgeTeamToGame,
		Source:       teamID,
		Target:       gameID,
		TargetHandle: slot,
	})
	d.g.SetSlotTeam(gameID, slot, models.StringPtr(teamID))
	return nil
}

// UnassignTeam empties a slot that holds a static team.
func (d *Designer) UnassignTeam(gameID string, slot models.Slot) error {
	n, ok := d.g.Game(gameID)
	if !ok {
		return fmt.Errorf("unassign from %q: %w", gameID, ErrGameNotFound)
	}
	if !slot.Valid() {
		return fmt.Errorf("unassign slot %q: %w", slot, ErrInvalidSlot)
	}
	for _, e := range d.g.EdgesInto(gameID, slot) {
		if e.Kind == models.EdgeTeamToGame {
			d.g.RemoveEdge(e.ID)
		}
	}
	if n.TeamID(slot) != nil {
		d.g.ClearSlot(gameID, slot)
	}
	return nil
}

// SetOfficial sets or, with a nil teamID, clears the officiating team.
func (d *Designer) SetOfficial(gameID string, teamID *string) error {
	n, ok := d.g.Game(gameID)
	if !ok {
		return fmt.Errorf("set official of %q: %w", gameID, ErrGameNotFound)
	}
	if teamID != nil {
		if _, ok := d.g.Team(*teamID); !ok {
			return fmt.Errorf("official %q: %w", *teamID, ErrTeamNotFound)
		}
		teamID = models.StringPtr(*teamID)
	}
	n.OfficialTeamID = teamID
	d.g.Touch()
	return nil
}

// Sync re-derives every slot projection from the edge set in place.
func (d *Designer) Sync() int {
	return syncDynamicRefs(d.g)
}

// detachSlot removes every edge into a slot and empties it.
func (d *Designer) detachSlot(gameID string, slot models.Slot) {
	for _, e := range d.g.EdgesInto(gameID, slot) {
		d.g.RemoveEdge(e.ID)
	}
	d.g.ClearSlot(gameID, slot)
}

// clearProjection empties the slot an already removed edge was feeding, unless
// another edge of the same kind still feeds it.
func (d *Designer) clearProjection(e *models.Edge) {
	n, ok := d.g.Game(e.Target)
	if !ok {
		return
	}
	for _, other := range d.g.EdgesInto(e.Target, e.TargetHandle) {
		if other.Kind == e.Kind {
			return
		}
	}
	switch e.Kind {
	case models.EdgeGameToGame:
		if n.Dynamic(e.TargetHandle) != nil {
			d.g.SetSlotDynamic(e.Target, e.TargetHandle, nil)
		}
	case models.EdgeTeamToGame:
		if id := n.TeamID(e.TargetHandle); id != nil && *id == e.Source {
			d.g.ClearSlot(e.Target, e.TargetHandle)
		}
	}
}

// SyncNodesWithEdges returns a copy of g whose slot projections are derived
// from the edge set: every GameToGame edge sets its target's dynamic reference
// from the source's current standing and every TeamToGame edge sets its
// target's team id. Edges whose endpoints no longer exist are dropped. g is
// not modified.
func SyncNodesWithEdges(g *models.Graph) *models.Graph {
	c := g.Clone()
	syncDynamicRefs(c)
	return c
}

// syncDynamicRefs is the in-place form of SyncNodesWithEdges. It returns the
// number of slots it rewrote.
func syncDynamicRefs(g *models.Graph) int {
	changed := 0
	for _, e := range g.Edges() {
		target, ok := g.Game(e.Target)
		if !ok {
			g.RemoveEdge(e.ID)
			continue
		}
		switch e.Kind {
		case models.EdgeGameToGame:
			src, ok := g.Game(e.Source)
			if !ok {
				g.RemoveEdge(e.ID)
				if target.Dynamic(e.TargetHandle) != nil {
					g.SetSlotDynamic(e.Target, e.TargetHandle, nil)
					changed++
				}
				continue
			}
			want := models.DynamicRef{Type: e.SourceHandle, MatchName: src.Standing}
			if cur := target.Dynamic(e.TargetHandle); cur == nil || *cur != want || target.TeamID(e.TargetHandle) != nil {
				g.SetSlotDynamic(e.Target, e.TargetHandle, &want)
				changed++
			}
		case models.EdgeTeamToGame:
			if _, ok := g.Team(e.Source); !ok {
				g.RemoveEdge(e.ID)
				if id := target.TeamID(e.TargetHandle); id != nil && *id == e.Source {
					g.ClearSlot(e.Target, e.TargetHandle)
					changed++
				}
				continue
			}
			if cur := target.TeamID(e.TargetHandle); cur == nil || *cur != e.Source || target.Dynamic(e.TargetHandle) != nil {
				g.SetSlotTeam(e.Target, e.TargetHandle, models.StringPtr(e.Source))
				changed++
			}
		}
	}
	return changed
}

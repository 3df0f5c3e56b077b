package models

import (
	"sort"
)

// NodeKind identifies which arena a node id lives in.
type NodeKind string

const (
	KindField NodeKind = "field"
	KindStage NodeKind = "stage"
	KindGame  NodeKind = "game"
	KindTeam  NodeKind = "team"
	KindGroup NodeKind = "group"
)

// Graph is an arena of schedule nodes keyed by id plus a separate edge index.
// Insertion order is tracked per id so that listings (and the "array sequence"
// of games inside a stage) are deterministic.
//
// Graph is not safe for concurrent use; callers serialize writes.
type Graph struct {
	fields map[string]*Field
	stages map[string]*Stage
	games  map[string]*Game
	teams  map[string]*Team
	groups map[string]*TeamGroup
	edges  map[string]*Edge

	seq      map[string]uint64
	edgeSeq  map[string]uint64
	nextSeq  uint64
	revision uint64
}

func NewGraph() *Graph {
	return &Graph{
		fields:  make(map[string]*Field),
		stages:  make(map[string]*Stage),
		games:   make(map[string]*Game),
		teams:   make(map[string]*Team),
		groups:  make(map[string]*TeamGroup),
		edges:   make(map[string]*Edge),
		seq:     make(map[string]uint64),
		edgeSeq: make(map[string]uint64),
	}
}

// Revision changes on every mutation made through the Graph API.
func (g *Graph) Revision() uint64 { return g.revision }

// Touch marks the graph as changed. Callers that mutate node structs in place
// must call it so memoized projections are invalidated.
func (g *Graph) Touch() { g.revision++ }

func (g *Graph) stamp(id string) {
	g.nextSeq++
	g.seq[id] = g.nextSeq
}

// Kind reports which kind of node id refers to.
func (g *Graph) Kind(id string) (NodeKind, bool) {
	switch {
	case g.fields[id] != nil:
		return KindField, true
	case g.stages[id] != nil:
		return KindStage, true
	case g.games[id] != nil:
		return KindGame, true
	case g.teams[id] != nil:
		return KindTeam, true
	case g.groups[id] != nil:
		return KindGroup, true
	}
	return "", false
}

// Has reports whether any node uses id.
func (g *Graph) Has(id string) bool {
	_, ok := g.Kind(id)
	return ok
}

func (g *Graph) Field(id string) (*Field, bool) {
	f, ok := g.fields[id]
	return f, ok
}

func (g *Graph) Stage(id string) (*Stage, bool) {
	s, ok := g.stages[id]
	return s, ok
}

func (g *Graph) Game(id string) (*Game, bool) {
	n, ok := g.games[id]
	return n, ok
}

func (g *Graph) Team(id string) (*Team, bool) {
	t, ok := g.teams[id]
	return t, ok
}

func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

func (g *Graph) Group(id string) (*TeamGroup, bool) {
	gr, ok := g.groups[id]
	return gr, ok
}

// PutField inserts or replaces a field.
func (g *Graph) PutField(f *Field) {
	if _, ok := g.fields[f.ID]; !ok {
		g.stamp(f.ID)
	}
	g.fields[f.ID] = f
	g.revision++
}

func (g *Graph) PutStage(s *Stage) {
	if _, ok := g.stages[s.ID]; !ok {
		g.stamp(s.ID)
	}
	g.stages[s.ID] = s
	g.revision++
}

func (g *Graph) PutGame(n *Game) {
	if _, ok := g.games[n.ID]; !ok {
		g.stamp(n.ID)
	}
	g.games[n.ID] = n
	g.revision++
}

func (g *Graph) PutTeam(t *Team) {
	if _, ok := g.teams[t.ID]; !ok {
		g.stamp(t.ID)
	}
	g.teams[t.ID] = t
	g.revision++
}

func (g *Graph) PutGroup(gr *TeamGroup) {
	if _, ok := g.groups[gr.ID]; !ok {
		g.stamp(gr.ID)
	}
	g.groups[gr.ID] = gr
	g.revision++
}

// PutEdge inserts or replaces an edge.
func (g *Graph) PutEdge(e *Edge) {
	if _, ok := g.edges[e.ID]; !ok {
		g.nextSeq++
		g.edgeSeq[e.ID] = g.nextSeq
	}
	g.edges[e.ID] = e
	g.revision++
}

// RemoveEdge deletes an edge; it reports whether the edge existed.
func (g *Graph) RemoveEdge(id string) bool {
	if _, ok := g.edges[id]; !ok {
		return false
	}
	delete(g.edges, id)
	delete(g.edgeSeq, id)
	g.revision++
	return true
}

// RemoveNodes deletes every node in ids together with every edge whose source
// or target is in ids. It returns the removed edges.
func (g *Graph) RemoveNodes(ids map[string]struct{}) []*Edge {
	var removed []*Edge
	for _, e := range g.Edges() {
		_, src := ids[e.Source]
		_, dst := ids[e.Target]
		if src || dst {
			removed = append(removed, e)
			delete(g.edges, e.ID)
			delete(g.edgeSeq, e.ID)
		}
	}
	for id := range ids {
		delete(g.fields, id)
		delete(g.stages, id)
		delete(g.games, id)
		delete(g.teams, id)
		delete(g.groups, id)
		delete(g.seq, id)
	}
	g.revision++
	return removed
}

// MoveToEnd gives id a fresh sequence number so it lists after its siblings.
func (g *Graph) MoveToEnd(id string) {
	if _, ok := g.seq[id]; ok {
		g.stamp(id)
		g.revision++
	}
}

// SetSlotTeam assigns a static team to a game slot, clearing its dynamic reference.
func (g *Graph) SetSlotTeam(gameID string, slot Slot, teamID *string) bool {
	game, ok := g.games[gameID]
	if !ok {
		return false
	}
	game.setTeam(slot, teamID)
	g.revision++
	return true
}

// SetSlotDynamic assigns a dynamic reference to a game slot, clearing its static team.
func (g *Graph) SetSlotDynamic(gameID string, slot Slot, ref *DynamicRef) bool {
	game, ok := g.games[gameID]
	if !ok {
		return false
	}
	game.setDynamic(slot, ref)
	g.revision++
	return true
}

// ClearSlot removes both the static team and the dynamic reference of a slot.
func (g *Graph) ClearSlot(gameID string, slot Slot) bool {
	return g.SetSlotTeam(gameID, slot, nil)
}

func (g *Graph) bySeq(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool { return g.seq[ids[i]] < g.seq[ids[j]] })
}

// Fields lists fields by Order, ties broken by insertion order.
func (g *Graph) Fields() []*Field {
	out := make([]*Field, 0, len(g.fields))
	for _, f := range g.fields {
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return g.seq[out[i].ID] < g.seq[out[j].ID]
	})
	return out
}

// Stages lists every stage in insertion order.
func (g *Graph) Stages() []*Stage {
	ids := make([]string, 0, len(g.stages))
	for id := range g.stages {
		ids = append(ids, id)
	}
	g.bySeq(ids)
	out := make([]*Stage, len(ids))
	for i, id := range ids {
		out[i] = g.stages[id]
	}
	return out
}

// Games lists every game in insertion order.
func (g *Graph) Games() []*Game {
	ids := make([]string, 0, len(g.games))
	for id := range g.games {
		ids = append(ids, id)
	}
	g.bySeq(ids)
	out := make([]*Game, len(ids))
	for i, id := range ids {
		out[i] = g.games[id]
	}
	return out
}

func (g *Graph) Teams() []*Team {
	ids := make([]string, 0, len(g.teams))
	for id := range g.teams {
		ids = append(ids, id)
	}
	g.bySeq(ids)
	out := make([]*Team, len(ids))
	for i, id := range ids {
		out[i] = g.teams[id]
	}
	return out
}

// Groups lists team groups by Order, ties broken by insertion order.
func (g *Graph) Groups() []*TeamGroup {
	out := make([]*TeamGroup, 0, len(g.groups))
	for _, gr := range g.groups {
		out = append(out, gr)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return g.seq[out[i].ID] < g.seq[out[j].ID]
	})
	return out
}

// Edges lists every edge in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return g.edgeSeq[out[i].ID] < g.edgeSeq[out[j].ID] })
	return out
}

// EdgesInto returns the edges that target a given game slot.
func (g *Graph) EdgesInto(gameID string, slot Slot) []*Edge {
	var out []*Edge
	for _, e := range g.Edges() {
		if e.Target == gameID && e.TargetHandle == slot {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy that shares no mutable state with g.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for id, f := range g.fields {
		v := *f
		c.fields[id] = &v
	}
	for id, s := range g.stages {
		v := *s
		if s.ProgressionConfig != nil {
			cfg := *s.ProgressionConfig
			if s.ProgressionConfig.Mapping != nil {
				cfg.Mapping = make(ProgressionMapping, len(s.ProgressionConfig.Mapping))
				for k, m := range s.ProgressionConfig.Mapping {
					cfg.Mapping[k] = m
				}
			}
			v.ProgressionConfig = &cfg
		}
		c.stages[id] = &v
	}
	for id, n := range g.games {
		c.games[id] = n.clone()
	}
	for id, t := range g.teams {
		v := *t
		c.teams[id] = &v
	}
	for id, gr := range g.groups {
		v := *gr
		c.groups[id] = &v
	}
	for id, e := range g.edges {
		v := *e
		c.edges[id] = &v
	}
	for id, s := range g.seq {
		c.seq[id] = s
	}
	for id, s := range g.edgeSeq {
		c.edgeSeq[id] = s
	}
	c.nextSeq = g.nextSeq
	c.revision = g.revision
	return c
}

// Restore replaces the contents of g with those of snapshot. The revision
// keeps increasing so memoized results of the discarded state are not reused.
func (g *Graph) Restore(snapshot *Graph) {
	rev := g.revision
	c := snapshot.Clone()
	*g = *c
	g.revision = rev + 1
}

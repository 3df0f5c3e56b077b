package models

import "fmt"

// Document is the serialisable form of a Graph. Slices keep the graph's
// insertion order, so games inside a stage keep their array sequence.
type Document struct {
	Fields []Field     `json:"fields"`
	Stages []Stage     `json:"stages"`
	Games  []Game      `json:"games"`
	Teams  []Team      `json:"teams"`
	Groups []TeamGroup `json:"groups"`
	Edges  []Edge      `json:"edges"`
}

// Document snapshots the graph.
func (g *Graph) Document() Document {
	doc := Document{
		Fields: make([]Field, 0, len(g.fields)),
		Stages: make([]Stage, 0, len(g.stages)),
		Games:  make([]Game, 0, len(g.games)),
		Teams:  make([]Team, 0, len(g.teams)),
		Groups: make([]TeamGroup, 0, len(g.groups)),
		Edges:  make([]Edge, 0, len(g.edges)),
	}
	c := g.Clone()
	for _, f := range c.Fields() {
		doc.Fields = append(doc.Fields, *f)
	}
	for _, s := range c.Stages() {
		doc.Stages = append(doc.Stages, *s)
	}
	for _, n := range c.Games() {
		doc.Games = append(doc.Games, *n)
	}
	for _, t := range c.Teams() {
		doc.Teams = append(doc.Teams, *t)
	}
	for _, gr := range c.Groups() {
		doc.Groups = append(doc.Groups, *gr)
	}
	for _, e := range c.Edges() {
		doc.Edges = append(doc.Edges, *e)
	}
	return doc
}

// GraphFromDocument rebuilds a graph. Node ids must be unique across kinds;
// referential problems (missing parents, dangling edges) are left for the
// validation engine to report.
func GraphFromDocument(doc Document) (*Graph, error) {
	g := NewGraph()
	seen := make(map[string]struct{})
	claim := func(id string) error {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		return nil
	}
	for i := range doc.Fields {
		f := doc.Fields[i]
		if err := claim(f.ID); err != nil {
			return nil, err
		}
		g.PutField(&f)
	}
	for i := range doc.Stages {
		s := doc.Stages[i]
		if err := claim(s.ID); err != nil {
			return nil, err
		}
		g.PutStage(&s)
	}
	for i := range doc.Games {
		n := doc.Games[i]
		if err := claim(n.ID); err != nil {
			return nil, err
		}
		g.PutGame(n.clone())
	}
	for i := range doc.Teams {
		t := doc.Teams[i]
		if err := claim(t.ID); err != nil {
			return nil, err
		}
		g.PutTeam(&t)
	}
	for i := range doc.Groups {
		gr := doc.Groups[i]
		if err := claim(gr.ID); err != nil {
			return nil, err
		}
		g.PutGroup(&gr)
	}
	edgeIDs := make(map[string]struct{})
	for i := range doc.Edges {
		e := doc.Edges[i]
		if _, dup := edgeIDs[e.ID]; dup {
			return nil, fmt.Errorf("%w: edge %q", ErrDuplicateID, e.ID)
		}
		if e.Kind != EdgeTeamToGame && e.Kind != EdgeGameToGame {
			return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownEdge, e.ID, e.Kind)
		}
		edgeIDs[e.ID] = struct{}{}
		g.PutEdge(&e)
	}
	return g, nil
}

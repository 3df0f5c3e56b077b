package validation

import (
	"slices"
	"strings"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/Dosada05/tournament-scheduler/models"
)

// gameAdjacency builds the GameToGame successor lists, ignoring edges whose
// endpoints are not both games.
func (v *run) gameAdjacency() map[string][]string {
	adj := make(map[string][]string)
	for _, e := range v.g.Edges() {
		if e.Kind != models.EdgeGameToGame {
			continue
		}
		if _, ok := v.g.Game(e.Source); !ok {
			continue
		}
		if _, ok := v.g.Game(e.Target); !ok {
			continue
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	return adj
}

// dependencyGraph mirrors the game dependencies as a directed multigraph.
// Winner and loser of one game may both feed the same successor, and a game
// may reference itself.
func dependencyGraph(order []string, adj map[string][]string) (*core.Graph, error) {
	dg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, id := range order {
		if err := dg.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, from := range order {
		for _, to := range adj[from] {
			if _, err := dg.AddEdge(from, to, 0); err != nil {
				return nil, err
			}
		}
	}
	return dg, nil
}

// orient turns a closed cycle [v0 ... v0] back into the edge direction and
// rotates it to start at its smallest id.
func orient(closed []string, adj map[string][]string) []string {
	cycle := append([]string(nil), closed[:len(closed)-1]...)
	// cycle may come back reversed
	if len(cycle) > 1 && !slices.Contains(adj[cycle[0]], cycle[1]) {
		slices.Reverse(cycle)
	}
	lo := 0
	for i := range cycle {
		if cycle[i] < cycle[lo] {
			lo = i
		}
	}
	return append(cycle[lo:], cycle[:lo]...)
}

func (v *run) checkCycles() {
	games := v.g.Games()
	order := make([]string, len(games))
	standing := make(map[string]string, len(games))
	for i, n := range games {
		order[i] = n.ID
		standing[n.ID] = n.Standing
	}
	adj := v.gameAdjacency()
	dg, err := dependencyGraph(order, adj)
	if err != nil {
		return
	}
	found, cycles, err := dfs.DetectCycles(dg)
	if err != nil || !found {
		return
	}
	for _, closed := range cycles {
		// цикл из графа зависимостей, в порядке рёбер
		cycle := orient(closed, adj)
		labels := make([]string, len(cycle))
		for i, id := range cycle {
			labels[i] = standing[id]
		}
		v.c.fail(CircularDependency, "", map[string]any{
			"cycle": strings.Join(labels, " -> "),
		}, cycle...)
	}
}

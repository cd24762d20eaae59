package locations

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath/core"

	"route-evaluator/entities"
	"route-evaluator/geo"
)

// DefaultHopMiles is the longest local hop linked in an adjacency graph.
const DefaultHopMiles = 25.0

// Graph links every pair of locations no more than hopMiles apart with an
// undirected edge weighted in hundredths of a mile. Every location becomes a
// vertex, including ones with no neighbor in range.
func Graph(table entities.LocationTable, hopMiles float64) (*core.Graph, error) {
	if math.IsNaN(hopMiles) || hopMiles < 0 {
		return nil, fmt.Errorf("hop radius must be a non-negative number, got %v", hopMiles)
	}

	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := core.NewGraph(core.WithWeighted())
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("add %q: %w", id, err)
		}
	}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			miles := geo.Distance(table[a], table[b])
			if !(miles <= hopMiles) {
				continue
			}
			if _, err := g.AddEdge(a, b, int64(math.Round(miles*100))); err != nil {
				return nil, fmt.Errorf("link %s-%s: %w", a, b, err)
			}
		}
	}
	return g, nil
}

// Adjacency flattens g into {id: {neighbor: miles}} with miles to two
// decimals. Isolated vertices map to an empty set.
func Adjacency(g *core.Graph) (map[string]map[string]float64, error) {
	adj := make(map[string]map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		hops := make(map[string]float64, len(edges))
		for _, e := range edges {
			other := e.To
			if other == id {
				other = e.From
			}
			hops[other] = float64(e.Weight) / 100
		}
		adj[id] = hops
	}
	return adj, nil
}

// WriteGraph encodes the adjacency of g as indented JSON.
func WriteGraph(w io.Writer, g *core.Graph) error {
	adj, err := Adjacency(g)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(adj, "", "  ")
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

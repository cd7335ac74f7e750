package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/unionfind"
)

// Build reduces g to a spanning tree using its current edge weights.
// g is only read; Build is a pure function of its weights and topology.
//
// Steps:
//  1. Validate g != nil.
//  2. Collect edges in discovery (ID) order; each edge appears once.
//  3. Stable-sort ascending by Weight.
//  4. Initialize a union-find over all node IDs.
//  5. Pop edges until the union-find size reaches 1, keeping edges whose
//     endpoints have different representatives.
//
// Complexity: O(E log E). Memory: O(V + E).
func Build(g *gridgraph.GridGraph) (*Tree, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Edges() is already in discovery order.
	work := g.Edges()

	// 3. Stable sort keeps discovery order among equal weights.
	sort.SliceStable(work, func(i, j int) bool {
		return work[i].Weight < work[j].Weight
	})

	// 4. Every node starts as its own component.
	uf := unionfind.New(g.NodeCount())
	t := &Tree{
		graph:   g,
		edges:   make([]int, 0, g.NodeCount()-1),
		weights: make([]int, 0, g.NodeCount()-1),
		member:  make([]bool, g.EdgeCount()),
	}

	// 5. Greedy reduction; stop once one component remains.
	next := 0
	for uf.Size() > 1 {
		if next == len(work) {
			return nil, fmt.Errorf("%w: %d components left after %d edges",
				ErrDisconnected, uf.Size(), len(work))
		}
		e := work[next]
		next++

		same, err := uf.Connected(e.A, e.B)
		if err != nil {
			return nil, fmt.Errorf("kruskal: edge %d: %w", e.ID, err)
		}
		if same {
			t.discarded++
			continue
		}
		if _, err = uf.Union(e.B, e.A); err != nil {
			return nil, fmt.Errorf("kruskal: edge %d: %w", e.ID, err)
		}
		t.edges = append(t.edges, e.ID)
		t.weights = append(t.weights, e.Weight)
		t.member[e.ID] = true
	}

	return t, nil
}

// FromEdges wraps an explicit edge set of g as a Tree without checking any
// invariant; call Verify before trusting it. Weights are read from g now.
// Returns ErrNilGraph or a wrapped gridgraph.ErrEdgeNotFound.
func FromEdges(g *gridgraph.GridGraph, ids []int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	t := &Tree{
		graph:   g,
		edges:   make([]int, 0, len(ids)),
		weights: make([]int, 0, len(ids)),
		member:  make([]bool, g.EdgeCount()),
	}
	for _, id := range ids {
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		t.edges = append(t.edges, id)
		t.weights = append(t.weights, e.Weight)
		t.member[id] = true
	}

	return t, nil
}

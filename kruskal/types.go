package kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/weight"
)

// Sentinel errors for tree construction and verification.
var (
	// ErrNilGraph indicates Build received a nil graph.
	ErrNilGraph = errors.New("kruskal: graph is nil")

	// ErrDisconnected indicates the edge list was exhausted before every node
	// joined one component.
	ErrDisconnected = errors.New("kruskal: graph is disconnected")

	// ErrCycle indicates a tree edge joins two nodes that were already connected.
	ErrCycle = errors.New("kruskal: tree contains a cycle")

	// ErrNotSpanning indicates a tree with the wrong edge count or an untouched node.
	ErrNotSpanning = errors.New("kruskal: tree does not span the graph")
)

// Tree is the spanning-tree subset of a GridGraph's edges ("connections").
// It records edges in selection order and offers O(1) membership checks.
type Tree struct {
	graph     *gridgraph.GridGraph
	edges     []int  // selection order
	weights   []int  // weight of edges[i] at build time
	member    []bool // indexed by edge ID
	discarded int    // cycle-closing edges skipped during Build
}

// Graph returns the grid the tree was built from.
func (t *Tree) Graph() *gridgraph.GridGraph {
	return t.graph
}

// Len returns the number of tree edges.
func (t *Tree) Len() int {
	return len(t.edges)
}

// Edges returns the tree's edge IDs in selection order.
func (t *Tree) Edges() []int {
	return append([]int(nil), t.edges...)
}

// Contains reports whether edge id is part of the tree.
func (t *Tree) Contains(id int) bool {
	return id >= 0 && id < len(t.member) && t.member[id]
}

// Discarded returns how many cycle-closing edges Build skipped.
func (t *Tree) Discarded() int {
	return t.discarded
}

// TotalWeight sums the tree edge weights as they were when the tree was built.
func (t *Tree) TotalWeight() int64 {
	var total int64
	for _, w := range t.weights {
		total += int64(w)
	}

	return total
}

// Neighbors returns the nodes joined to id by a tree edge, in the order of
// id's incident edges.
func (t *Tree) Neighbors(id int) ([]int, error) {
	incident, err := t.graph.IncidentEdges(id)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(incident))
	for _, eid := range incident {
		if !t.member[eid] {
			continue
		}
		e, _ := t.graph.Edge(eid)
		out = append(out, e.Other(id))
	}

	return out, nil
}

// Degree returns the number of tree edges touching id.
func (t *Tree) Degree(id int) (int, error) {
	nbs, err := t.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbs), nil
}

// OrientationCounts returns how many tree edges are row-steps and column-steps.
func (t *Tree) OrientationCounts() (rowSteps, colSteps int) {
	for _, eid := range t.edges {
		e, _ := t.graph.Edge(eid)
		if e.Orientation() == weight.ColStep {
			colSteps++
		} else {
			rowSteps++
		}
	}

	return rowSteps, colSteps
}

// String summarizes the tree for logs.
func (t *Tree) String() string {
	return fmt.Sprintf("kruskal.Tree{%d×%d, edges=%d, discarded=%d}",
		t.graph.Width, t.graph.Height, len(t.edges), t.discarded)
}

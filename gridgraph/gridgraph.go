package gridgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/weight"
)

// New constructs a width×height GridGraph.
// Nodes are created row-major; for each cell the down-edge (if a row below
// exists) is emitted before the right-edge (if a column to the right exists).
// Initial weights are drawn from the configured policy and source.
// Returns ErrInvalidDimension if width < 1 or height < 1; no partial graph.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := width * height
	gg := &GridGraph{
		Width:  width,
		Height: height,
		nodes:  make([]Node, n),
		edges:  make([]Edge, 0, 2*n-width-height),
		policy: o.Policy,
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			id := gg.Index(r, c)
			gg.nodes[id] = Node{ID: id, Row: r, Col: c, Edges: make([]int, 0, 4)}
		}
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			u := gg.Index(r, c)
			if r+1 < height {
				gg.link(u, gg.Index(r+1, c), weight.RowStep, o.Policy, o.Rand)
			}
			if c+1 < width {
				gg.link(u, gg.Index(r, c+1), weight.ColStep, o.Policy, o.Rand)
			}
		}
	}

	return gg, nil
}

// link appends a new edge a–b and registers it on both endpoints.
func (gg *GridGraph) link(a, b int, o weight.Orientation, p weight.Policy, rng *rand.Rand) {
	id := len(gg.edges)
	gg.edges = append(gg.edges, Edge{ID: id, A: a, B: b, Weight: p.Draw(o, rng), orient: o})
	gg.nodes[a].Edges = append(gg.nodes[a].Edges, id)
	gg.nodes[b].Edges = append(gg.nodes[b].Edges, id)
}

// Policy returns the policy of the most recent weight assignment.
func (gg *GridGraph) Policy() weight.Policy {
	return gg.policy
}

// NodeCount returns W×H.
func (gg *GridGraph) NodeCount() int {
	return len(gg.nodes)
}

// EdgeCount returns 2·W·H − W − H.
func (gg *GridGraph) EdgeCount() int {
	return len(gg.edges)
}

// HasNode reports whether id names a node of this grid.
func (gg *GridGraph) HasNode(id int) bool {
	return id >= 0 && id < len(gg.nodes)
}

// Node returns a copy of node id.
func (gg *GridGraph) Node(id int) (Node, error) {
	if !gg.HasNode(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n := gg.nodes[id]
	n.Edges = append([]int(nil), n.Edges...)

	return n, nil
}

// NodeAt returns a copy of the node at (row, col).
func (gg *GridGraph) NodeAt(row, col int) (Node, error) {
	if !gg.InBounds(row, col) {
		return Node{}, fmt.Errorf("%w: (%d,%d)", ErrNodeNotFound, row, col)
	}

	return gg.Node(gg.Index(row, col))
}

// Nodes returns copies of all nodes in row-major order.
func (gg *GridGraph) Nodes() []Node {
	out := make([]Node, len(gg.nodes))
	for i := range gg.nodes {
		out[i], _ = gg.Node(i)
	}

	return out
}

// IncidentEdges returns the IDs of edges touching node id, in creation order.
// The returned slice is owned by the graph and must not be modified.
func (gg *GridGraph) IncidentEdges(id int) ([]int, error) {
	if !gg.HasNode(id) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return gg.nodes[id].Edges, nil
}

// Edge returns a copy of edge id.
func (gg *GridGraph) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(gg.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return gg.edges[id], nil
}

// Edges returns copies of all edges in discovery (ID) order.
func (gg *GridGraph) Edges() []Edge {
	return append([]Edge(nil), gg.edges...)
}

// EdgeBetween returns the edge linking a and b, if they are neighbors.
func (gg *GridGraph) EdgeBetween(a, b int) (Edge, bool) {
	if !gg.HasNode(a) || !gg.HasNode(b) {
		return Edge{}, false
	}
	for _, eid := range gg.nodes[a].Edges {
		if gg.edges[eid].Other(a) == b {
			return gg.edges[eid], true
		}
	}

	return Edge{}, false
}

// Neighbor returns the node one step from id in direction d.
// ok is false when that step leaves the grid.
func (gg *GridGraph) Neighbor(id int, d Direction) (nb int, ok bool) {
	if !gg.HasNode(id) {
		return -1, false
	}
	dr, dc := d.offset()
	if dr == 0 && dc == 0 {
		return -1, false
	}
	r, c := gg.Coordinate(id)
	if !gg.InBounds(r+dr, c+dc) {
		return -1, false
	}

	return gg.Index(r+dr, c+dc), true
}

// SetStatus tags node id with s.
func (gg *GridGraph) SetStatus(id int, s Status) error {
	if !gg.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	gg.nodes[id].Status = s

	return nil
}

// ResetStatus sets every node back to StatusNone.
func (gg *GridGraph) ResetStatus() {
	for i := range gg.nodes {
		gg.nodes[i].Status = StatusNone
	}
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Index maps (row, col) to a row-major node ID: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major node ID back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id int) (row, col int) {
	return id / gg.Width, id % gg.Width
}

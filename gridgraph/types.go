// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/labyrinth.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/weight"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("gridgraph: width and height must be at least 1")
	// ErrNodeNotFound indicates a node ID outside the grid.
	ErrNodeNotFound = errors.New("gridgraph: node not found")
	// ErrEdgeNotFound indicates an edge ID outside the edge list.
	ErrEdgeNotFound = errors.New("gridgraph: edge not found")
)

// Status tags a node's algorithmic role. It carries no rendering data.
type Status int

const (
	// StatusNone is an ordinary, untouched cell.
	StatusNone Status = iota
	// StatusStart marks the search origin.
	StatusStart
	// StatusEnd marks the search target.
	StatusEnd
	// StatusVisited marks a cell reached by a traversal.
	StatusVisited
	// StatusCurrent marks the cell an interactive walker stands on.
	StatusCurrent
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusStart:
		return "start"
	case StatusEnd:
		return "end"
	case StatusVisited:
		return "visited"
	case StatusCurrent:
		return "current"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Direction names one of the four axis-aligned neighbors of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// offset returns the (row, col) delta for d.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Cell is a (row, col) coordinate pair.
type Cell struct {
	Row, Col int
}

// Node is a grid cell. Row and Col never change after creation.
// Edges lists incident edge IDs in creation order.
type Node struct {
	ID     int
	Row    int
	Col    int
	Status Status
	Edges  []int
}

// Edge is an undirected, weighted link between two adjacent nodes.
// A and B are endpoint node IDs; A is always the upper/left endpoint.
type Edge struct {
	ID     int
	A, B   int
	Weight int

	orient weight.Orientation
}

// Orientation reports whether the edge spans rows or columns.
func (e Edge) Orientation() weight.Orientation {
	return e.orient
}

// Other returns the endpoint opposite to id, or -1 if id is not an endpoint.
func (e Edge) Other(id int) int {
	switch id {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// GridGraph is a Width×Height grid of nodes with right/down edges.
// Width and Height are fixed at construction and must not be modified.
type GridGraph struct {
	Width, Height int

	nodes  []Node
	edges  []Edge
	policy weight.Policy
}

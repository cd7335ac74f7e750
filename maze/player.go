package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/pathfind"
)

// Player walks the maze one cell at a time through open passages.
type Player struct {
	m     *Maze
	pos   int
	trail []int
}

// NewPlayer clears cell statuses and places a walker on the start cell.
func (m *Maze) NewPlayer() *Player {
	m.ClearStatus()
	p := &Player{m: m, pos: m.start, trail: []int{m.start}}
	p.mark(m.start)

	return p
}

// Move steps one cell in direction d. It returns false, with no error, when
// the step would leave the grid or cross a wall. Returns ErrFinished once the
// end has been reached.
func (p *Player) Move(d gridgraph.Direction) (bool, error) {
	if p.Won() {
		return false, ErrFinished
	}
	g := p.m.graph
	next, ok := g.Neighbor(p.pos, d)
	if !ok {
		return false, nil
	}
	valid, err := pathfind.IsValidMove(p.m.tree, p.pos, next)
	if err != nil {
		return false, fmt.Errorf("maze: move %s: %w", d, err)
	}
	if !valid {
		return false, nil
	}

	if p.pos != p.m.start {
		_ = g.SetStatus(p.pos, gridgraph.StatusVisited)
	}
	p.pos = next
	p.trail = append(p.trail, next)
	p.mark(next)

	return true, nil
}

// mark tags id as the walker's cell unless it is the start or end.
func (p *Player) mark(id int) {
	if id == p.m.start || id == p.m.end {
		return
	}
	_ = p.m.graph.SetStatus(id, gridgraph.StatusCurrent)
}

// Position returns the walker's cell.
func (p *Player) Position() gridgraph.Cell {
	r, c := p.m.graph.Coordinate(p.pos)

	return gridgraph.Cell{Row: r, Col: c}
}

// Node returns the walker's node ID.
func (p *Player) Node() int { return p.pos }

// Trail returns every cell entered so far, start first.
func (p *Player) Trail() []int {
	return append([]int(nil), p.trail...)
}

// Moves returns the number of successful steps.
func (p *Player) Moves() int { return len(p.trail) - 1 }

// Won reports whether the walker stands on the end cell.
func (p *Player) Won() bool { return p.pos == p.m.end }

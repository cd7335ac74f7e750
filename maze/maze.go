package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/sirupsen/logrus"
)

// Maze is one generated labyrinth plus its most recent search.
// Not safe for concurrent use.
type Maze struct {
	// ID identifies this maze in logs and snapshots. It changes on every
	// rebuild.
	ID uuid.UUID

	graph  *gridgraph.GridGraph
	tree   *kruskal.Tree
	start  int
	end    int
	policy weight.Policy
	rng    *rand.Rand
	log    *logrus.Logger
	obs    Observer
	last   *pathfind.Result
}

// New builds a width×height maze.
// Returns gridgraph.ErrInvalidDimension or ErrInvalidCell (wrapped).
func New(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridgraph.New(width, height, gridgraph.WithPolicy(o.Policy), gridgraph.WithRand(o.Rand))
	if err != nil {
		return nil, err
	}
	start := gridgraph.Cell{Row: 0, Col: 0}
	if o.Start != nil {
		start = *o.Start
	}
	end := gridgraph.Cell{Row: height - 1, Col: width - 1}
	if o.End != nil {
		end = *o.End
	}
	for _, c := range []gridgraph.Cell{start, end} {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrInvalidCell, c.Row, c.Col, width, height)
		}
	}

	m := &Maze{
		graph:  g,
		start:  g.Index(start.Row, start.Col),
		end:    g.Index(end.Row, end.Col),
		policy: o.Policy,
		rng:    o.Rand,
		log:    o.Logger,
		obs:    o.Observer,
	}
	if err = m.build(); err != nil {
		return nil, err
	}

	return m, nil
}

// build reduces the current weights to a tree and resets per-run state.
func (m *Maze) build() error {
	began := time.Now()
	tree, err := kruskal.Build(m.graph)
	if err != nil {
		return fmt.Errorf("maze: build tree: %w", err)
	}
	took := time.Since(began)

	m.ID = uuid.New()
	m.tree = tree
	m.last = nil
	m.ClearStatus()
	m.obs.MazeGenerated(m.policy, tree.Discarded(), took)

	rows, cols := tree.OrientationCounts()
	m.log.WithFields(logrus.Fields{
		"maze_id":   m.ID.String(),
		"size":      fmt.Sprintf("%dx%d", m.graph.Width, m.graph.Height),
		"policy":    m.policy.String(),
		"edges":     tree.Len(),
		"discarded": tree.Discarded(),
		"row_steps": rows,
		"col_steps": cols,
		"took":      took,
	}).Debug("maze generated")

	return nil
}

// Regenerate redraws every weight with the current policy and rebuilds the tree.
func (m *Maze) Regenerate() error {
	m.graph.RandomizeEdgeWeights(m.policy, m.rng)

	return m.build()
}

// SetPolicy switches the weight policy and regenerates.
func (m *Maze) SetPolicy(p weight.Policy) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", weight.ErrUnknownPolicy, int(p))
	}
	m.policy = p

	return m.Regenerate()
}

// Solve searches from start to end in mode m, marking every visited cell
// other than start with StatusVisited. The result is kept as LastResult.
func (m *Maze) Solve(mode pathfind.Mode) (*pathfind.Result, error) {
	m.ClearStatus()
	res, err := pathfind.Find(m.tree, m.start, m.end,
		pathfind.WithMode(mode),
		pathfind.WithOnVisit(func(id int) {
			if id != m.start {
				_ = m.graph.SetStatus(id, gridgraph.StatusVisited)
			}
		}),
	)
	if res != nil {
		m.last = res
		m.obs.Solved(mode, res.State, len(res.Visited))
	}
	entry := m.log.WithFields(logrus.Fields{
		"maze_id": m.ID.String(),
		"mode":    mode.String(),
	})
	if err != nil {
		entry.WithError(err).Error("solve failed")
		return res, err
	}
	entry.WithFields(logrus.Fields{
		"visited": len(res.Visited),
		"route":   len(res.Route),
		"steps":   res.Steps,
	}).Info("maze solved")

	return res, nil
}

// ClearStatus resets every cell and re-marks start and end.
func (m *Maze) ClearStatus() {
	m.graph.ResetStatus()
	_ = m.graph.SetStatus(m.start, gridgraph.StatusStart)
	_ = m.graph.SetStatus(m.end, gridgraph.StatusEnd)
}

// IsValidMove reports whether the cells a and b are joined by an open passage.
func (m *Maze) IsValidMove(a, b gridgraph.Cell) (bool, error) {
	if !m.graph.InBounds(a.Row, a.Col) || !m.graph.InBounds(b.Row, b.Col) {
		return false, fmt.Errorf("%w: (%d,%d)→(%d,%d)", ErrInvalidCell, a.Row, a.Col, b.Row, b.Col)
	}

	return pathfind.IsValidMove(m.tree, m.graph.Index(a.Row, a.Col), m.graph.Index(b.Row, b.Col))
}

// Graph returns the underlying grid.
func (m *Maze) Graph() *gridgraph.GridGraph { return m.graph }

// Tree returns the current spanning tree.
func (m *Maze) Tree() *kruskal.Tree { return m.tree }

// Start returns the start node ID.
func (m *Maze) Start() int { return m.start }

// End returns the end node ID.
func (m *Maze) End() int { return m.end }

// Width returns the number of columns.
func (m *Maze) Width() int { return m.graph.Width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.graph.Height }

// Policy returns the active weight policy.
func (m *Maze) Policy() weight.Policy { return m.policy }

// LastResult returns the most recent search result, or nil if none ran since
// the last build.
func (m *Maze) LastResult() *pathfind.Result { return m.last }

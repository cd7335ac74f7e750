package pathfind

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/labyrinth/kruskal"
)

// walker encapsulates mutable search state.
type walker struct {
	tree       *kruskal.Tree
	opts       Options
	frontier   *list.List
	inFrontier []bool
	seen       []bool
	res        *Result
}

// Find searches t from start to end and returns the visitation sequence and
// the route. On ErrUnreachable the partial Result (State == Exhausted) is
// returned alongside the error.
// Complexity: O(V) time and memory.
func Find(t *kruskal.Tree, start, end int, opts ...Option) (*Result, error) {
	if t == nil || t.Graph() == nil {
		return nil, ErrNilTree
	}
	g := t.Graph()
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d", ErrUnknownNode, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %d", ErrUnknownNode, end)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NodeCount()
	w := &walker{
		tree:       t,
		opts:       o,
		frontier:   list.New(),
		inFrontier: make([]bool, n),
		seen:       make([]bool, n),
		res: &Result{
			Mode:        o.Mode,
			State:       Exploring,
			Start:       start,
			End:         end,
			Visited:     make([]int, 0, n),
			Predecessor: make(map[int]int, n),
		},
	}
	w.res.Predecessor[start] = start
	w.push(start, start)

	if err := w.loop(); err != nil {
		return w.res, err
	}
	route, err := w.res.PathTo(end)
	if err != nil {
		return w.res, err
	}
	w.res.Route = route

	return w.res, nil
}

// loop pops the frontier until end is found or nothing is left.
func (w *walker) loop() error {
	for w.frontier.Len() > 0 {
		front := w.frontier.Front()
		cur := w.frontier.Remove(front).(int)
		w.inFrontier[cur] = false
		w.res.Steps++

		if cur == w.res.End {
			w.res.State = Found
			return nil
		}
		if w.seen[cur] {
			continue
		}
		if err := w.expand(cur); err != nil {
			return err
		}
		w.seen[cur] = true
		w.res.Visited = append(w.res.Visited, cur)
		w.opts.OnVisit(cur)
	}
	w.res.State = Exhausted

	return fmt.Errorf("%w: %d → %d after %d steps", ErrUnreachable, w.res.Start, w.res.End, w.res.Steps)
}

// expand pushes every unseen tree neighbor of cur that is not already waiting.
func (w *walker) expand(cur int) error {
	nbs, err := w.tree.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownNode, err)
	}
	for _, next := range nbs {
		if w.seen[next] || w.inFrontier[next] {
			continue
		}
		w.res.Predecessor[next] = cur
		w.push(next, cur)
	}

	return nil
}

// push inserts id at the front (depth-first) or back (breadth-first).
func (w *walker) push(id, from int) {
	if w.opts.Mode == DepthFirst {
		w.frontier.PushFront(id)
	} else {
		w.frontier.PushBack(id)
	}
	w.inFrontier[id] = true
	w.opts.OnEnqueue(id, from)
}

// IsValidMove reports whether candidate is joined to node by a tree edge.
// It performs no traversal. Returns ErrUnknownNode if either ID is outside
// the grid.
func IsValidMove(t *kruskal.Tree, node, candidate int) (bool, error) {
	if t == nil || t.Graph() == nil {
		return false, ErrNilTree
	}
	g := t.Graph()
	if !g.HasNode(node) {
		return false, fmt.Errorf("%w: %d", ErrUnknownNode, node)
	}
	if !g.HasNode(candidate) {
		return false, fmt.Errorf("%w: %d", ErrUnknownNode, candidate)
	}
	e, ok := g.EdgeBetween(node, candidate)
	if !ok {
		return false, nil
	}

	return t.Contains(e.ID), nil
}

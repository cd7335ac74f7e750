package pathfind

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for route search.
var (
	// ErrNilTree is returned when Find or IsValidMove receives a nil tree.
	ErrNilTree = errors.New("pathfind: tree is nil")

	// ErrUnknownNode is returned when a node ID is not part of the tree's grid.
	ErrUnknownNode = errors.New("pathfind: unknown node")

	// ErrUnreachable is returned when the frontier empties before end is
	// popped. The tree is not spanning if this happens.
	ErrUnreachable = errors.New("pathfind: end unreachable, tree invariant violated")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("pathfind: unknown traversal mode")
)

// Mode selects the frontier discipline.
type Mode int

const (
	// BreadthFirst appends discovered nodes to the back of the frontier.
	BreadthFirst Mode = iota
	// DepthFirst pushes discovered nodes onto the front of the frontier.
	DepthFirst
)

// Modes lists every traversal mode.
var Modes = []Mode{BreadthFirst, DepthFirst}

// String returns the canonical lower-case name.
func (m Mode) String() string {
	switch m {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Short returns "bfs" or "dfs", used as a metrics label.
func (m Mode) Short() string {
	if m == DepthFirst {
		return "dfs"
	}

	return "bfs"
}

// ParseMode maps a name to a Mode. Empty input yields BreadthFirst.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfs", "breadth-first", "breadth":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depth":
		return DepthFirst, nil
	default:
		return BreadthFirst, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// State is the search state machine: Exploring → Found | Exhausted.
type State int

const (
	// Exploring is the initial state while the frontier is non-empty.
	Exploring State = iota
	// Found means end was popped from the frontier.
	Found
	// Exhausted means the frontier emptied first.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Exploring:
		return "exploring"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures Find via functional arguments.
type Option func(*Options)

// Options holds the traversal mode and observation hooks.
type Options struct {
	// Mode selects breadth-first or depth-first order.
	Mode Mode

	// OnVisit is called once per node added to the visitation sequence.
	OnVisit func(id int)

	// OnEnqueue is called when id enters the frontier, discovered from "from".
	// The start node is reported with from == id.
	OnEnqueue func(id, from int)
}

// DefaultOptions returns BreadthFirst with no-op hooks.
func DefaultOptions() Options {
	return Options{
		Mode:      BreadthFirst,
		OnVisit:   func(int) {},
		OnEnqueue: func(int, int) {},
	}
}

// WithMode sets the traversal mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithOnVisit registers a visit hook. A nil fn is ignored.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a frontier hook. A nil fn is ignored.
func WithOnEnqueue(fn func(id, from int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// Result is the outcome of one Find call.
//   - Visited: nodes expanded before end was popped, in discovery order.
//     The end node is never included.
//   - Route: start..end inclusive, rebuilt from Predecessor.
//   - Predecessor: node → the node it was discovered from; start maps to itself.
//   - Steps: frontier pops performed, including the final pop of end.
type Result struct {
	Mode        Mode
	State       State
	Start, End  int
	Visited     []int
	Route       []int
	Predecessor map[int]int
	Steps       int
}

// MostRecentFirst returns the visitation sequence newest first, the order
// produced by prepending each visited node.
func (r *Result) MostRecentFirst() []int {
	out := make([]int, len(r.Visited))
	for i, id := range r.Visited {
		out[len(out)-1-i] = id
	}

	return out
}

// PathTo rebuilds the route from the search start to dest by walking
// predecessor links. Returns ErrUnknownNode if dest was never discovered.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Predecessor[dest]; !ok {
		return nil, fmt.Errorf("%w: %d was not discovered", ErrUnknownNode, dest)
	}
	var rev []int
	for cur := dest; ; {
		rev = append(rev, cur)
		prev := r.Predecessor[cur]
		if prev == cur {
			break
		}
		cur = prev
	}
	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}

// Depth returns the number of tree edges between the search start and id.
func (r *Result) Depth(id int) (int, error) {
	p, err := r.PathTo(id)
	if err != nil {
		return 0, err
	}

	return len(p) - 1, nil
}

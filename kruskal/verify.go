package kruskal

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Verify re-checks the spanning-tree invariants of t with an independent
// disjoint-set pass: exactly V−1 edges, no edge joining two already-connected
// nodes, and a single component at the end.
// Returns ErrNotSpanning or ErrCycle (wrapped) on violation.
// Complexity: O(V + E·α(V)).
func Verify(t *Tree) error {
	if t == nil || t.graph == nil {
		return ErrNilGraph
	}
	g := t.graph
	n := g.NodeCount()
	if len(t.edges) != n-1 {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrNotSpanning, len(t.edges), n)
	}

	sets := make([]*disjoint.Element, n)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	components := n
	for _, eid := range t.edges {
		e, err := g.Edge(eid)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotSpanning, err)
		}
		if sets[e.A].Find() == sets[e.B].Find() {
			return fmt.Errorf("%w: edge %d (%d–%d)", ErrCycle, e.ID, e.A, e.B)
		}
		disjoint.Union(sets[e.A], sets[e.B])
		components--
	}
	if components != 1 {
		return fmt.Errorf("%w: %d components", ErrNotSpanning, components)
	}

	return nil
}

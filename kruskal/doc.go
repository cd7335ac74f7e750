// Package kruskal reduces a weighted maze grid to a spanning tree with a
// randomized Kruskal pass. The tree's edges are the maze's open passages;
// every other grid edge is a wall.
//
// What & Why
//
//   - Randomness lives entirely in the edge weights (package weight). Given
//     fixed weights the reduction is deterministic.
//   - A perfect maze is a spanning tree: exactly one simple route joins any
//     two cells, which is what the path finder relies on.
//
// Algorithm
//
//  1. Collect every grid edge once, in discovery order: row-major by node and,
//     per node, its row-step edge before its column-step edge.
//  2. sort.SliceStable ascending by weight, so ties keep discovery order.
//  3. Pop the lightest edge. If both endpoints already share a union-find
//     representative it would close a cycle and is discarded; otherwise it
//     joins the tree and its endpoints are unioned.
//  4. Stop as soon as the union-find reports a single component. The rest of
//     the sorted list is never examined.
//
// Complexity
//
//   - Time:   O(E log E) for the sort, plus near-linear union-find work.
//   - Memory: O(V + E).
//
// Invariants of the returned Tree
//
//   - exactly V − 1 edges (W·H − 1);
//   - every node is touched (for V > 1);
//   - no cycle.
//
// Verify re-checks these with an independent disjoint-set implementation.
//
// Errors
//
//   - ErrNilGraph:     Build was given a nil graph.
//   - ErrDisconnected: edges ran out before one component remained.
//   - ErrCycle, ErrNotSpanning: returned by Verify on a broken tree.
package kruskal

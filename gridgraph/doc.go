// Package gridgraph builds the weighted grid graph a maze is carved from.
//
// What:
//
//   - GridGraph owns Width×Height nodes and every axis-aligned edge between
//     neighbors: exactly 2·W·H − W − H edges, no diagonals, no wraparound.
//   - Nodes and edges live in flat slices indexed by integer ID. Node IDs are
//     row-major (row*Width + col); edges store endpoint IDs, never pointers.
//   - Each node keeps its incident edge IDs in creation order and a Status tag
//     (none/start/end/visited/current) for external renderers.
//   - Edge weights come from a weight.Policy and an injected *rand.Rand, both at
//     construction and on RandomizeEdgeWeights.
//
// Determinism:
//
//   - Nodes are created row-major.
//   - For each cell the down-edge is emitted before the right-edge, so edge IDs
//     follow the discovery order the spanning-tree builder relies on.
//   - Weights are reproducible for a fixed seed (WithSeed / WithRand).
//
// Complexity:
//
//   - New:                  O(W×H) time and memory.
//   - RandomizeEdgeWeights: O(E), E = 2·W·H − W − H.
//   - Node/Edge lookups:    O(1).
//
// Errors:
//
//   - ErrInvalidDimension: width < 1 or height < 1.
//   - ErrNodeNotFound:     node ID outside the grid.
//   - ErrEdgeNotFound:     edge ID outside the edge list.
package gridgraph

// Package labyrinth generates perfect mazes on rectangular grids and searches
// them for the route between two cells.
//
// 🚀 What is labyrinth?
//
//	A small pipeline of focused packages:
//		• weight     – three weight policies: uniform, horizontal, vertical bias
//		• gridgraph  – the W×H grid graph with right and down edges only
//		• unionfind  – disjoint sets over node IDs
//		• kruskal    – randomized Kruskal: the grid reduced to a spanning tree
//		• pathfind   – breadth-first or depth-first search over the tree
//		• maze       – one maze lifecycle: build, solve, play, regenerate
//		• render     – box-text pictures and reveal frames
//
// ✨ Why a spanning tree?
//
//   - Every cell is reachable and exactly one simple route joins any two cells.
//   - Random weights pick which walls fall; biased weights stretch corridors
//     along one axis.
//   - Searching only tree edges makes the route unique, so breadth-first and
//     depth-first differ only in the order cells are explored.
//
// Quick ASCII example (3×2, solved breadth-first):
//
//	+---+---+---+
//	| S   *   * |
//	+   +   +   +
//	| . | . | E |
//	+---+---+---+
//
// The labyrinth command wraps it all: generate, solve, frames, play, stats
// and serve.
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth

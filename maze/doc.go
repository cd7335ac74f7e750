// Package maze wires the core packages into one maze lifecycle: build a
// weighted grid, reduce it to a spanning tree, mark start and end, and search
// or walk the result.
//
// A Maze owns its grid, tree and random source exclusively. Regenerate and
// SetPolicy replace the tree wholesale; nothing is merged with a prior run.
//
// Player is the interactive walker: each Move is gated by
// pathfind.IsValidMove, so it can only pass through open passages.
//
// Session is the outer state machine a driver (keyboard loop, HTTP handler,
// CLI) steps through explicit commands:
//
//	Idle ──Search──▶ Searching ──▶ Solved
//	  │  ──Play────▶ PlayerControlled ──Move (reach end)──▶ Solved
//	  └─ Regenerate / SetPolicy ─▶ Generating ──▶ Idle
//
// Metrics and logs are reported through Observer and a logrus logger; the core
// packages below stay silent.
package maze

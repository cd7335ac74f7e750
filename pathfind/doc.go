// Package pathfind searches a spanning tree produced by kruskal.Build for the
// route between two cells, in breadth-first or depth-first order.
//
// What:
//
//	Find walks only tree edges ("connections") from start until it pops end.
//	The frontier is a single deque: breadth-first inserts discovered nodes at
//	the back, depth-first at the front, and both pop from the front. That one
//	switch is the whole difference between FIFO and LIFO order.
//
//	A Result carries the visitation sequence (for a renderer to reveal cell by
//	cell), the predecessor map filled during the walk, and the route rebuilt
//	from that map, start..end inclusive.
//
// Why:
//
//   - On a tree exactly one simple route exists between any two nodes, so the
//     route is the same in both modes; only the exploration order differs.
//   - Breadth-first visits nodes in non-decreasing tree distance from start;
//     depth-first exhausts one branch before backtracking.
//
// Complexity:
//
//   - Time O(V), memory O(V): every tree edge is examined at most twice.
//
// Errors:
//
//   - ErrNilTree       if the tree is nil.
//   - ErrUnknownNode   if start, end or a move candidate is outside the grid.
//   - ErrUnreachable   if the frontier empties before end is reached. On a
//     valid spanning tree this cannot happen, so it signals a broken tree.
//   - ErrUnknownMode   from ParseMode for unrecognised names.
//
// IsValidMove is the companion query used by interactive play: it reports
// whether candidate is one tree edge away from node, without traversal.
package pathfind

// Package unionfind provides a disjoint-set (union-find) structure over
// dense integer element IDs, as used by the maze spanning-tree builder.
//
// What:
//
//   - New(n) registers elements 0..n-1, each as its own representative.
//   - Find follows the representative chain to its fixed point.
//   - Union(a, b) points the root of a at the root of b.
//   - Size reports the number of distinct representatives in O(1).
//
// Directionality:
//
//	Union is not symmetric in which root survives: after Union(a, b) the
//	surviving root is the pre-union Find(b). Callers that only compare
//	Find results never observe the difference.
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  amortized O(log n) with path halving.
//   - Union: two Finds plus O(1).
//   - Size:  O(1), a counter maintained by Union.
//
// Errors:
//
//   - ErrUnknownElement: an ID outside 0..n-1 was passed to Find or Union.
package unionfind

package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates an element ID that was never registered.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// UnionFind tracks a partition of the elements 0..n-1.
// The zero value holds no elements; use New.
type UnionFind struct {
	parent []int // parent[x] == x marks a representative
	roots  int   // number of distinct representatives
}

// New registers n elements, each as its own representative (makeSet).
// A negative n is treated as zero.
// Complexity: O(n).
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{parent: parent, roots: n}
}

// Len returns the number of registered elements.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Find returns the representative of x, following the chain until an
// element that maps to itself. Path halving shortens the chain but never
// changes which root it resolves to.
func (u *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(u.parent) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownElement, x)
	}
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x, nil
}

// Union sets the representative of Find(a) to Find(b).
// It reports whether two previously distinct components were merged;
// Size drops by exactly one in that case and is unchanged otherwise.
func (u *UnionFind) Union(a, b int) (bool, error) {
	ra, err := u.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := u.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}
	u.parent[ra] = rb
	u.roots--

	return true, nil
}

// Connected reports whether a and b share a representative.
func (u *UnionFind) Connected(a, b int) (bool, error) {
	ra, err := u.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := u.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Size returns the number of distinct representatives.
func (u *UnionFind) Size() int {
	return u.roots
}

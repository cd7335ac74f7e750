package pathfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree returns the spanning tree of a seeded w×h grid.
func buildTree(t testing.TB, w, h int, seed int64) *kruskal.Tree {
	t.Helper()
	g, err := gridgraph.New(w, h, gridgraph.WithSeed(seed))
	require.NoError(t, err)
	tree, err := kruskal.Build(g)
	require.NoError(t, err)

	return tree
}

// assertRoute checks that route runs start..end along tree edges with no repeats.
func assertRoute(t *testing.T, tree *kruskal.Tree, route []int, start, end int) {
	t.Helper()
	require.NotEmpty(t, route)
	assert.Equal(t, start, route[0])
	assert.Equal(t, end, route[len(route)-1])
	seen := make(map[int]bool, len(route))
	for i, id := range route {
		assert.False(t, seen[id], "node %d repeated", id)
		seen[id] = true
		if i == 0 {
			continue
		}
		ok, err := pathfind.IsValidMove(tree, route[i-1], id)
		require.NoError(t, err)
		assert.True(t, ok, "step %d→%d is not a tree edge", route[i-1], id)
	}
}

// TestFind_Errors covers nil tree and unknown endpoints.
func TestFind_Errors(t *testing.T) {
	_, err := pathfind.Find(nil, 0, 0)
	assert.ErrorIs(t, err, pathfind.ErrNilTree)

	tree := buildTree(t, 3, 3, 1)
	_, err = pathfind.Find(tree, -1, 0)
	assert.ErrorIs(t, err, pathfind.ErrUnknownNode)
	_, err = pathfind.Find(tree, 0, 9)
	assert.ErrorIs(t, err, pathfind.ErrUnknownNode)
}

// TestFind_SingleCell reaches Found immediately with nothing visited.
func TestFind_SingleCell(t *testing.T) {
	tree := buildTree(t, 1, 1, 1)
	for _, m := range pathfind.Modes {
		res, err := pathfind.Find(tree, 0, 0, pathfind.WithMode(m))
		require.NoError(t, err)
		assert.Equal(t, pathfind.Found, res.State)
		assert.Empty(t, res.Visited)
		assert.Equal(t, []int{0}, res.Route)
		assert.Equal(t, 1, res.Steps)
	}
}

// TestFind_ThreeByOne visits n0 and n1 and reaches n2 on the next pop.
func TestFind_ThreeByOne(t *testing.T) {
	tree := buildTree(t, 3, 1, 3)
	res, err := pathfind.Find(tree, 0, 2, pathfind.WithMode(pathfind.BreadthFirst))
	require.NoError(t, err)
	assert.Equal(t, pathfind.Found, res.State)
	assert.Equal(t, []int{0, 1}, res.Visited)
	assert.Equal(t, []int{1, 0}, res.MostRecentFirst())
	assert.Equal(t, []int{0, 1, 2}, res.Route)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, map[int]int{0: 0, 1: 0, 2: 1}, res.Predecessor)
}

// TestFind_KnownOrders fixes the 3×2 all-zero-weight tree
//
//	0 ─ 1 ─ 2
//	│   │   │
//	3   4   5
//
// and checks both orders from 3 to 5.
func TestFind_KnownOrders(t *testing.T) {
	g, err := gridgraph.New(3, 2, gridgraph.WithZeroWeights())
	require.NoError(t, err)
	tree, err := kruskal.Build(g)
	require.NoError(t, err)

	bfs, err := pathfind.Find(tree, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 4, 2}, bfs.Visited)
	assert.Equal(t, []int{3, 0, 1, 2, 5}, bfs.Route)
	assert.Equal(t, 6, bfs.Steps)

	dfs, err := pathfind.Find(tree, 3, 5, pathfind.WithMode(pathfind.DepthFirst))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 2}, dfs.Visited)
	assert.Equal(t, bfs.Route, dfs.Route)
	assert.Equal(t, 5, dfs.Steps)
}

// TestFind_BreadthFirstDepthOrder checks visited nodes come in non-decreasing
// tree distance from start.
func TestFind_BreadthFirstDepthOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		w, h := 2+rng.Intn(15), 2+rng.Intn(15)
		tree := buildTree(t, w, h, int64(trial))
		n := w * h
		start, end := rng.Intn(n), rng.Intn(n)

		res, err := pathfind.Find(tree, start, end)
		require.NoError(t, err)
		prev := 0
		for _, id := range res.Visited {
			d, err := res.Depth(id)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, prev, "trial %d: node %d", trial, id)
			prev = d
		}
		assertRoute(t, tree, res.Route, start, end)
	}
}

// TestFind_DepthFirstExhaustsBranches replays the visit order against a stack
// of the current branch: every newly visited node must hang off some node on
// that branch, and once the walk leaves a node it never returns below it.
func TestFind_DepthFirstExhaustsBranches(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for trial := 0; trial < 30; trial++ {
		w, h := 2+rng.Intn(15), 2+rng.Intn(15)
		tree := buildTree(t, w, h, int64(100+trial))
		n := w * h
		start, end := rng.Intn(n), rng.Intn(n)

		res, err := pathfind.Find(tree, start, end, pathfind.WithMode(pathfind.DepthFirst))
		require.NoError(t, err)
		if len(res.Visited) == 0 {
			continue
		}
		require.Equal(t, start, res.Visited[0])

		branch := []int{start}
		for _, id := range res.Visited[1:] {
			parent := res.Predecessor[id]
			for len(branch) > 0 && branch[len(branch)-1] != parent {
				branch = branch[:len(branch)-1]
			}
			require.NotEmpty(t, branch, "trial %d: %d's parent %d is off the branch", trial, id, parent)
			branch = append(branch, id)
		}
		assertRoute(t, tree, res.Route, start, end)
	}
}

// TestFind_ModesAgreeOnRoute: a tree has one simple route between two nodes.
func TestFind_ModesAgreeOnRoute(t *testing.T) {
	tree := buildTree(t, 20, 20, 5)
	for _, pair := range [][2]int{{0, 399}, {19, 380}, {210, 37}, {7, 7}} {
		bfs, err := pathfind.Find(tree, pair[0], pair[1])
		require.NoError(t, err)
		dfs, err := pathfind.Find(tree, pair[0], pair[1], pathfind.WithMode(pathfind.DepthFirst))
		require.NoError(t, err)
		assert.Equal(t, bfs.Route, dfs.Route, "pair %v", pair)
	}
}

// TestFind_EndExcludedFromVisited keeps end out of the visitation sequence.
func TestFind_EndExcludedFromVisited(t *testing.T) {
	tree := buildTree(t, 8, 8, 9)
	for _, m := range pathfind.Modes {
		res, err := pathfind.Find(tree, 0, 63, pathfind.WithMode(m))
		require.NoError(t, err)
		assert.NotContains(t, res.Visited, 63)
		assert.Contains(t, res.Visited, 0)
	}
}

// TestFind_Hooks records visit and enqueue callbacks.
func TestFind_Hooks(t *testing.T) {
	tree := buildTree(t, 3, 1, 4)
	var visits []int
	var enq [][2]int
	res, err := pathfind.Find(tree, 0, 2,
		pathfind.WithOnVisit(func(id int) { visits = append(visits, id) }),
		pathfind.WithOnEnqueue(func(id, from int) { enq = append(enq, [2]int{id, from}) }),
		pathfind.WithOnVisit(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Visited, visits)
	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 1}}, enq)
}

// TestFind_Unreachable surfaces a broken tree as ErrUnreachable with the
// partial result.
func TestFind_Unreachable(t *testing.T) {
	g, err := gridgraph.New(3, 1, gridgraph.WithZeroWeights())
	require.NoError(t, err)
	broken, err := kruskal.FromEdges(g, []int{0}) // 0-1 only, node 2 cut off
	require.NoError(t, err)

	res, err := pathfind.Find(broken, 0, 2)
	assert.ErrorIs(t, err, pathfind.ErrUnreachable)
	require.NotNil(t, res)
	assert.Equal(t, pathfind.Exhausted, res.State)
	assert.Equal(t, []int{0, 1}, res.Visited)
	assert.Nil(t, res.Route)
}

// TestIsValidMove checks membership against tree and grid adjacency.
func TestIsValidMove(t *testing.T) {
	g, err := gridgraph.New(2, 2, gridgraph.WithZeroWeights())
	require.NoError(t, err)
	tree, err := kruskal.Build(g) // edges 0-2, 0-1, 1-3
	require.NoError(t, err)

	cases := []struct {
		node, cand int
		want       bool
	}{
		{0, 2, true},
		{2, 0, true},
		{0, 1, true},
		{1, 3, true},
		{2, 3, false}, // grid neighbors, wall between them
		{0, 3, false}, // not adjacent
		{0, 0, false},
	}
	for _, tc := range cases {
		got, err := pathfind.IsValidMove(tree, tc.node, tc.cand)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, fmt.Sprintf("%d→%d", tc.node, tc.cand))
	}

	_, err = pathfind.IsValidMove(tree, 0, 4)
	assert.ErrorIs(t, err, pathfind.ErrUnknownNode)
	_, err = pathfind.IsValidMove(nil, 0, 1)
	assert.ErrorIs(t, err, pathfind.ErrNilTree)
}

// TestParseMode accepts aliases and rejects junk.
func TestParseMode(t *testing.T) {
	for in, want := range map[string]pathfind.Mode{
		"":              pathfind.BreadthFirst,
		"bfs":           pathfind.BreadthFirst,
		"Breadth-First": pathfind.BreadthFirst,
		"dfs":           pathfind.DepthFirst,
		" depth-first ": pathfind.DepthFirst,
	} {
		got, err := pathfind.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := pathfind.ParseMode("astar")
	assert.ErrorIs(t, err, pathfind.ErrUnknownMode)

	assert.Equal(t, "breadth-first", pathfind.BreadthFirst.String())
	assert.Equal(t, "dfs", pathfind.DepthFirst.Short())
	assert.Equal(t, "found", pathfind.Found.String())
}

// TestResult_PathTo rejects undiscovered nodes.
func TestResult_PathTo(t *testing.T) {
	tree := buildTree(t, 3, 1, 1)
	res, err := pathfind.Find(tree, 0, 1)
	require.NoError(t, err)
	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, pathfind.ErrUnknownNode)
	p, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p)
}

// TestFind_WeightPolicyIrrelevantToCorrectness runs both modes over biased trees.
func TestFind_WeightPolicyIrrelevantToCorrectness(t *testing.T) {
	for _, p := range weight.Policies {
		g, err := gridgraph.New(15, 9, gridgraph.WithPolicy(p), gridgraph.WithSeed(21))
		require.NoError(t, err)
		tree, err := kruskal.Build(g)
		require.NoError(t, err)
		for _, m := range pathfind.Modes {
			res, err := pathfind.Find(tree, 0, g.NodeCount()-1, pathfind.WithMode(m))
			require.NoError(t, err, "%s/%s", p, m)
			assertRoute(t, tree, res.Route, 0, g.NodeCount()-1)
		}
	}
}

package gridgraph

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/weight"
)

// RandomizeEdgeWeights redraws every edge weight in place under policy p.
// Topology and edge identities are unchanged. A nil rng zeroes all weights.
// Complexity: O(E).
func (gg *GridGraph) RandomizeEdgeWeights(p weight.Policy, rng *rand.Rand) {
	for i := range gg.edges {
		gg.edges[i].Weight = p.Draw(gg.edges[i].orient, rng)
	}
	gg.policy = p
}

// WeightStats summarizes the current edge weights by orientation.
func (gg *GridGraph) WeightStats() weight.Stats {
	var st weight.Stats
	for _, e := range gg.edges {
		st.Observe(e.orient, e.Weight)
	}

	return st
}

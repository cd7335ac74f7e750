// Package weight assigns random edge weights to maze grid edges under one of
// three bias policies.
//
// Edges are classified by Orientation:
//
//   - RowStep: the endpoints differ by one row (same column), a vertical link.
//   - ColStep: the endpoints differ by one column (same row), a horizontal link.
//
// Policies (half-open integer ranges):
//
//	Policy      RowStep     ColStep
//	Uniform     [0,100)     [0,100)
//	Horizontal  [0,100)     [0,15)
//	Vertical    [0,15)      [0,100)
//
// Kruskal prefers low weights, so the orientation given the narrow range is
// picked first and generated corridors run along that axis.
//
// Determinism:
//
//	Every draw goes through an explicit *rand.Rand. A nil source yields 0 for
//	every edge, which makes tree construction fall back to pure discovery order.
package weight

package weight

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("weight: unknown policy")

// Orientation classifies an edge by the axis it spans.
type Orientation int

const (
	// RowStep links two nodes one row apart in the same column.
	RowStep Orientation = iota
	// ColStep links two nodes one column apart in the same row.
	ColStep
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case RowStep:
		return "row-step"
	case ColStep:
		return "col-step"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Range bounds (exclusive upper limits).
const (
	WideRange   = 100
	NarrowRange = 15
)

// Policy selects how weights are drawn per orientation.
type Policy int

const (
	// Uniform draws every edge from [0, WideRange).
	Uniform Policy = iota
	// Horizontal narrows column-step edges, favoring horizontal corridors.
	Horizontal
	// Vertical narrows row-step edges, favoring vertical corridors.
	Vertical
)

// Policies lists every policy in declaration order.
var Policies = []Policy{Uniform, Horizontal, Vertical}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case Uniform:
		return "uniform"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared policies.
func (p Policy) Valid() bool {
	return p >= Uniform && p <= Vertical
}

// ParsePolicy maps a case-insensitive name to a Policy.
// Accepted: "uniform", "horizontal" (alias "axis-a"), "vertical" (alias "axis-b").
// The empty string selects Uniform.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform", "random":
		return Uniform, nil
	case "horizontal", "axis-a", "h":
		return Horizontal, nil
	case "vertical", "axis-b", "v":
		return Vertical, nil
	default:
		return Uniform, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Range returns the exclusive upper bound of the draw for orientation o.
// Unknown policies behave as Uniform.
func (p Policy) Range(o Orientation) int {
	switch {
	case p == Horizontal && o == ColStep:
		return NarrowRange
	case p == Vertical && o == RowStep:
		return NarrowRange
	default:
		return WideRange
	}
}

// Draw samples a weight in [0, Range(o)) from rng.
// A nil rng yields 0.
// Complexity: O(1).
func (p Policy) Draw(o Orientation, rng *rand.Rand) int {
	if rng == nil {
		return 0
	}

	return rng.Intn(p.Range(o))
}

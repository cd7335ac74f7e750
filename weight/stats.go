package weight

// Sample aggregates observed weights for one orientation.
type Sample struct {
	Count int
	Min   int
	Max   int
	Sum   int
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func (s Sample) Mean() float64 {
	if s.Count == 0 {
		return 0
	}

	return float64(s.Sum) / float64(s.Count)
}

// Stats collects weight samples split by orientation.
// The zero value is ready to use.
type Stats struct {
	RowStep Sample
	ColStep Sample
}

// Observe records weight w for an edge of orientation o.
func (st *Stats) Observe(o Orientation, w int) {
	s := &st.RowStep
	if o == ColStep {
		s = &st.ColStep
	}
	if s.Count == 0 || w < s.Min {
		s.Min = w
	}
	if s.Count == 0 || w > s.Max {
		s.Max = w
	}
	s.Count++
	s.Sum += w
}

// Total returns the number of observations across both orientations.
func (st *Stats) Total() int {
	return st.RowStep.Count + st.ColStep.Count
}

// Merge folds other into st.
func (st *Stats) Merge(other Stats) {
	st.RowStep = st.RowStep.merge(other.RowStep)
	st.ColStep = st.ColStep.merge(other.ColStep)
}

func (s Sample) merge(o Sample) Sample {
	switch {
	case o.Count == 0:
		return s
	case s.Count == 0:
		return o
	}
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Count += o.Count
	s.Sum += o.Sum

	return s
}

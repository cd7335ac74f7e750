package maze

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Coord is a (row, col) pair in exported form.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Passage is one open tree edge.
type Passage struct {
	From   Coord `json:"from" yaml:"from"`
	To     Coord `json:"to" yaml:"to"`
	Weight int   `json:"weight" yaml:"weight"`
}

// SolveRecord summarizes a search.
type SolveRecord struct {
	Mode    string  `json:"mode" yaml:"mode"`
	State   string  `json:"state" yaml:"state"`
	Steps   int     `json:"steps" yaml:"steps"`
	Visited []Coord `json:"visited" yaml:"visited"`
	Route   []Coord `json:"route" yaml:"route"`
}

// Snapshot is a read-only export of a maze for debugging and API responses.
// There is no load path.
type Snapshot struct {
	ID          string       `json:"id" yaml:"id"`
	Width       int          `json:"width" yaml:"width"`
	Height      int          `json:"height" yaml:"height"`
	Policy      string       `json:"policy" yaml:"policy"`
	Start       Coord        `json:"start" yaml:"start"`
	End         Coord        `json:"end" yaml:"end"`
	TotalWeight int64        `json:"total_weight" yaml:"total_weight"`
	Discarded   int          `json:"discarded" yaml:"discarded"`
	Passages    []Passage    `json:"passages" yaml:"passages"`
	Solve       *SolveRecord `json:"solve,omitempty" yaml:"solve,omitempty"`
}

// Snapshot exports the maze and its last search, if any.
func (m *Maze) Snapshot() Snapshot {
	s := Snapshot{
		ID:          m.ID.String(),
		Width:       m.graph.Width,
		Height:      m.graph.Height,
		Policy:      m.policy.String(),
		Start:       m.coord(m.start),
		End:         m.coord(m.end),
		TotalWeight: m.tree.TotalWeight(),
		Discarded:   m.tree.Discarded(),
		Passages:    make([]Passage, 0, m.tree.Len()),
	}
	for _, eid := range m.tree.Edges() {
		e, _ := m.graph.Edge(eid)
		s.Passages = append(s.Passages, Passage{From: m.coord(e.A), To: m.coord(e.B), Weight: e.Weight})
	}
	if r := m.last; r != nil {
		s.Solve = &SolveRecord{
			Mode:    r.Mode.String(),
			State:   r.State.String(),
			Steps:   r.Steps,
			Visited: m.coords(r.Visited),
			Route:   m.coords(r.Route),
		}
	}

	return s
}

func (m *Maze) coord(id int) Coord {
	r, c := m.graph.Coordinate(id)

	return Coord{Row: r, Col: c}
}

func (m *Maze) coords(ids []int) []Coord {
	out := make([]Coord, len(ids))
	for i, id := range ids {
		out[i] = m.coord(id)
	}

	return out
}

// YAML encodes the snapshot as YAML.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// JSON encodes the snapshot as indented JSON.
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

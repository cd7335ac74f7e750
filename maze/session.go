package maze

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/sirupsen/logrus"
)

// SessionState is the driver-level state of a Session.
type SessionState int

const (
	// Idle: a maze is built and nothing runs.
	Idle SessionState = iota
	// Generating: weights are being redrawn and the tree rebuilt.
	Generating
	// Searching: a traversal is running.
	Searching
	// PlayerControlled: moves are routed to the Player.
	PlayerControlled
	// Solved: a search found the end or the player reached it.
	Solved
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Searching:
		return "searching"
	case PlayerControlled:
		return "player-controlled"
	case Solved:
		return "solved"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session drives one Maze through explicit commands.
// It remembers the last search mode and whether play was active, so a
// rebuild re-runs the last action.
type Session struct {
	maze    *Maze
	state   SessionState
	player  *Player
	mode    pathfind.Mode
	playing bool
	onTx    func(from, to SessionState)
}

// NewSession starts an Idle session over m. The remembered mode starts as
// BreadthFirst.
func NewSession(m *Maze) *Session {
	return &Session{
		maze:  m,
		state: Idle,
		mode:  pathfind.BreadthFirst,
		onTx:  func(SessionState, SessionState) {},
	}
}

// OnTransition registers fn to be called on every state change.
func (s *Session) OnTransition(fn func(from, to SessionState)) {
	if fn != nil {
		s.onTx = fn
	}
}

func (s *Session) transition(to SessionState) {
	from := s.state
	s.state = to
	s.maze.log.WithFields(logrus.Fields{
		"maze_id": s.maze.ID.String(),
		"from":    from.String(),
		"to":      to.String(),
	}).Debug("session transition")
	s.onTx(from, to)
}

// State returns the current state.
func (s *Session) State() SessionState { return s.state }

// Maze returns the driven maze.
func (s *Session) Maze() *Maze { return s.maze }

// Player returns the active walker, or nil outside play.
func (s *Session) Player() *Player { return s.player }

// Mode returns the search mode a rebuild re-runs.
func (s *Session) Mode() pathfind.Mode { return s.mode }

// Search runs a traversal and ends in Solved, or back in Idle on failure.
func (s *Session) Search(mode pathfind.Mode) (*pathfind.Result, error) {
	s.player = nil
	s.mode = mode
	s.playing = false
	s.transition(Searching)
	res, err := s.maze.Solve(mode)
	if err != nil {
		s.transition(Idle)
		return res, err
	}
	s.transition(Solved)

	return res, nil
}

// Play hands control to a fresh Player on the start cell. When start and
// end coincide the player has already won and the session goes to Solved.
func (s *Session) Play() *Player {
	s.player = s.maze.NewPlayer()
	s.playing = true
	if s.player.Won() {
		s.transition(Solved)
		return s.player
	}
	s.transition(PlayerControlled)

	return s.player
}

// Move forwards a step to the player. Reaching the end moves the session to
// Solved. Returns ErrNotPlaying outside PlayerControlled.
func (s *Session) Move(d gridgraph.Direction) (bool, error) {
	if s.state != PlayerControlled || s.player == nil {
		return false, fmt.Errorf("%w: state %s", ErrNotPlaying, s.state)
	}
	moved, err := s.player.Move(d)
	if err != nil {
		return false, err
	}
	if s.player.Won() {
		s.transition(Solved)
	}

	return moved, nil
}

// Regenerate rebuilds the maze with its current policy, then re-runs the
// last action: a fresh Player if play was active, otherwise a search in the
// remembered mode. On a failed rebuild the session is left Idle.
func (s *Session) Regenerate() error {
	return s.rebuild(func() error { return s.maze.Regenerate() })
}

// SetPolicy switches the policy and rebuilds like Regenerate.
func (s *Session) SetPolicy(p weight.Policy) error {
	return s.rebuild(func() error { return s.maze.SetPolicy(p) })
}

func (s *Session) rebuild(fn func() error) error {
	s.player = nil
	s.transition(Generating)
	if err := fn(); err != nil {
		s.transition(Idle)
		return err
	}
	if s.playing {
		s.Play()
		return nil
	}
	_, err := s.Search(s.mode)

	return err
}

// Reset clears statuses and returns to Idle without rebuilding.
func (s *Session) Reset() {
	s.player = nil
	s.maze.ClearStatus()
	s.transition(Idle)
}

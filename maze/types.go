package maze

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
)

// Sentinel errors for the maze pipeline.
var (
	// ErrInvalidCell indicates a start or end outside the grid.
	ErrInvalidCell = errors.New("maze: cell outside the grid")

	// ErrNotPlaying indicates Move was called outside PlayerControlled.
	ErrNotPlaying = errors.New("maze: session is not under player control")

	// ErrFinished indicates a move after the player already reached the end.
	ErrFinished = errors.New("maze: player already reached the end")

	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("maze: unknown direction")
)

// Observer receives pipeline events. internal/metrics implements it.
type Observer interface {
	// MazeGenerated is called after every successful tree build.
	MazeGenerated(p weight.Policy, discarded int, took time.Duration)
	// Solved is called after every search, successful or not.
	Solved(m pathfind.Mode, s pathfind.State, visited int)
}

type nopObserver struct{}

func (nopObserver) MazeGenerated(weight.Policy, int, time.Duration) {}
func (nopObserver) Solved(pathfind.Mode, pathfind.State, int)       {}

// ParseDirection maps a name or a movement key to a Direction.
// Accepts up/down/left/right, u/d/l/r, w/s/a/d and k/j/h/l.
func ParseDirection(s string) (gridgraph.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "w", "k":
		return gridgraph.Up, nil
	case "down", "s", "j":
		return gridgraph.Down, nil
	case "left", "a", "h":
		return gridgraph.Left, nil
	case "right", "r", "d", "l":
		return gridgraph.Right, nil
	default:
		return gridgraph.Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

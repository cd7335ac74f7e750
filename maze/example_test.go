package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/pathfind"
)

// ExampleSession drives a 3×1 strip, where both passages are forced open.
func ExampleSession() {
	m, _ := maze.New(3, 1, maze.WithSeed(7))
	s := maze.NewSession(m)

	res, _ := s.Search(pathfind.BreadthFirst)
	fmt.Println(s.State(), res.Visited, res.Route)

	s.Play()
	s.Move(gridgraph.Right)
	s.Move(gridgraph.Right)
	fmt.Println(s.State(), s.Player().Trail())

	// Output:
	// solved [0 1] [0 1 2]
	// solved [0 1 2]
}

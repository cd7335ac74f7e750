package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/spf13/cobra"
)

const playHelp = `commands:
  p                 play from the start cell
  up|down|left|right, or w/a/s and k/j/l, move the player
  b | d             search breadth-first | depth-first
  r                 regenerate, then repeat the last search or restart play
  u | h | v         switch to uniform | horizontal | vertical weights, then regenerate
  q                 quit
`

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drive a maze session line by line from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			s := maze.NewSession(m)
			return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), s, a.renderOpts(cmd.OutOrStdout()))
		},
	}
}

// runPlay reads one command per line and prints the maze after each.
func runPlay(in io.Reader, out io.Writer, s *maze.Session, opts []render.Option) error {
	fmt.Fprint(out, playHelp)
	fmt.Fprint(out, render.Text(s.Maze().Tree(), render.Overlay{}, opts...))

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var (
			ov  render.Overlay
			msg string
			err error
		)
		switch line {
		case "q", "quit", "exit":
			return nil
		case "p":
			s.Play()
		case "b", "d":
			mode := pathfind.BreadthFirst
			if line == "d" {
				mode = pathfind.DepthFirst
			}
			if _, err = s.Search(mode); err == nil {
				ov, msg = searchOverlay(s)
			}
		case "r":
			if err = s.Regenerate(); err == nil {
				ov, msg = searchOverlay(s)
			}
		case "u", "h", "v":
			p := map[string]weight.Policy{"u": weight.Uniform, "h": weight.Horizontal, "v": weight.Vertical}[line]
			if err = s.SetPolicy(p); err == nil {
				ov, msg = searchOverlay(s)
				msg = strings.TrimSpace("policy: " + p.String() + " " + msg)
			}
		default:
			d, perr := maze.ParseDirection(line)
			if perr != nil {
				fmt.Fprintf(out, "unknown command %q\n", line)
				continue
			}
			var moved bool
			if moved, err = s.Move(d); err == nil && !moved {
				msg = "blocked"
			}
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}

		fmt.Fprint(out, render.Text(s.Maze().Tree(), ov, opts...))
		if s.State() == maze.Solved && s.Player() != nil {
			msg = fmt.Sprintf("you won in %d moves", s.Player().Moves())
		}
		fmt.Fprintf(out, "[%s] %s\n", s.State(), msg)
	}

	return sc.Err()
}

// searchOverlay describes the maze's last search, or nothing while a player
// is active.
func searchOverlay(s *maze.Session) (render.Overlay, string) {
	res := s.Maze().LastResult()
	if s.Player() != nil || res == nil {
		return render.Overlay{}, ""
	}

	return render.Overlay{Visited: res.Visited, Route: res.Route},
		fmt.Sprintf("%s: %d visited, route %d", res.Mode, len(res.Visited), len(res.Route))
}

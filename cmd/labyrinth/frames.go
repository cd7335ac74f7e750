package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/labyrinth/render"
	"github.com/spf13/cobra"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

func newFramesCmd(a *app) *cobra.Command {
	var (
		delay       time.Duration
		clearFrames bool
	)
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Print the search as a sequence of frames, one cell per frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			res, err := m.Solve(a.cfg.SearchMode())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			frames := render.Frames(m.Tree(), res, a.renderOpts(out)...)
			for i, f := range frames {
				if clearFrames {
					fmt.Fprint(out, clearScreen)
				} else if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, f)
				if delay > 0 {
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(delay):
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between frames, e.g. 30ms")
	cmd.Flags().BoolVar(&clearFrames, "clear", false, "clear the screen before each frame")

	return cmd
}

package main

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/render"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a maze, search it and print the visited cells and route",
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
			ov := render.Overlay{Visited: res.Visited, Route: res.Route}
			if err = writeMaze(cmd, a, m, format, ov); err != nil {
				return err
			}
			if format != "text" {
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: visited %d of %d cells, route %d cells, %d steps\n",
				res.Mode, len(res.Visited), m.Graph().NodeCount(), len(res.Route), res.Steps)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|yaml|json")

	return cmd
}

package main

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.newMaze()
			if err != nil {
				return err
			}
			return writeMaze(cmd, a, m, format, render.Overlay{})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text|yaml|json")

	return cmd
}

// writeMaze prints m as a picture or as a YAML/JSON snapshot.
func writeMaze(cmd *cobra.Command, a *app, m *maze.Maze, format string, ov render.Overlay) error {
	out := cmd.OutOrStdout()
	switch format {
	case "text":
		_, err := fmt.Fprint(out, render.Text(m.Tree(), ov, a.renderOpts(out)...))
		return err
	case "yaml":
		data, err := m.Snapshot().YAML()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := m.Snapshot().JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q, want text|yaml|json", format)
	}
}

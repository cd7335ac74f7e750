package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *logrus.Logger
	rec     *metrics.Recorder
	// clockSeed is set when no seed was configured and setup drew one.
	clockSeed bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:           "labyrinth",
		Short:         "Generate perfect mazes and search them breadth- or depth-first",
		Long:          `labyrinth builds a weighted grid, reduces it to a spanning tree with randomized Kruskal, and searches the tree for the route between two corners.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.cfg.MetricsFile == "" {
				return nil
			}
			return a.rec.WriteTextfile(a.cfg.MetricsFile)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML config file (env overrides use the LABYRINTH_ prefix)")
	f.Int("width", a.cfg.Width, "maze width in cells")
	f.Int("height", a.cfg.Height, "maze height in cells")
	f.String("policy", a.cfg.Policy, "weight policy: uniform|horizontal|vertical")
	f.String("mode", a.cfg.Mode, "search order: bfs|dfs")
	f.Int64("seed", a.cfg.Seed, "random seed; 0 picks one from the clock")
	f.String("color", a.cfg.Color, "color output: auto|always|never")
	f.String("log-level", a.cfg.LogLevel, "log level: debug|info|warn|error")
	f.String("metrics-file", a.cfg.MetricsFile, "write Prometheus metrics to this textfile on exit")
	f.String("listen", a.cfg.Listen, "address for serve")

	cmd.AddCommand(
		newGenerateCmd(a),
		newSolveCmd(a),
		newFramesCmd(a),
		newPlayCmd(a),
		newStatsCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup layers flags over the file and environment, then builds the logger
// and metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath, os.LookupEnv)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		cfg.Height, _ = f.GetInt("height")
	}
	if f.Changed("policy") {
		cfg.Policy, _ = f.GetString("policy")
	}
	if f.Changed("mode") {
		cfg.Mode, _ = f.GetString("mode")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("color") {
		cfg.Color, _ = f.GetString("color")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}
	if f.Changed("listen") {
		cfg.Listen, _ = f.GetString("listen")
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.clockSeed = cfg.Seed == 0
	if a.clockSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	a.log, err = logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.rec = metrics.New()
	a.log.WithFields(logrus.Fields{
		"size":   fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"policy": cfg.Policy,
		"mode":   cfg.Mode,
		"seed":   cfg.Seed,
	}).Debug("config resolved")

	return nil
}

// serveDefaults returns the settings the HTTP server starts from. A seed
// drawn from the clock is dropped so each request without ?seed= gets a
// fresh maze; a configured seed is kept.
func (a *app) serveDefaults() config.Config {
	defaults := a.cfg
	if a.clockSeed {
		defaults.Seed = 0
	}

	return defaults
}

// newMaze builds a maze from the resolved settings.
func (a *app) newMaze() (*maze.Maze, error) {
	return maze.New(a.cfg.Width, a.cfg.Height,
		maze.WithPolicy(a.cfg.WeightPolicy()),
		maze.WithSeed(a.cfg.Seed),
		maze.WithLogger(a.log),
		maze.WithObserver(a.rec),
	)
}

// profile picks the termenv color profile for out.
func (a *app) profile(out io.Writer) termenv.Profile {
	switch a.cfg.Color {
	case "always":
		return termenv.ANSI256
	case "never":
		return termenv.Ascii
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.NewOutput(f).EnvColorProfile()
	}

	return termenv.Ascii
}

// renderOpts returns the render options for out.
func (a *app) renderOpts(out io.Writer) []render.Option {
	return []render.Option{render.WithProfile(a.profile(out))}
}

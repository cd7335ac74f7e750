package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--color", "never", "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func TestGenerate_Text(t *testing.T) {
	out, err := run(t, "", "generate", "--width", "4", "--height", "3", "--seed", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.Contains(t, lines[1], " S ")
	assert.Contains(t, lines[5], " E ")
}

func TestGenerate_Formats(t *testing.T) {
	out, err := run(t, "", "generate", "--width", "5", "--height", "2", "--seed", "3", "-f", "json")
	require.NoError(t, err)
	var snap maze.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Len(t, snap.Passages, 9)

	out, err = run(t, "", "generate", "--width", "5", "--height", "2", "--seed", "3", "-f", "yaml", "--policy", "horizontal")
	require.NoError(t, err)
	var fromYAML maze.Snapshot
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, "horizontal", fromYAML.Policy)

	_, err = run(t, "", "generate", "-f", "xml")
	assert.Error(t, err)
}

func TestSolve_Summary(t *testing.T) {
	out, err := run(t, "", "solve", "--width", "3", "--height", "1", "--mode", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "| S   *   E |")
	assert.Contains(t, out, "breadth-first: visited 2 of 3 cells, route 3 cells, 3 steps")
}

func TestFrames_Count(t *testing.T) {
	out, err := run(t, "", "frames", "--width", "3", "--height", "1")
	require.NoError(t, err)
	// 2 visited + 3 route frames, each three lines, separated by blank lines.
	assert.Equal(t, 5, strings.Count(out, "| S "))
}

func TestPlay_WinStrip(t *testing.T) {
	out, err := run(t, "right\np\nright\nright\nleft\nq\n", "play", "--width", "3", "--height", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "error: maze: session is not under player control")
	assert.Contains(t, out, "[player-controlled]")
	assert.Contains(t, out, "you won in 2 moves")
}

func TestPlay_SearchAndPolicy(t *testing.T) {
	out, err := run(t, "b\nv\nd\nbogus\n", "play", "--width", "4", "--height", "4", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "breadth-first:")
	assert.Contains(t, out, "policy: vertical")
	assert.Contains(t, out, "depth-first:")
	assert.Contains(t, out, `unknown command "bogus"`)
}

func TestPlay_RegenerateRepeatsLastAction(t *testing.T) {
	out, err := run(t, "d\nr\nh\n", "play", "--width", "5", "--height", "4", "--seed", "8")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "[solved] "))
	assert.Equal(t, 3, strings.Count(out, "depth-first:"))
	assert.Contains(t, out, "[solved] policy: horizontal depth-first:")

	out, err = run(t, "p\nr\n", "play", "--width", "5", "--height", "4", "--seed", "8")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "[player-controlled]"))
}

func TestStats_Markdown(t *testing.T) {
	out, err := run(t, "", "stats", "--width", "12", "--height", "12", "--seed", "1", "--runs", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "# Corridor bias")
	for _, p := range []string{"| uniform |", "| horizontal |", "| vertical |"} {
		assert.Contains(t, out, p)
	}

	_, err = run(t, "", "stats", "--runs", "0")
	assert.Error(t, err)
}

func TestConfigAndMetricsFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "labyrinth.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width: 3\nheight: 1\nseed: 4\n"), 0o600))
	promPath := filepath.Join(dir, "labyrinth.prom")

	out, err := run(t, "", "solve", "--config", cfgPath, "--metrics-file", promPath)
	require.NoError(t, err)
	assert.Contains(t, out, "+---+---+---+")

	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `labyrinth_solves_total{mode="bfs",state="found"} 1`)
}

func TestInvalidFlags(t *testing.T) {
	_, err := run(t, "", "generate", "--width", "0")
	assert.Error(t, err)
	_, err = run(t, "", "solve", "--mode", "astar")
	assert.Error(t, err)
}

func TestServeDefaults_Seed(t *testing.T) {
	newSetup := func(t *testing.T, args ...string) *app {
		t.Helper()
		cmd := &cobra.Command{}
		cmd.Flags().Int64("seed", 0, "")
		require.NoError(t, cmd.ParseFlags(args))
		a := &app{cfg: config.Default()}
		require.NoError(t, a.setup(cmd))

		return a
	}

	a := newSetup(t, "--seed", "42")
	assert.False(t, a.clockSeed)
	assert.Equal(t, int64(42), a.serveDefaults().Seed)

	a = newSetup(t)
	assert.True(t, a.clockSeed)
	assert.NotZero(t, a.cfg.Seed)
	assert.Zero(t, a.serveDefaults().Seed)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "labyrinth version "))
}

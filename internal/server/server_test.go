package server_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/metrics"
	"github.com/katalvlaran/labyrinth/internal/server"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 6, 4

	return server.New(cfg, logging.NewNop(), metrics.New()).Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestHealthz(t *testing.T) {
	w := get(t, newHandler(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(server.RequestIDHeader))
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMaze_JSON(t *testing.T) {
	h := newHandler(t)
	w := get(t, h, "/maze?width=5&height=3&seed=4&policy=vertical")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var snap maze.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 5, snap.Width)
	assert.Equal(t, "vertical", snap.Policy)
	assert.Len(t, snap.Passages, 14)
	assert.Nil(t, snap.Solve)

	// Same seed, same passages.
	var again maze.Snapshot
	require.NoError(t, json.Unmarshal(get(t, h, "/maze?width=5&height=3&seed=4&policy=vertical").Body.Bytes(), &again))
	assert.Equal(t, snap.Passages, again.Passages)
}

func TestSolve_Defaults(t *testing.T) {
	w := get(t, newHandler(t), "/solve?seed=9&mode=dfs")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var snap maze.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, 6, snap.Width)
	assert.Equal(t, 4, snap.Height)
	require.NotNil(t, snap.Solve)
	assert.Equal(t, "depth-first", snap.Solve.Mode)
	assert.Equal(t, "found", snap.Solve.State)
	assert.Equal(t, maze.Coord{Row: 3, Col: 5}, snap.Solve.Route[len(snap.Solve.Route)-1])
}

func TestSolve_Text(t *testing.T) {
	w := get(t, newHandler(t), "/solve?width=3&height=1&format=text")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "+---+---+---+\n| S   *   E |\n+---+---+---+\n", w.Body.String())
}

func TestBadRequests(t *testing.T) {
	h := newHandler(t)
	for _, target := range []string{
		"/maze?width=0",
		"/maze?width=abc",
		"/maze?policy=diagonal",
		"/solve?mode=astar",
		"/maze?format=xml",
		"/maze?height=100000",
	} {
		w := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), `"error"`, target)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusOK, get(t, h, "/solve?seed=1").Code)
	w := get(t, h, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `labyrinth_mazes_generated_total{policy="uniform"} 1`)
	assert.Contains(t, w.Body.String(), `labyrinth_solves_total{mode="bfs",state="found"} 1`)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := server.New(config.Default(), logging.NewNop(), metrics.New())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

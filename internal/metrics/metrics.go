// Package metrics defines Prometheus metrics for maze generation and search.
package metrics

import (
	"net/http"
	"time"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry and implements maze.Observer.
type Recorder struct {
	reg *prometheus.Registry

	MazesGenerated *prometheus.CounterVec
	EdgesDiscarded prometheus.Counter
	BuildDuration  prometheus.Histogram
	Solves         *prometheus.CounterVec
	VisitedNodes   *prometheus.HistogramVec
}

var _ maze.Observer = (*Recorder)(nil)

// New registers every collector on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		MazesGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_mazes_generated_total",
				Help: "Spanning trees built, by weight policy",
			},
			[]string{"policy"},
		),
		EdgesDiscarded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "labyrinth_edges_discarded_total",
				Help: "Cycle-closing edges skipped while building trees",
			},
		),
		BuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "labyrinth_build_duration_seconds",
				Help:    "Spanning tree build duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "labyrinth_solves_total",
				Help: "Route searches, by traversal mode and final state",
			},
			[]string{"mode", "state"},
		),
		VisitedNodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "labyrinth_visited_nodes",
				Help:    "Cells visited before the end was reached",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"mode"},
		),
	}
	r.reg.MustRegister(r.MazesGenerated, r.EdgesDiscarded, r.BuildDuration, r.Solves, r.VisitedNodes)

	return r
}

// MazeGenerated implements maze.Observer.
func (r *Recorder) MazeGenerated(p weight.Policy, discarded int, took time.Duration) {
	r.MazesGenerated.WithLabelValues(p.String()).Inc()
	r.EdgesDiscarded.Add(float64(discarded))
	r.BuildDuration.Observe(took.Seconds())
}

// Solved implements maze.Observer.
func (r *Recorder) Solved(m pathfind.Mode, s pathfind.State, visited int) {
	r.Solves.WithLabelValues(m.Short(), s.String()).Inc()
	r.VisitedNodes.WithLabelValues(m.Short()).Observe(float64(visited))
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registry for the node-exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

package maze

import (
	"io"
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/weight"
	"github.com/sirupsen/logrus"
)

// Option configures New.
type Option func(*Options)

// Options holds the pipeline parameters.
type Options struct {
	// Policy is the weight policy for the first build and every Regenerate.
	Policy weight.Policy
	// Rand drives every weight draw of this maze.
	Rand *rand.Rand
	// Start and End default to the top-left and bottom-right cells.
	Start, End *gridgraph.Cell
	// Logger receives stage logs; defaults to a discarding logger.
	Logger *logrus.Logger
	// Observer receives generation and solve events.
	Observer Observer
}

// DefaultOptions returns Uniform weights, a time-seeded source, corner
// endpoints, a silent logger and no observer.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Policy:   weight.Uniform,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:   l,
		Observer: nopObserver{},
	}
}

// WithPolicy selects the weight policy.
func WithPolicy(p weight.Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithSeed makes every build of the maze reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithStart overrides the start cell.
func WithStart(row, col int) Option {
	return func(o *Options) {
		o.Start = &gridgraph.Cell{Row: row, Col: col}
	}
}

// WithEnd overrides the end cell.
func WithEnd(row, col int) Option {
	return func(o *Options) {
		o.End = &gridgraph.Cell{Row: row, Col: col}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an event observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

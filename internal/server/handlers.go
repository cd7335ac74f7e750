package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// request is a validated /maze or /solve query.
type request struct {
	cfg   config.Config
	solve bool
	text  bool
}

// key identifies a deterministic request for singleflight. Unseeded requests
// return "" and are never shared.
func (q request) key() string {
	if q.cfg.Seed == 0 {
		return ""
	}

	return fmt.Sprintf("%t|%t|%dx%d|%s|%s|%d", q.solve, q.text, q.cfg.Width, q.cfg.Height,
		q.cfg.Policy, q.cfg.Mode, q.cfg.Seed)
}

func (s *Server) parse(r *http.Request, solve bool) (request, error) {
	q := request{cfg: s.defaults, solve: solve}
	vals := r.URL.Query()

	w, err := intParam(r, "width", int64(q.cfg.Width))
	if err != nil {
		return q, err
	}
	h, err := intParam(r, "height", int64(q.cfg.Height))
	if err != nil {
		return q, err
	}
	seed, err := intParam(r, "seed", q.cfg.Seed)
	if err != nil {
		return q, err
	}
	q.cfg.Width, q.cfg.Height, q.cfg.Seed = int(w), int(h), seed
	if v := vals.Get("policy"); v != "" {
		q.cfg.Policy = v
	}
	if v := vals.Get("mode"); v != "" {
		q.cfg.Mode = v
	}
	switch vals.Get("format") {
	case "", "json":
	case "text":
		q.text = true
	default:
		return q, fmt.Errorf("%w: format %q, want json|text", config.ErrInvalid, vals.Get("format"))
	}

	return q, q.cfg.Validate()
}

func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, false)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, true)
}

// response is the built body plus its content type.
type response struct {
	body        []byte
	contentType string
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, solve bool) {
	q, err := s.parse(r, solve)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	var res response
	if k := q.key(); k != "" {
		v, ferr, shared := s.flight.Do(k, func() (any, error) { return s.build(q) })
		if shared {
			s.log.WithField("key", k).Debug("shared in-flight build")
		}
		err = ferr
		if v != nil {
			res = v.(response)
		}
	} else {
		res, err = s.build(q)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, maze.ErrInvalidCell) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", res.contentType)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(res.body); err != nil {
		s.log.WithError(err).Warn("response write failed")
	}
}

// build generates, optionally solves, and encodes one maze.
func (s *Server) build(q request) (response, error) {
	opts := []maze.Option{
		maze.WithPolicy(q.cfg.WeightPolicy()),
		maze.WithLogger(s.log),
		maze.WithObserver(s.rec),
	}
	if q.cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(q.cfg.Seed))
	}
	m, err := maze.New(q.cfg.Width, q.cfg.Height, opts...)
	if err != nil {
		return response{}, err
	}
	var ov render.Overlay
	if q.solve {
		res, err := m.Solve(q.cfg.SearchMode())
		if err != nil {
			return response{}, err
		}
		ov = render.Overlay{Visited: res.Visited, Route: res.Route}
	}

	if q.text {
		return response{body: []byte(render.Text(m.Tree(), ov, render.WithoutStatus())), contentType: "text/plain; charset=utf-8"}, nil
	}
	body, err := m.Snapshot().JSON()
	if err != nil {
		return response{}, err
	}

	return response{body: append(body, '\n'), contentType: "application/json"}, nil
}

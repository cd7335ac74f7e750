package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/muesli/termenv"
)

// Glyphs used for cell interiors.
const (
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphCurrent = '@'
	GlyphRoute   = '*'
	GlyphVisited = '.'
	GlyphEmpty   = ' '
)

// Palette colors as hex strings.
const (
	ColorStart   = "#00ff00"
	ColorEnd     = "#ff0000"
	ColorVisited = "#00ffff"
	ColorRoute   = "#00ff00"
)

// Overlay marks cells on top of the node statuses.
type Overlay struct {
	Visited []int
	Route   []int
}

// Option configures Text and Frames.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Profile selects the color depth; termenv.Ascii disables color.
	Profile termenv.Profile
	// UseStatus makes StatusVisited and StatusCurrent on nodes show up.
	UseStatus bool
}

// DefaultOptions returns plain ASCII output that honors node statuses.
func DefaultOptions() Options {
	return Options{Profile: termenv.Ascii, UseStatus: true}
}

// WithProfile sets the termenv color profile.
func WithProfile(p termenv.Profile) Option {
	return func(o *Options) {
		o.Profile = p
	}
}

// WithoutStatus ignores visited and current marks stored on the nodes, so
// only the overlay decides. Start and end are always drawn.
func WithoutStatus() Option {
	return func(o *Options) {
		o.UseStatus = false
	}
}

// Text draws t with ov applied. A nil tree renders as the empty string.
// Complexity: O(W×H).
func Text(t *kruskal.Tree, ov Overlay, opts ...Option) string {
	if t == nil || t.Graph() == nil {
		return ""
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newCanvas(t, o).draw(ov)
}

// Frames returns one picture per visited cell, then one per route cell.
// Node statuses other than start and end are ignored.
func Frames(t *kruskal.Tree, res *pathfind.Result, opts ...Option) []string {
	if t == nil || t.Graph() == nil || res == nil {
		return nil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.UseStatus = false
	c := newCanvas(t, o)

	frames := make([]string, 0, len(res.Visited)+len(res.Route))
	for i := range res.Visited {
		frames = append(frames, c.draw(Overlay{Visited: res.Visited[:i+1]}))
	}
	for i := range res.Route {
		frames = append(frames, c.draw(Overlay{Visited: res.Visited, Route: res.Route[:i+1]}))
	}

	return frames
}

// canvas holds per-call state shared across frames.
type canvas struct {
	tree *kruskal.Tree
	g    *gridgraph.GridGraph
	opts Options
	mark []rune
}

func newCanvas(t *kruskal.Tree, o Options) *canvas {
	return &canvas{tree: t, g: t.Graph(), opts: o, mark: make([]rune, t.Graph().NodeCount())}
}

// draw lays out the grid row by row: a wall line above each row, then the
// cell line with vertical walls, then the closing bottom border.
func (c *canvas) draw(ov Overlay) string {
	c.fill(ov)
	g := c.g
	var b strings.Builder
	b.Grow((g.Height*2 + 1) * (g.Width*4 + 2))

	b.WriteString(c.border())
	for r := 0; r < g.Height; r++ {
		b.WriteByte('|')
		for col := 0; col < g.Width; col++ {
			id := g.Index(r, col)
			b.WriteByte(' ')
			b.WriteString(c.glyph(id))
			b.WriteByte(' ')
			if c.open(id, gridgraph.Right) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')

		if r == g.Height-1 {
			break
		}
		b.WriteByte('+')
		for col := 0; col < g.Width; col++ {
			if c.open(g.Index(r, col), gridgraph.Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(c.border())

	return b.String()
}

func (c *canvas) border() string {
	return "+" + strings.Repeat("---+", c.g.Width) + "\n"
}

// open reports whether the passage from id in direction d is a tree edge.
func (c *canvas) open(id int, d gridgraph.Direction) bool {
	nb, ok := c.g.Neighbor(id, d)
	if !ok {
		return false
	}
	e, ok := c.g.EdgeBetween(id, nb)

	return ok && c.tree.Contains(e.ID)
}

// fill resolves one glyph per cell. Later layers win: status, visited,
// route, then start and end.
func (c *canvas) fill(ov Overlay) {
	for i := range c.mark {
		c.mark[i] = GlyphEmpty
		n, _ := c.g.Node(i)
		if !c.opts.UseStatus {
			continue
		}
		switch n.Status {
		case gridgraph.StatusVisited:
			c.mark[i] = GlyphVisited
		case gridgraph.StatusCurrent:
			c.mark[i] = GlyphCurrent
		}
	}
	for _, id := range ov.Visited {
		if c.g.HasNode(id) {
			c.mark[id] = GlyphVisited
		}
	}
	for _, id := range ov.Route {
		if c.g.HasNode(id) {
			c.mark[id] = GlyphRoute
		}
	}
	for i := range c.mark {
		n, _ := c.g.Node(i)
		switch n.Status {
		case gridgraph.StatusStart:
			c.mark[i] = GlyphStart
		case gridgraph.StatusEnd:
			c.mark[i] = GlyphEnd
		}
	}
}

// glyph returns the cell glyph, colored when the profile allows it.
func (c *canvas) glyph(id int) string {
	r := c.mark[id]
	s := string(r)
	if c.opts.Profile == termenv.Ascii {
		return s
	}
	var hex string
	switch r {
	case GlyphStart:
		hex = ColorStart
	case GlyphEnd:
		hex = ColorEnd
	case GlyphVisited:
		hex = ColorVisited
	case GlyphRoute, GlyphCurrent:
		hex = ColorRoute
	default:
		return s
	}

	return c.opts.Profile.String(s).Foreground(c.opts.Profile.Color(hex)).String()
}

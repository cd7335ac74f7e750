// Package render draws a spanning tree as box text.
//
// Every grid edge missing from the tree is a wall; the outer border is
// always closed. Cells carry one glyph:
//
//	S start   E end   @ player   * route   . visited
//
// Colors follow the classic palette (start green, end red, visited cyan,
// route and player green) and are applied only for a color-capable
// termenv.Profile. With termenv.Ascii the output is plain text.
//
// Frames expands a search result into the finite sequence of pictures an
// animator reveals one per tick: first each visited cell, then each route cell.
package render

// Package grid implements the Program Grid: the reconstructed Piet
// program as a 2-D array of coded cells, with the transient flood-fill
// scratch bit isolated behind SetFill/ClearAllFill so navigation code
// never has to think about it.
package grid

import "github.com/bdwalton/pietvm/codel"

// Grid is the Program Grid. It is immutable outside flood fill; the
// only mutation any caller outside this package should ever need is
// the fill scratch bit.
type Grid struct {
	width, height int
	cells         []codel.Cell
}

// New returns a width x height grid, initialised from cells (row-major,
// width*height entries).
func New(width, height int, cells []codel.Cell) *Grid {
	if len(cells) != width*height {
		panic("grid: cells length does not match width*height")
	}
	g := &Grid{width: width, height: height, cells: make([]codel.Cell, len(cells))}
	copy(g.cells, cells)
	return g
}

// Width returns the grid's width in codels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height in codels.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid position in the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the coded cell at (x, y). Positions outside the grid
// read as black, matching how the Navigator must treat them — a
// position off the edge of the program blocks travel exactly like a
// black codel does. The flood-fill scratch bit is never part of the
// returned cell; use Filled to read it.
func (g *Grid) At(x, y int) codel.Cell {
	if !g.InBounds(x, y) {
		return codel.Black()
	}
	return g.cells[y*g.width+x].ClearFill()
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// SetFill sets the flood-fill scratch bit at (x, y). x, y must be in
// bounds.
func (g *Grid) SetFill(x, y int) {
	i := g.index(x, y)
	g.cells[i] = g.cells[i].SetFill()
}

// Filled reports whether the flood-fill scratch bit at (x, y) is set.
// x, y must be in bounds.
func (g *Grid) Filled(x, y int) bool {
	return g.cells[g.index(x, y)].Filled()
}

// ClearFill clears the flood-fill scratch bit at a single (x, y). x, y
// must be in bounds. Used by the Block Explorer to restore exactly
// the cells it visited without touching the rest of the grid.
func (g *Grid) ClearFill(x, y int) {
	i := g.index(x, y)
	g.cells[i] = g.cells[i].ClearFill()
}

// ClearAllFill clears the flood-fill scratch bit across the entire
// grid. Callers of the Block Explorer must invoke this (or rely on it
// clearing fill bits itself) before returning, per the §3 invariant
// that fill bits are always 0 outside of an in-progress flood fill.
func (g *Grid) ClearAllFill() {
	for i, c := range g.cells {
		g.cells[i] = c.ClearFill()
	}
}

package navigator

import "github.com/bdwalton/pietvm/grid"

// Point is a codel position.
type Point struct {
	X, Y int
}

// Block is the result of exploring one coloured region: its size and
// the exit codel selected by the current DP/CC pair.
type Block struct {
	Size int
	Exit Point
}

// Explore performs an iterative (explicit-queue) flood fill, avoiding
// the stack depth a recursive exploration would need for large
// blocks, over the 4-connected region of g that shares entry's
// hue+lightness, and returns its size and the DP/CC-selected exit
// codel. g's fill scratch bits are guaranteed clear again on return;
// no transient state leaks back to the caller.
func Explore(g *grid.Grid, entry Point, dp DP, cc CC) Block {
	entryColour := g.At(entry.X, entry.Y)

	queue := []Point{entry}
	region := make([]Point, 0, 16)
	g.SetFill(entry.X, entry.Y)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		region = append(region, p)

		for _, d := range [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.InBounds(nx, ny) || g.Filled(nx, ny) {
				continue
			}
			if !g.At(nx, ny).SameBlock(entryColour) {
				continue
			}
			g.SetFill(nx, ny)
			queue = append(queue, Point{nx, ny})
		}
	}

	for _, p := range region {
		// Filled bits were only ever set on cells visited here;
		// ClearAllFill would also be correct but visiting only
		// the region keeps this O(block size) rather than
		// O(grid size).
		g.ClearFill(p.X, p.Y)
	}

	return Block{Size: len(region), Exit: selectExit(region, dp, cc)}
}

// selectExit picks the region cell that is furthest along dp,
// tie-broken along the perpendicular axis according to cc.
func selectExit(region []Point, dp DP, cc CC) Point {
	best := region[0]
	for _, p := range region[1:] {
		if better(p, best, dp, cc) {
			best = p
		}
	}
	return best
}

// better reports whether candidate should replace current as the
// running extremum for (dp, cc).
func better(candidate, current Point, dp DP, cc CC) bool {
	switch dp {
	case Right:
		if candidate.X != current.X {
			return candidate.X > current.X
		}
		if cc == CCLeft {
			return candidate.Y < current.Y
		}
		return candidate.Y > current.Y
	case Down:
		if candidate.Y != current.Y {
			return candidate.Y > current.Y
		}
		if cc == CCLeft {
			return candidate.X > current.X
		}
		return candidate.X < current.X
	case Left:
		if candidate.X != current.X {
			return candidate.X < current.X
		}
		if cc == CCLeft {
			return candidate.Y > current.Y
		}
		return candidate.Y < current.Y
	case Up:
		if candidate.Y != current.Y {
			return candidate.Y < current.Y
		}
		if cc == CCLeft {
			return candidate.X < current.X
		}
		return candidate.X > current.X
	}
	return false
}

package navigator

import "github.com/bdwalton/pietvm/grid"

// StepResult is the outcome of one Navigator step: either a new
// current codel (with the block metadata that produced it, when the
// step crossed a coloured block) or a termination signal.
type StepResult struct {
	// Terminated is true once the navigator has exhausted its
	// rotation/attempt budget and the Executor must halt.
	Terminated bool

	// Next is the new current codel. Valid only when !Terminated.
	Next Point

	// Block is the explored block that produced Next, for the
	// hue/lightness delta dispatch. Valid only when !Terminated and
	// the step started from a coloured (non-white) codel.
	Block Block
	// FromColour/ToColour are the coded colours of the block just
	// left and the block just entered, for hue/lightness delta
	// computation by the caller.
	FromColour, ToColour int
}

// maxAttempts bounds the rotation dance: 8 unsuccessful attempts, with
// the 9th failure signalling termination.
const maxAttempts = 8

// BlockStep runs one block-step cycle, starting from
// a coloured, non-special codel at current. It explores current's
// block, tries the DP-directed neighbour of the block's exit codel,
// and on failure alternates toggling CC and rotating DP clockwise
// (CC first) up to maxAttempts times before signalling termination.
func BlockStep(g *grid.Grid, current Point, state *State) StepResult {
	fromColour := g.At(current.X, current.Y)

	for attempt := 0; ; attempt++ {
		block := Explore(g, current, state.DP(), state.CC())
		exit := block.Exit
		candidate := Point{exit.X + state.DP().Dx(), exit.Y + state.DP().Dy()}

		next := g.At(candidate.X, candidate.Y)
		if g.InBounds(candidate.X, candidate.Y) && !next.IsBlack() && !next.SameBlock(fromColour) {
			return StepResult{
				Next:       candidate,
				Block:      block,
				FromColour: int(fromColour),
				ToColour:   int(next),
			}
		}

		if attempt >= maxAttempts {
			return StepResult{Terminated: true}
		}

		// Rotation order: first failure toggles CC, second rotates DP,
		// and so on.
		if attempt%2 == 0 {
			state.ToggleCC()
		} else {
			state.RotateClockwise(1)
		}
	}
}

// WhiteSlide runs the white-slide rule, starting from
// a white codel at current. It travels in a straight line along DP
// until it hits a non-white in-bounds codel (the new current) or is
// blocked by black/out-of-bounds, in which case it rotates DP and
// toggles CC together and resumes. After maxAttempts unsuccessful
// attempts to leave the white region it signals termination.
func WhiteSlide(g *grid.Grid, current Point, state *State) StepResult {
	pos := current

	for attempt := 0; ; attempt++ {
		for {
			nx, ny := pos.X+state.DP().Dx(), pos.Y+state.DP().Dy()
			if !g.InBounds(nx, ny) {
				break
			}
			next := g.At(nx, ny)
			if !next.IsWhite() {
				if next.IsBlack() {
					break
				}
				return StepResult{Next: Point{nx, ny}}
			}
			pos = Point{nx, ny}
		}

		if attempt >= maxAttempts {
			return StepResult{Terminated: true}
		}

		state.RotateClockwise(1)
		state.ToggleCC()
	}
}

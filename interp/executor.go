// Package interp implements the Executor: the outer loop that
// composes the Program Grid, the Navigator, and the Operation
// Dispatcher to run a Piet program to completion.
package interp

import (
	"bufio"
	"context"
	"io"

	"github.com/bdwalton/pietvm/grid"
	"github.com/bdwalton/pietvm/navigator"
	"github.com/bdwalton/pietvm/ops"
	"github.com/bdwalton/pietvm/stack"
)

// Executor owns the whole interpreter component graph for one Piet
// program run: the grid, the stack, and the DP/CC state, exposing a
// single Run(ctx) entry point rather than package-level singletons.
type Executor struct {
	grid  *grid.Grid
	stack *stack.Stack
	state *navigator.State
	pos   navigator.Point

	stdin  *bufio.Reader
	stdout io.Writer
}

// New constructs an Executor over g, starting at (0,0) facing right
// with CC=left and an empty stack. stdin/stdout are used for the
// in(...)/out(...) opcodes and should be unbuffered or flushed
// promptly on the caller's side.
func New(g *grid.Grid, stdin io.Reader, stdout io.Writer) *Executor {
	return &Executor{
		grid:   g,
		stack:  stack.New(),
		state:  navigator.NewState(),
		pos:    navigator.Point{X: 0, Y: 0},
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
	}
}

// Stack returns the executor's value stack, for tests and diagnostics.
func (e *Executor) Stack() *stack.Stack { return e.stack }

// Run drives the Executor's loop until the Navigator signals
// termination or ctx is cancelled. Unlike a clocked device, Piet has
// no fixed rate to simulate, so there is no ticker to select over —
// just the cancellation check.
func (e *Executor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		current := e.grid.At(e.pos.X, e.pos.Y)

		if current.IsBlack() {
			return nil
		}

		if current.IsWhite() {
			result := navigator.WhiteSlide(e.grid, e.pos, e.state)
			if result.Terminated {
				return nil
			}
			e.pos = result.Next
			continue
		}

		result := navigator.BlockStep(e.grid, e.pos, e.state)
		if result.Terminated {
			return nil
		}

		next := e.grid.At(result.Next.X, result.Next.Y)
		if !next.IsWhite() {
			hueDelta := int(next.Hue()) - int(current.Hue())
			lightnessDelta := int(next.Lightness()) - int(current.Lightness())
			op := ops.Lookup(hueDelta, lightnessDelta)
			ops.Dispatch(op, e.stack, e.state, result.Block.Size, e.stdin, e.stdout)
		}

		e.pos = result.Next
	}
}

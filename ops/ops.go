// Package ops implements the Piet operation table and dispatcher: the
// 6x3 matrix of hue/lightness deltas indexed to the 18 Piet opcodes,
// and their stack/DP/CC/IO semantics.
//
// Dispatch uses a closed switch over an Op enumeration, keeping the
// set of operations exhaustive and closed rather than an open table
// of dispatchable names reached by reflection.
package ops

import (
	"fmt"
	"io"
)

// Op identifies one of the 18 Piet operations, plus NoOp for the
// (0,0) table entry (no operation).
type Op int

const (
	NoOp Op = iota
	Push
	Pop
	Add
	Subtract
	Multiply
	Divide
	Mod
	Not
	Greater
	Pointer
	Switch
	Duplicate
	Roll
	InNumber
	InChar
	OutNumber
	OutChar
)

func (o Op) String() string {
	names := [...]string{
		"noop", "push", "pop", "add", "subtract", "multiply", "divide",
		"mod", "not", "greater", "pointer", "switch", "duplicate",
		"roll", "in(number)", "in(char)", "out(number)", "out(char)",
	}
	if int(o) < 0 || int(o) >= len(names) {
		return fmt.Sprintf("op(%d)", int(o))
	}
	return names[o]
}

// table is the 6x3 hue-delta x lightness-delta matrix, indexed
// [hueDelta][lightnessDelta].
var table = [6][3]Op{
	{NoOp, Push, Pop},
	{Add, Subtract, Multiply},
	{Divide, Mod, Not},
	{Greater, Pointer, Switch},
	{Duplicate, Roll, InNumber},
	{InChar, OutNumber, OutChar},
}

// Lookup returns the operation for the given hue and lightness deltas.
// It normalises them modulo 6 and modulo 3 itself, so raw (possibly
// negative) differences may be passed.
func Lookup(hueDelta, lightnessDelta int) Op {
	return table[((hueDelta%6)+6)%6][((lightnessDelta%3)+3)%3]
}

// Rotator is the subset of navigator.State that operations need:
// rotating DP and toggling CC. Kept as a narrow interface here so ops
// does not import navigator, keeping the dependency direction
// single-way (interp wires the two together).
type Rotator interface {
	RotateClockwise(n int)
	ToggleCCTimes(n int)
}

// Valuer is the subset of the value stack that operations need. The
// "push" operand (the size of the block just left) is passed to
// Dispatch separately.
type Valuer interface {
	Depth() int
	Push(v int)
	Pop() (int, bool)
	Peek(k int) (int, bool)
	PopN(n int) ([]int, bool)
	Rotate(depth, n int)
}

// Dispatch executes op against the given stack and DP/CC rotator,
// using blockSize as the operand for Push, and stdin/stdout for the
// IO operations. It never returns an error: underflow, bad roll
// arguments, and division/modulo by zero are all no-ops — a malformed
// program must never abort the interpreter.
func Dispatch(op Op, s Valuer, r Rotator, blockSize int, stdin io.ByteReader, stdout io.Writer) {
	switch op {
	case NoOp:
		// The (0,0) delta: no operation. Transitions through white
		// never reach Dispatch.
	case Push:
		s.Push(blockSize)
	case Pop:
		s.Pop()
	case Add:
		binary(s, func(a, b int) int { return a + b })
	case Subtract:
		binary(s, func(a, b int) int { return a - b })
	case Multiply:
		binary(s, func(a, b int) int { return a * b })
	case Divide:
		binaryGuarded(s, func(a, b int) (int, bool) {
			if b == 0 {
				return 0, false
			}
			return a / b, true
		})
	case Mod:
		binaryGuarded(s, func(a, b int) (int, bool) {
			if b == 0 {
				return 0, false
			}
			m := a % b
			if m != 0 && (m < 0) != (b < 0) {
				m += b
			}
			return m, true
		})
	case Not:
		if v, ok := s.Pop(); ok {
			if v == 0 {
				s.Push(1)
			} else {
				s.Push(0)
			}
		}
	case Greater:
		binary(s, func(a, b int) int {
			if a > b {
				return 1
			}
			return 0
		})
	case Pointer:
		if v, ok := s.Pop(); ok {
			r.RotateClockwise(v)
		}
	case Switch:
		if v, ok := s.Pop(); ok {
			r.ToggleCCTimes(v)
		}
	case Duplicate:
		if v, ok := s.Peek(0); ok {
			s.Push(v)
		}
	case Roll:
		doRoll(s)
	case InNumber:
		readNumber(s, stdin)
	case InChar:
		readChar(s, stdin)
	case OutNumber:
		if v, ok := s.Pop(); ok {
			fmt.Fprintf(stdout, "%d", v)
		}
	case OutChar:
		if v, ok := s.Pop(); ok {
			stdout.Write([]byte{byte(v)})
		}
	}
}

// binary pops b then a and pushes a op b. If depth < 2, it is a no-op.
// PopN returns [b, a] (top-to-bottom), so f is called as f(a, b).
func binary(s Valuer, f func(a, b int) int) {
	vs, ok := s.PopN(2)
	if !ok {
		return
	}
	s.Push(f(vs[1], vs[0]))
}

// binaryGuarded is like binary, but f may refuse to produce a result
// (division/modulo by zero), in which case the stack is left exactly
// as it was before the attempt.
func binaryGuarded(s Valuer, f func(a, b int) (int, bool)) {
	vs, ok := s.PopN(2)
	if !ok {
		return
	}
	v, ok := f(vs[1], vs[0])
	if !ok {
		s.Push(vs[1])
		s.Push(vs[0])
		return
	}
	s.Push(v)
}

// doRoll implements roll: pop rolls, then depth. If depth is out of
// [0, stack depth], both operands are still consumed and the rest of
// the stack is left untouched.
func doRoll(s Valuer) {
	vs, ok := s.PopN(2)
	if !ok {
		return
	}
	rolls, depth := vs[0], vs[1]
	if depth < 0 || depth > s.Depth() {
		return
	}
	s.Rotate(depth, rolls)
}

// readNumber reads a signed decimal integer from stdin. On EOF or a
// malformed value, it is a no-op, leaving the stack unchanged.
func readNumber(s Valuer, stdin io.ByteReader) {
	neg := false
	haveDigit := false
	n := 0

	b, err := stdin.ReadByte()
	for err == nil && (b == ' ' || b == '\t' || b == '\n' || b == '\r') {
		b, err = stdin.ReadByte()
	}
	if err == nil && (b == '-' || b == '+') {
		neg = b == '-'
		b, err = stdin.ReadByte()
	}
	for err == nil && b >= '0' && b <= '9' {
		haveDigit = true
		n = n*10 + int(b-'0')
		b, err = stdin.ReadByte()
	}
	if !haveDigit {
		return
	}
	if neg {
		n = -n
	}
	s.Push(n)
}

// readChar reads a single raw byte from stdin and pushes it. On EOF
// it is a no-op.
func readChar(s Valuer, stdin io.ByteReader) {
	b, err := stdin.ReadByte()
	if err != nil {
		return
	}
	s.Push(int(b))
}

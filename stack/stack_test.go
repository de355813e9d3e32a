package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPushPop(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)

	v, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Depth())
}

func TestPopEmptyIsNoOp(t *testing.T) {
	s := New()
	s.Push(42)

	_, ok := s.Pop()
	require.True(t, ok)

	v, ok := s.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, s.Depth())
}

func TestRotateClassicExample(t *testing.T) {
	s := New()
	s.Push(1) // a
	s.Push(2) // b
	s.Push(3) // c

	s.Rotate(3, 1)
	assert.Equal(t, []int{3, 1, 2}, s.Values())
}

func TestRotateOutOfRangeDepthIsNoOp(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)

	s.Rotate(5, 1)
	assert.Equal(t, []int{1, 2}, s.Values())

	s.Rotate(-1, 1)
	assert.Equal(t, []int{1, 2}, s.Values())
}

// push then pop leaves the stack unchanged, modulo the pushed value.
func TestPushPopIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()
		for _, v := range rapid.SliceOf(rapid.Int()).Draw(t, "seed") {
			s.Push(v)
		}
		before := s.Values()

		s.Push(rapid.Int().Draw(t, "v"))
		_, ok := s.Pop()

		require.True(t, ok)
		assert.Equal(t, before, s.Values())
	})
}

// stack depth never becomes negative, regardless of how many pops are
// attempted against however many pushes.
func TestDepthNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := New()
		pushes := rapid.IntRange(0, 20).Draw(t, "pushes")
		pops := rapid.IntRange(0, 30).Draw(t, "pops")

		for i := 0; i < pushes; i++ {
			s.Push(i)
		}
		for i := 0; i < pops; i++ {
			s.Pop()
		}

		assert.GreaterOrEqual(t, s.Depth(), 0)
	})
}

// roll(depth, n) followed by roll(depth, -n) is the identity on the
// top `depth` entries, for any n, when 0 <= depth <= stack depth.
func TestRotateInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Int(), 1, 20).Draw(t, "values")
		s := New()
		for _, v := range values {
			s.Push(v)
		}

		depth := rapid.IntRange(0, len(values)).Draw(t, "depth")
		n := rapid.IntRange(-50, 50).Draw(t, "n")

		before := s.Values()
		s.Rotate(depth, n)
		s.Rotate(depth, -n)

		assert.Equal(t, before, s.Values())
	})
}

package index

import (
	"testing"

	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Traversal(t *testing.T) {
	f := newIntFunction(t)
	for _, arg := range []int{1, 2, 3} {
		f.Set(point.New(arg, arg*10))
	}

	c := f.Cursor()
	defer c.Close()

	var args []int
	for p, ok := c.Current(); ok; p, ok = c.Current() {
		args = append(args, p.Arg())
		if !c.Next() {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, args, "Expected full forward traversal")

	require.True(t, c.Last(), "Expected Last to reposition the cursor")
	p, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 3, p.Arg())

	require.True(t, c.Prev(), "Expected Prev from the last point")
	p, _ = c.Current()
	assert.Equal(t, 2, p.Arg())

	require.True(t, c.First())
	p, _ = c.Current()
	assert.Equal(t, 1, p.Arg())
}

func TestCursor_SeekTo(t *testing.T) {
	f := newIntFunction(t)
	for _, arg := range []int{1, 3, 5} {
		f.Set(point.New(arg, arg))
	}

	c := f.Cursor()
	defer c.Close()

	require.True(t, c.SeekTo(point.New(2, 0)), "Expected seek to land on the next argument")
	p, _ := c.Current()
	assert.Equal(t, 3, p.Arg())

	assert.False(t, c.SeekTo(point.New(6, 0)), "Expected seek past the end to fail")
}

func TestCursor_Empty(t *testing.T) {
	f := newIntFunction(t)

	c := f.Cursor()
	defer c.Close()

	_, ok := c.Current()
	assert.False(t, ok, "Expected no current point on an empty function")
	assert.False(t, c.Next(), "Expected Next to stop immediately")
}

func TestCursor_InvalidatedByMutation(t *testing.T) {
	f := newIntFunction(t)
	f.Set(point.New(1, 10))
	f.Set(point.New(2, 20))

	c := f.Cursor()
	defer c.Close()

	_, ok := c.Current()
	require.True(t, ok)

	f.Set(point.New(3, 30))

	assert.False(t, c.Next(), "Expected mutation to end the iteration")
	_, ok = c.Current()
	assert.False(t, ok, "Expected no current point after invalidation")

	// A fresh cursor restarts the traversal and sees the mutation.
	c2 := f.Cursor()
	defer c2.Close()
	n := 0
	for _, ok := c2.Current(); ok; _, ok = c2.Current() {
		n++
		if !c2.Next() {
			break
		}
	}
	assert.Equal(t, 3, n, "Expected a fresh cursor to see all points")
}

func TestCursor_CopyDoesNotInvalidate(t *testing.T) {
	f := newIntFunction(t)
	f.Set(point.New(1, 10))
	f.Set(point.New(2, 20))

	c := f.Cursor()
	defer c.Close()

	g := f.Copy()
	g.Set(point.New(3, 30))

	assert.True(t, c.Next(), "Expected mutation of a copy to leave the cursor live")
}

func TestCursor_Close(t *testing.T) {
	f := newIntFunction(t)
	f.Set(point.New(1, 10))

	c := f.Cursor()
	c.Close()

	_, ok := c.Current()
	assert.False(t, ok, "Expected no reads after Close")
	assert.False(t, c.Next())
	c.Close() // double close is harmless
}

func TestCursor_Maxima(t *testing.T) {
	m := NewMaxima[int, int](compare.Natural[int](), compare.Natural[int]())
	m.Insert(point.New(2, 20))
	m.Insert(point.New(4, 30))

	c := m.Cursor()
	defer c.Close()

	p, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 4, p.Arg(), "Expected the largest value first")

	require.True(t, c.Next())
	p, _ = c.Current()
	assert.Equal(t, 2, p.Arg())

	assert.False(t, c.Next(), "Expected end of maxima iteration")
}

package index

import (
	"github.com/Valiors/Function-Maxima/function/point"
)

// Cursor returns a cursor positioned at the first point of the function.
func (f *Function[A, V]) Cursor() *Cursor[A, V] {
	c := &Cursor[A, V]{it: f.tree.Iter(), ver: &f.version, seen: f.version}
	c.valid = c.it.First()
	return c
}

// Cursor returns a cursor positioned at the first (largest-value) maximum.
func (m *Maxima[A, V]) Cursor() *Cursor[A, V] {
	c := &Cursor[A, V]{it: m.tree.Iter(), ver: &m.version, seen: m.version}
	c.valid = c.it.First()
	return c
}

// live reports whether the cursor may still read from its index.
func (c *Cursor[A, V]) live() bool {
	return !c.closed && *c.ver == c.seen
}

// Next advances the cursor. Returns false for stop iteration.
func (c *Cursor[A, V]) Next() bool {
	if !c.live() || !c.valid {
		c.valid = false
		return false
	}
	c.valid = c.it.Next()
	return c.valid
}

// Prev moves the cursor back. Returns false for stop iteration.
func (c *Cursor[A, V]) Prev() bool {
	if !c.live() || !c.valid {
		c.valid = false
		return false
	}
	c.valid = c.it.Prev()
	return c.valid
}

// First moves the cursor to the first point.
func (c *Cursor[A, V]) First() bool {
	if !c.live() {
		c.valid = false
		return false
	}
	c.valid = c.it.First()
	return c.valid
}

// Last moves the cursor to the last point.
func (c *Cursor[A, V]) Last() bool {
	if !c.live() {
		c.valid = false
		return false
	}
	c.valid = c.it.Last()
	return c.valid
}

// SeekTo moves the cursor to the first point at or after pivot in the
// index order. Only the key fields of pivot matter: the argument for a
// function cursor, the (value, argument) pair for a maxima cursor.
func (c *Cursor[A, V]) SeekTo(pivot point.Point[A, V]) bool {
	if !c.live() {
		c.valid = false
		return false
	}
	c.valid = c.it.Seek(pivot)
	return c.valid
}

// Current retrieves the point under the cursor.
func (c *Cursor[A, V]) Current() (point.Point[A, V], bool) {
	if !c.live() || !c.valid {
		var zero point.Point[A, V]
		return zero, false
	}
	return c.it.Item(), true
}

// Close releases the cursor. The cursor must not be used afterwards.
func (c *Cursor[A, V]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.valid = false
	c.it.Release()
}

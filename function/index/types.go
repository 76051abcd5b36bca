package index

import (
	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/point"
	"github.com/tidwall/btree"
)

const (
	DEFAULT_DEG_SIZE = 10
)

// Function is an ordered index of points sorted by increasing argument.
// Arguments are unique up to equivalence after every completed operation.
//
// The index is single-threaded by design; callers needing cross-thread
// access must synchronize externally.
type Function[A, V any] struct {
	tree *btree.BTreeG[point.Point[A, V]]
	args compare.Comparator[A]

	// version counts mutations of this exact instance. Cursors use it to
	// detect that they were invalidated.
	version uint64

	stats Stats
}

// Maxima is an ordered index of points sorted by decreasing value, then
// increasing argument, so that iteration yields the largest value first
// with ties broken by the smallest argument.
type Maxima[A, V any] struct {
	tree *btree.BTreeG[point.Point[A, V]]

	version uint64
}

// Cursor walks an index in its native order. It reflects the instance as it
// was when the cursor was created; any later mutation of that same instance
// ends the iteration. A fresh cursor restarts the traversal.
type Cursor[A, V any] struct {
	it     btree.IterG[point.Point[A, V]]
	ver    *uint64
	seen   uint64
	valid  bool
	closed bool
}

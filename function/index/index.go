package index

import (
	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/point"
	"github.com/tidwall/btree"
)

// NewFunction creates an empty argument-ordered index.
func NewFunction[A, V any](args compare.Comparator[A], degree ...int) *Function[A, V] {
	if args == nil {
		panic("Function-Maxima: NewFunction called with nil comparator")
	}

	f := &Function[A, V]{args: args}
	f.tree = btree.NewBTreeGOptions(func(a, b point.Point[A, V]) bool {
		return args.Compare(a.Arg(), b.Arg()) < 0
	}, treeOptions(degree))
	return f
}

// NewMaxima creates an empty maxima index ordered by decreasing value and
// increasing argument.
func NewMaxima[A, V any](args compare.Comparator[A], values compare.Comparator[V], degree ...int) *Maxima[A, V] {
	if args == nil || values == nil {
		panic("Function-Maxima: NewMaxima called with nil comparator")
	}

	m := &Maxima[A, V]{}
	m.tree = btree.NewBTreeGOptions(func(a, b point.Point[A, V]) bool {
		if c := values.Compare(a.Value(), b.Value()); c != 0 {
			return c > 0
		}
		return args.Compare(a.Arg(), b.Arg()) < 0
	}, treeOptions(degree))
	return m
}

func treeOptions(degree []int) btree.Options {
	opts := btree.Options{NoLocks: true, Degree: DEFAULT_DEG_SIZE}
	if len(degree) > 0 {
		if degree[0] <= 1 {
			panic("Function-Maxima: degree must be greater than 1")
		}
		opts.Degree = degree[0]
	}
	return opts
}

// pivot builds a lookup key for an argument. Only the argument participates
// in the ordering of a Function tree.
func (f *Function[A, V]) pivot(arg A) point.Point[A, V] {
	var zero V
	return point.New(arg, zero)
}

// Get returns the point stored at an argument equivalent to arg.
func (f *Function[A, V]) Get(arg A) (point.Point[A, V], bool) {
	f.stats.Reads++
	return f.tree.Get(f.pivot(arg))
}

// Set inserts p, replacing any point at an equivalent argument.
// Returns the replaced point, if one existed.
func (f *Function[A, V]) Set(p point.Point[A, V]) (point.Point[A, V], bool) {
	f.version++
	f.stats.Writes++
	return f.tree.Set(p)
}

// Delete removes the point at an argument equivalent to arg.
// Returns the removed point, if one existed.
func (f *Function[A, V]) Delete(arg A) (point.Point[A, V], bool) {
	f.version++
	f.stats.Deletes++
	return f.tree.Delete(f.pivot(arg))
}

// Prev returns the greatest point whose argument orders strictly before arg.
func (f *Function[A, V]) Prev(arg A) (prev point.Point[A, V], ok bool) {
	f.tree.Descend(f.pivot(arg), func(p point.Point[A, V]) bool {
		if compare.Equivalent(f.args, p.Arg(), arg) {
			return true // the point at arg itself
		}
		prev, ok = p, true
		return false
	})
	return prev, ok
}

// Next returns the least point whose argument orders strictly after arg.
func (f *Function[A, V]) Next(arg A) (next point.Point[A, V], ok bool) {
	f.tree.Ascend(f.pivot(arg), func(p point.Point[A, V]) bool {
		if compare.Equivalent(f.args, p.Arg(), arg) {
			return true
		}
		next, ok = p, true
		return false
	})
	return next, ok
}

// Scan visits every point in increasing argument order.
func (f *Function[A, V]) Scan(iter func(p point.Point[A, V]) bool) {
	f.tree.Scan(iter)
}

// Len returns the number of stored points.
func (f *Function[A, V]) Len() int {
	return f.tree.Len()
}

// Copy returns a structurally shared copy of the index. The copy starts
// with fresh mutation and stats counters; mutating it does not invalidate
// cursors of the original.
func (f *Function[A, V]) Copy() *Function[A, V] {
	return &Function[A, V]{tree: f.tree.Copy(), args: f.args, stats: f.stats}
}

// Stats returns the operation counters recorded so far.
func (f *Function[A, V]) Stats() Stats {
	return f.stats
}

// Has reports whether a point equal to p under the maxima ordering is
// indexed.
func (m *Maxima[A, V]) Has(p point.Point[A, V]) bool {
	_, ok := m.tree.Get(p)
	return ok
}

// Insert adds p to the maxima index.
func (m *Maxima[A, V]) Insert(p point.Point[A, V]) {
	m.version++
	m.tree.Set(p)
}

// Remove deletes p from the maxima index. Removing an absent point is a
// no-op.
func (m *Maxima[A, V]) Remove(p point.Point[A, V]) {
	m.version++
	m.tree.Delete(p)
}

// Scan visits every maximum, largest value first, ties by smallest argument.
func (m *Maxima[A, V]) Scan(iter func(p point.Point[A, V]) bool) {
	m.tree.Scan(iter)
}

// Len returns the number of indexed maxima.
func (m *Maxima[A, V]) Len() int {
	return m.tree.Len()
}

// Copy returns a structurally shared copy of the index.
func (m *Maxima[A, V]) Copy() *Maxima[A, V] {
	return &Maxima[A, V]{tree: m.tree.Copy()}
}

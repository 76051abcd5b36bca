package point

// Point is an immutable (argument, value) pair. The argument and value live
// in two independently shareable read-only cells so that superseding points
// and copy-on-write snapshots can alias the same payloads.
type Point[A, V any] struct {
	arg   *A
	value *V
}

// New creates a point with fresh argument and value cells.
func New[A, V any](arg A, value V) Point[A, V] {
	return Point[A, V]{arg: &arg, value: &value}
}

// Arg returns the argument of the point.
func (p Point[A, V]) Arg() A {
	return *p.arg
}

// Value returns the value of the point.
func (p Point[A, V]) Value() V {
	return *p.value
}

// SharesArg reports whether p and q alias the same argument cell.
func (p Point[A, V]) SharesArg(q Point[A, V]) bool {
	return p.arg == q.arg
}

// SharesValue reports whether p and q alias the same value cell.
func (p Point[A, V]) SharesValue(q Point[A, V]) bool {
	return p.value == q.value
}

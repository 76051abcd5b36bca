package compare

import "cmp"

// Comparator defines a strict weak ordering over T.
// Compare returns a negative number if a orders before b, a positive number
// if b orders before a, and zero if neither orders before the other. A zero
// result means the two values are equivalent, not necessarily equal.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// Func adapts an ordinary comparison function to the Comparator interface.
type Func[T any] func(a, b T) int

func (f Func[T]) Compare(a, b T) int { return f(a, b) }

// Natural returns a comparator using the natural ordering of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return Func[T](func(a, b T) int { return cmp.Compare(a, b) })
}

// Equivalent reports whether neither a nor b orders before the other.
func Equivalent[T any](c Comparator[T], a, b T) bool {
	return c.Compare(a, b) == 0
}

// Less reports whether a orders strictly before b.
func Less[T any](c Comparator[T], a, b T) bool {
	return c.Compare(a, b) < 0
}

// LessOrEqual reports whether a orders before b or is equivalent to it.
func LessOrEqual[T any](c Comparator[T], a, b T) bool {
	return c.Compare(a, b) <= 0
}

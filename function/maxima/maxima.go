// FunctionMaxima public surface. A few notes on implementation:
//  1. Reads delegate straight to the shared implementation.
//  2. Mutations go through mutate, which ensures exclusive ownership first.
//  3. The engine gives every mutation the strong failure guarantee, so an
//     in-place mutation of an exclusively owned implementation is safe too.

package maxima

import (
	"context"

	"github.com/Valiors/Function-Maxima/function/index"
	"github.com/Valiors/Function-Maxima/function/point"
	"github.com/Valiors/Function-Maxima/function/txn"
)

// SetValue maps arg to value. Setting a value equivalent to the stored one
// is a guaranteed no-op. On error the function is observably unchanged.
func (fm *FunctionMaxima[A, V]) SetValue(arg A, value V) error {
	return fm.mutate(func(e *txn.Engine[A, V]) error {
		return e.SetValue(arg, value)
	})
}

// Erase removes the entry at arg, if any. On error the function is
// observably unchanged.
func (fm *FunctionMaxima[A, V]) Erase(arg A) error {
	return fm.mutate(func(e *txn.Engine[A, V]) error {
		return e.Erase(arg)
	})
}

// ValueAt returns the value at arg. Returns ErrInvalidArg if no entry
// exists for an equivalent argument.
func (fm *FunctionMaxima[A, V]) ValueAt(arg A) (V, error) {
	p, ok := fm.impl.fn.Get(arg)
	if !ok {
		var zero V
		return zero, ErrInvalidArg
	}
	return p.Value(), nil
}

// Size returns the number of entries in the function, not the maxima count.
func (fm *FunctionMaxima[A, V]) Size() int {
	return fm.impl.fn.Len()
}

// Copy returns a handle sharing this implementation. O(1); the
// implementation is duplicated lazily on the first mutation through either
// handle while still shared.
func (fm *FunctionMaxima[A, V]) Copy() *FunctionMaxima[A, V] {
	fm.impl.refs.Add(1)
	return &FunctionMaxima[A, V]{impl: fm.impl}
}

// Cursor returns a cursor over the function in increasing argument order.
func (fm *FunctionMaxima[A, V]) Cursor() *Cursor[A, V] {
	return &Cursor[A, V]{Cursor: fm.impl.fn.Cursor()}
}

// MaximaCursor returns a cursor over the local maxima, largest value
// first, ties broken by smallest argument.
func (fm *FunctionMaxima[A, V]) MaximaCursor() *Cursor[A, V] {
	return &Cursor[A, V]{Cursor: fm.impl.mx.Cursor()}
}

// Ascend visits every point in increasing argument order.
func (fm *FunctionMaxima[A, V]) Ascend(iter func(p point.Point[A, V]) bool) {
	fm.impl.fn.Scan(iter)
}

// AscendMaxima visits every local maximum in maxima order.
func (fm *FunctionMaxima[A, V]) AscendMaxima(iter func(p point.Point[A, V]) bool) {
	fm.impl.mx.Scan(iter)
}

// List returns all points of the function in increasing argument order.
func (fm *FunctionMaxima[A, V]) List(ctx context.Context) []point.Point[A, V] {
	if ctx == nil {
		panic("Function-Maxima: List called with nil context")
	}

	out := make([]point.Point[A, V], 0, fm.impl.fn.Len())
	fm.impl.fn.Scan(func(p point.Point[A, V]) bool {
		if isContextCancelled(ctx) {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}

// MaximaList returns all local maxima in maxima order.
func (fm *FunctionMaxima[A, V]) MaximaList(ctx context.Context) []point.Point[A, V] {
	if ctx == nil {
		panic("Function-Maxima: MaximaList called with nil context")
	}

	out := make([]point.Point[A, V], 0, fm.impl.mx.Len())
	fm.impl.mx.Scan(func(p point.Point[A, V]) bool {
		if isContextCancelled(ctx) {
			return false
		}
		out = append(out, p)
		return true
	})
	return out
}

// Stats returns the operation counters of the underlying function index.
func (fm *FunctionMaxima[A, V]) Stats() index.Stats {
	return fm.impl.fn.Stats()
}

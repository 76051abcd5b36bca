package txn

import (
	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/index"
	"github.com/Valiors/Function-Maxima/function/point"
)

func NewEngine[A, V any](fn *index.Function[A, V], mx *index.Maxima[A, V],
	values compare.Comparator[V]) *Engine[A, V] {
	if fn == nil || mx == nil {
		panic("Function-Maxima: NewEngine called with nil index")
	}
	if values == nil {
		panic("Function-Maxima: NewEngine called with nil comparator")
	}

	return &Engine[A, V]{fn: fn, mx: mx, values: values}
}

// SetValue maps arg to value and recomputes maxima membership for the
// point and both of its argument-order neighbors.
//
// Setting a value equivalent to the one already stored at an equivalent
// argument is a guaranteed no-op: no allocation, no index mutation, no
// failure possible.
func (e *Engine[A, V]) SetValue(arg A, value V) error {
	old, existed := e.fn.Get(arg)
	if existed && compare.Equivalent(e.values, old.Value(), value) {
		return nil
	}

	np := point.New(arg, value)
	prev, hasPrev := e.fn.Prev(arg)
	next, hasNext := e.fn.Next(arg)

	// Membership is decided against the post-edit neighborhood: every
	// lookup below sees the current tree, with np standing in for whatever
	// is stored at arg.
	var inserts, removals []op
	stage := e.stager(&inserts, &removals)

	// Next, current, previous; insertions are applied per position while
	// removals wait for the commit phase.
	if hasNext {
		nn, hasNN := e.fn.Next(next.Arg())
		stage(next, e.leq(value, next.Value()) &&
			(!hasNN || e.leq(nn.Value(), next.Value())))
	}
	stage(np, (!hasPrev || e.leq(prev.Value(), value)) &&
		(!hasNext || e.leq(next.Value(), value)))
	if hasPrev {
		pp, hasPP := e.fn.Prev(prev.Arg())
		stage(prev, (!hasPP || e.leq(pp.Value(), prev.Value())) &&
			e.leq(value, prev.Value()))
	}

	ops := append(inserts, removals...)
	ops = append(ops, op{
		step: STEP_STORE_SET,
		do:   func() { e.fn.Set(np) },
		undo: func() {
			if existed {
				e.fn.Set(old)
			} else {
				e.fn.Delete(arg)
			}
		},
	})
	if existed && e.mx.Has(old) {
		ops = append(ops, e.removeMaximumOp(old))
	}

	return e.apply(ops)
}

// Erase removes the point at arg and recomputes maxima membership for both
// of its argument-order neighbors. Erasing an absent argument is a no-op.
func (e *Engine[A, V]) Erase(arg A) error {
	old, existed := e.fn.Get(arg)
	if !existed {
		return nil
	}

	prev, hasPrev := e.fn.Prev(arg)
	next, hasNext := e.fn.Next(arg)

	// The target is excluded from every neighborhood: prev and next become
	// adjacent once it is gone.
	var inserts, removals []op
	stage := e.stager(&inserts, &removals)

	if hasNext {
		nn, hasNN := e.fn.Next(next.Arg())
		stage(next, (!hasPrev || e.leq(prev.Value(), next.Value())) &&
			(!hasNN || e.leq(nn.Value(), next.Value())))
	}
	if hasPrev {
		pp, hasPP := e.fn.Prev(prev.Arg())
		stage(prev, (!hasPP || e.leq(pp.Value(), prev.Value())) &&
			(!hasNext || e.leq(next.Value(), prev.Value())))
	}

	ops := append(inserts, removals...)
	ops = append(ops, op{
		step: STEP_STORE_DELETE,
		do:   func() { e.fn.Delete(arg) },
		undo: func() { e.fn.Set(old) },
	})
	if e.mx.Has(old) {
		ops = append(ops, e.removeMaximumOp(old))
	}

	return e.apply(ops)
}

func (e *Engine[A, V]) leq(a, b V) bool {
	return compare.LessOrEqual(e.values, a, b)
}

// stager returns a function that compares a position's wanted maxima
// status against its indexed status and stages the fixup, if any.
func (e *Engine[A, V]) stager(inserts, removals *[]op) func(p point.Point[A, V], should bool) {
	return func(p point.Point[A, V], should bool) {
		indexed := e.mx.Has(p)
		switch {
		case should && !indexed:
			*inserts = append(*inserts, e.insertMaximumOp(p))
		case !should && indexed:
			*removals = append(*removals, e.removeMaximumOp(p))
		}
	}
}

func (e *Engine[A, V]) insertMaximumOp(p point.Point[A, V]) op {
	return op{
		step: STEP_INSERT_MAXIMUM,
		do:   func() { e.mx.Insert(p) },
		undo: func() { e.mx.Remove(p) },
	}
}

func (e *Engine[A, V]) removeMaximumOp(p point.Point[A, V]) op {
	return op{
		step: STEP_REMOVE_MAXIMUM,
		do:   func() { e.mx.Remove(p) },
		undo: func() { e.mx.Insert(p) },
	}
}

// apply runs the staged mutations in order. On a fault it undoes the
// already-applied prefix in reverse and returns the error, leaving both
// indices exactly as they were before the operation.
func (e *Engine[A, V]) apply(ops []op) error {
	for i, o := range ops {
		if e.FaultHook != nil {
			if err := e.FaultHook(o.step); err != nil {
				for j := i - 1; j >= 0; j-- {
					ops[j].undo()
				}
				return err
			}
		}
		o.do()
	}
	return nil
}

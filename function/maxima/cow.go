package maxima

import (
	"sync/atomic"

	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/index"
	"github.com/Valiors/Function-Maxima/function/txn"
	"github.com/bwmarrin/snowflake"
)

func init() {
	snowflake.Epoch = 1735689600000 // Wed Jan 01 2025 00:00:00 GMT+0000

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	SnowflakeNode = node
}

var (
	SnowflakeNode *snowflake.Node
)

// impl is one function-store plus maxima-index pair, shared by any number
// of handles. Every instance, fresh or cloned, gets its own snowflake ID so
// that clone-on-write is observable.
type impl[A, V any] struct {
	id snowflake.ID

	fn  *index.Function[A, V]
	mx  *index.Maxima[A, V]
	eng *txn.Engine[A, V]

	args   compare.Comparator[A]
	values compare.Comparator[V]

	// refs counts the handles sharing this implementation.
	refs *atomic.Int32
}

func newImpl[A, V any](args compare.Comparator[A], values compare.Comparator[V], degree int) *impl[A, V] {
	fn := index.NewFunction[A, V](args, degree)
	mx := index.NewMaxima[A, V](args, values, degree)

	im := &impl[A, V]{
		id:     SnowflakeNode.Generate(),
		fn:     fn,
		mx:     mx,
		eng:    txn.NewEngine(fn, mx, values),
		args:   args,
		values: values,
		refs:   &atomic.Int32{},
	}
	im.refs.Store(1)
	return im
}

// clone returns an exclusively owned structural copy. The trees share
// nodes with the original until either side writes.
func (im *impl[A, V]) clone() *impl[A, V] {
	fn := im.fn.Copy()
	mx := im.mx.Copy()

	c := &impl[A, V]{
		id:     SnowflakeNode.Generate(),
		fn:     fn,
		mx:     mx,
		eng:    txn.NewEngine(fn, mx, im.values),
		args:   im.args,
		values: im.values,
		refs:   &atomic.Int32{},
	}
	c.eng.FaultHook = im.eng.FaultHook
	c.refs.Store(1)
	return c
}

// mutate runs op against an exclusively owned implementation. A shared
// implementation is cloned first and swapped in only if op succeeds; on
// failure the clone is discarded and the handle keeps pointing at the
// original, untouched implementation.
func (fm *FunctionMaxima[A, V]) mutate(op func(e *txn.Engine[A, V]) error) error {
	if fm.impl.refs.Load() > 1 {
		clone := fm.impl.clone()
		if err := op(clone.eng); err != nil {
			return err
		}
		fm.impl.refs.Add(-1)
		fm.impl = clone
		return nil
	}
	return op(fm.impl.eng)
}

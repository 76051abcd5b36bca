package maxima

import (
	"cmp"

	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/index"
	"github.com/Valiors/Function-Maxima/function/txn"
)

type Option func(s *settings)

type settings struct {
	degree int
	hook   func(step txn.Step) error
}

// New creates an empty function using the natural orderings of A and V.
func New[A, V cmp.Ordered](opts ...Option) *FunctionMaxima[A, V] {
	return NewWithComparators[A, V](compare.Natural[A](), compare.Natural[V](), opts...)
}

// NewWithComparators creates an empty function with caller-supplied
// orderings. The comparators must define strict weak orderings and stay
// consistent for the lifetime of the instance.
func NewWithComparators[A, V any](args compare.Comparator[A], values compare.Comparator[V], opts ...Option) *FunctionMaxima[A, V] {
	if args == nil || values == nil {
		panic("Function-Maxima: New called with nil comparator")
	}

	s := settings{degree: index.DEFAULT_DEG_SIZE}
	for _, opt := range opts {
		opt(&s)
	}

	im := newImpl[A, V](args, values, s.degree)
	im.eng.FaultHook = s.hook
	return &FunctionMaxima[A, V]{impl: im}
}

// WithDegree sets the btree degree of both indices.
func WithDegree(degree int) Option {
	if degree <= 1 {
		panic("Function-Maxima: degree must be greater than 1")
	}
	return func(s *settings) {
		s.degree = degree
	}
}

// WithFaultHook installs a hook consulted before every staged index
// mutation. A non-nil return aborts the mutating call and rolls it back.
// Intended for failure-injection tests.
func WithFaultHook(hook func(step txn.Step) error) Option {
	return func(s *settings) {
		s.hook = hook
	}
}

package txn

import (
	"github.com/Valiors/Function-Maxima/function/compare"
	"github.com/Valiors/Function-Maxima/function/index"
)

// Step identifies one staged index mutation of an engine operation.
type Step string

const (
	STEP_INSERT_MAXIMUM Step = "INSERT_MAXIMUM"
	STEP_REMOVE_MAXIMUM Step = "REMOVE_MAXIMUM"
	STEP_STORE_SET      Step = "STORE_SET"
	STEP_STORE_DELETE   Step = "STORE_DELETE"
)

// Engine applies point edits to a function and its maxima index as one
// all-or-nothing unit. A failed operation leaves both indices exactly as
// they were before the call.
type Engine[A, V any] struct {
	fn     *index.Function[A, V]
	mx     *index.Maxima[A, V]
	values compare.Comparator[V]

	// FaultHook, when non-nil, is consulted before every staged index
	// mutation. A non-nil return aborts the operation and rolls back every
	// mutation already applied. Tests use it to simulate allocation
	// failures.
	FaultHook func(step Step) error
}

// op is a single staged mutation with its exact inverse.
type op struct {
	step Step
	do   func()
	undo func()
}

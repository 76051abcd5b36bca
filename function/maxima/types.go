package maxima

import (
	"context"
	"errors"

	"github.com/Valiors/Function-Maxima/function/index"
)

var (
	// ErrInvalidArg is returned by ValueAt when no entry exists for the
	// given argument.
	ErrInvalidArg = errors.New("invalid argument value")
)

// FunctionMaxima is a mutable partial mapping from ordered arguments to
// ordered values that incrementally maintains the set of its local maxima.
//
// Copies made with Copy share one implementation; the implementation is
// deep-copied lazily, on the first mutation through a sharing handle.
// A single implementation must not be mutated from multiple goroutines.
type FunctionMaxima[A, V any] struct {
	impl *impl[A, V]
}

// Cursor is an alias of index.Cursor, just provided in the public package.
type Cursor[A, V any] struct {
	*index.Cursor[A, V]
}

func isContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

package vec

import (
	"github.com/pkg/errors"
)

// Clone returns a fully independent copy of a with the exact same
// capacity and the live prefix copied element by element. For element
// types holding references the copy is shallow; use CloneFunc for
// failable deep copies.
func (a *Array[T]) Clone() *Array[T] {
	out := &Array[T]{
		data: make([]T, len(a.data)),
		size: a.size,
	}
	copy(out.data, a.data[:a.size])
	return out
}

// CloneFunc is Clone for element types whose copy can fail: each live
// element is passed through fn and the result stored in the copy. On
// the first error the partially built copy is discarded and the error
// returned with the failing index attached; a is never modified.
func (a *Array[T]) CloneFunc(fn func(T) (T, error)) (*Array[T], error) {
	out := &Array[T]{
		data: make([]T, len(a.data)),
		size: a.size,
	}
	for i := range a.size {
		v, err := fn(a.data[i])
		if err != nil {
			return nil, errors.Wrapf(err, "vec: cloning element %d", i)
		}
		out.data[i] = v
	}
	return out, nil
}

// Assign replaces a's contents with a copy of other. The copy is built
// in full first and committed with a single Swap, so a keeps its exact
// previous state if building the copy fails. This always allocates,
// even when a's capacity would fit other's elements in place.
func (a *Array[T]) Assign(other *Array[T]) {
	a.Swap(other.Clone())
}

// AssignFunc is Assign with a failable element copy. On error a is
// observably unchanged.
func (a *Array[T]) AssignFunc(other *Array[T], fn func(T) (T, error)) error {
	tmp, err := other.CloneFunc(fn)
	if err != nil {
		return err
	}
	a.Swap(tmp)
	return nil
}

// Move transfers a's buffer, capacity and length to the returned Array
// without touching any element. a is left empty with no allocation,
// valid for reuse. Never fails.
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{data: a.data, size: a.size}
	a.data, a.size = nil, 0
	return out
}

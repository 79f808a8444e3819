package vec

import "iter"

// Slice returns the live range [0, Len()) as a view over the backing
// buffer. No allocation. The view is invalidated by any operation that
// reallocates or shifts storage: Resize past capacity, Insert, Erase,
// Swap, Assign.
func (a *Array[T]) Slice() []T {
	return a.data[:a.size:a.size]
}

// Values ranges over the live elements in order. The sequence reads
// the backing buffer directly; mutating the array during iteration
// invalidates it the same way it invalidates Slice.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.size {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

// All ranges over (index, element) pairs of the live range in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.size {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

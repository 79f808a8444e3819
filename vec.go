// Package vec implements a value-semantic resizable array backed by a
// single contiguous buffer that the Array manages itself: growth,
// element shifting and ownership transfer are explicit operations
// rather than delegated to append.
//
// Indexed access is unchecked against the live length. Callers are
// responsible for staying inside [0, Len()); reads past the live range
// but inside capacity observe unspecified slot contents. This is a
// deliberate performance trade-off, there is no checked variant.
//
// An Array must not be used from multiple goroutines without external
// synchronization.
package vec

// DefaultCapacity is the slot count allocated for an Array constructed
// with a length below it.
const DefaultCapacity = 42

// Array is a growable container of T with a live prefix of Len()
// elements inside a buffer of Cap() slots. The zero value is an empty
// array with no allocation, ready to use.
type Array[T any] struct {
	data []T // len(data) is the capacity, nil only when capacity is zero
	size int // live prefix, 0 <= size <= len(data)
}

// New returns an empty Array with DefaultCapacity slots.
func New[T any]() *Array[T] {
	return WithLen[T](0)
}

// WithLen returns an Array of length n holding zero values, with
// capacity max(n, DefaultCapacity).
func WithLen[T any](n int) *Array[T] {
	return &Array[T]{
		data: make([]T, max(n, DefaultCapacity)),
		size: n,
	}
}

// Len returns the count of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the total allocated slot count.
func (a *Array[T]) Cap() int { return len(a.data) }

// IsEmpty reports whether no live elements are present.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Get reads the slot at index i. Not checked against Len: i must be
// inside the allocated capacity, and only indexes below Len read a
// meaningful value.
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set writes the slot at index i. Same contract as Get.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Ref returns a pointer to the slot at index i. The pointer is
// invalidated by any operation that reallocates or shifts storage.
// Same contract as Get.
func (a *Array[T]) Ref(i int) *T { return &a.data[i] }

// Resize sets the live length to n. Within capacity no reallocation
// happens; slots vacated by a shrink are cleared, so a later grow
// exposes zero values. Beyond capacity a buffer of
// max(2*Cap(), n) slots is allocated and the live prefix is copied
// over, which keeps repeated single-element growth amortized linear.
func (a *Array[T]) Resize(n int) {
	switch {
	case n > len(a.data):
		data := make([]T, max(2*len(a.data), n))
		copy(data, a.data[:a.size])
		a.data = data
	case n < a.size:
		clear(a.data[n:a.size])
	}
	a.size = n
}

// Insert grows the array by one and places v at index pos, shifting
// every element at or after pos one slot toward the end. Relative
// order of the shifted elements is preserved. pos must be in
// [0, Len()]; pos == Len() appends. Returns the inserted element's
// position.
func (a *Array[T]) Insert(pos int, v T) int {
	a.Resize(a.size + 1)
	copy(a.data[pos+1:a.size], a.data[pos:a.size-1])
	a.data[pos] = v
	return pos
}

// Erase removes the element at index pos, shifting every later element
// one slot toward the front. Capacity is retained. pos must be in
// [0, Len()). Returns the position now holding the element that
// followed the erased one, which equals Len() when the last element
// was erased.
func (a *Array[T]) Erase(pos int) int {
	copy(a.data[pos:a.size-1], a.data[pos+1:a.size])
	a.Resize(a.size - 1)
	return pos
}

// PushBack appends v, growing the buffer when full.
func (a *Array[T]) PushBack(v T) {
	a.Insert(a.size, v)
}

// PopBack removes the last element. The array must not be empty.
func (a *Array[T]) PopBack() {
	a.Erase(a.size - 1)
}

// Swap exchanges the full state of a and other in constant time. This
// is also the move-assignment primitive: after a.Swap(b), a owns what
// b held and vice versa.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
	a.size, other.size = other.size, a.size
}

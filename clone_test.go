package vec

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCloneIndependence(t *testing.T) {
	a := New[int]()
	for i := range 10 {
		a.PushBack(i)
	}
	b := a.Clone()
	require.Equal(t, a.Slice(), b.Slice())
	require.Equal(t, a.Cap(), b.Cap())

	b.Set(0, -1)
	b.PushBack(100)
	require.Equal(t, 0, a.Get(0))
	require.Equal(t, 10, a.Len())
}

func TestCloneFunc(t *testing.T) {
	a := New[[]byte]()
	a.PushBack([]byte("hello"))
	a.PushBack([]byte("world"))

	b, err := a.CloneFunc(func(v []byte) ([]byte, error) {
		return slices.Clone(v), nil
	})
	require.NoError(t, err)

	// Deep copy: no aliasing of element storage.
	b.Get(0)[0] = 'H'
	require.Equal(t, []byte("hello"), a.Get(0))
	require.Equal(t, []byte("Hello"), b.Get(0))
}

func TestCloneFuncStrongGuarantee(t *testing.T) {
	a := New[int]()
	for i := range 10 {
		a.PushBack(i)
	}
	before := slices.Collect(a.Values())

	boom := errors.New("boom")
	var calls int
	b, err := a.CloneFunc(func(v int) (int, error) {
		calls++
		if calls > 4 {
			return 0, boom
		}
		return v, nil
	})
	require.Nil(t, b)
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "element 4")
	require.Equal(t, before, slices.Collect(a.Values()))
}

func TestAssign(t *testing.T) {
	a := New[int]()
	a.PushBack(1)
	b := WithLen[int](3)
	b.Set(2, 7)

	a.Assign(b)
	require.Equal(t, []int{0, 0, 7}, a.Slice())

	// Full independence from the assigned-from array.
	b.Set(2, 8)
	require.Equal(t, 7, a.Get(2))
}

func TestAssignFuncFailureLeavesTargetUnchanged(t *testing.T) {
	a := New[int]()
	a.PushBack(42)
	src := WithLen[int](5)

	boom := errors.New("boom")
	err := a.AssignFunc(src, func(int) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{42}, a.Slice())
}

func TestMoveLeavesSourceEmpty(t *testing.T) {
	a := New[int]()
	for i := range 5 {
		a.PushBack(i)
	}
	keep := a.Ref(0)

	b := a.Move()
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.Equal(t, []int{0, 1, 2, 3, 4}, b.Slice())

	// No element was copied: b owns the same buffer a held.
	require.Same(t, keep, b.Ref(0))

	// The moved-from array is valid for reuse.
	a.PushBack(9)
	require.Equal(t, []int{9}, a.Slice())
	require.Equal(t, []int{0, 1, 2, 3, 4}, b.Slice())
}

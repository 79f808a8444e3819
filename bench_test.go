package vec

import "testing"

func BenchmarkPushBack(b *testing.B) {
	for b.Loop() {
		a := New[uint64]()
		for i := range uint64(1024) {
			a.PushBack(i)
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	for b.Loop() {
		a := New[uint64]()
		for i := range uint64(256) {
			a.Insert(0, i)
		}
	}
}

func BenchmarkValues(b *testing.B) {
	a := New[uint64]()
	for i := range uint64(4096) {
		a.PushBack(i)
	}
	var sink uint64
	for b.Loop() {
		for v := range a.Values() {
			sink += v
		}
	}
	_ = sink
}

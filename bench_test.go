package bitvec

import (
	"testing"
)

func BenchmarkTryToSet_Atomic(b *testing.B) {
	bm, err := New[Atomic](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	defer bm.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := uint64(i) & (1<<16 - 1)
		bm.TryToSet(idx)
		bm.Unset(idx)
	}
}

func BenchmarkTryToSet_Relaxed(b *testing.B) {
	bm, err := New[Relaxed](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	defer bm.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := uint64(i) & (1<<16 - 1)
		bm.TryToSet(idx)
		bm.Unset(idx)
	}
}

func BenchmarkSetFirstEmpty(b *testing.B) {
	bm, err := New[Atomic](1 << 16)
	if err != nil {
		b.Fatal(err)
	}
	defer bm.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := bm.SetFirstEmpty(0)
		bm.Unset(idx)
	}
}

func BenchmarkSetFirstEmpty_Contended(b *testing.B) {
	bm, err := New[Atomic](1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer bm.Close()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			idx := bm.SetFirstEmpty(0)
			bm.Unset(idx)
		}
	})
}

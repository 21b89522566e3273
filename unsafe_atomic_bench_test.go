package atomics

import (
	"sync/atomic"
	"testing"
)

func BenchmarkUnsafeAtomicInteger_Increment(b *testing.B) {
	b.Run("int64", func(b *testing.B) {
		a := NewInteger[int64](0)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a.WrappingIncrement(1, UpdateRelaxed)
			}
		})
	})
	b.Run("uint16", func(b *testing.B) {
		a := NewInteger[uint16](0)
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a.WrappingIncrement(1, UpdateRelaxed)
			}
		})
	})
	b.Run("sync/atomic", func(b *testing.B) {
		var a atomic.Int64
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				a.Add(1)
			}
		})
	})
}

func BenchmarkUnsafeAtomicInteger_PaddedCounters(b *testing.B) {
	b.Run("padded", func(b *testing.B) {
		benchCounters(b, func() UnsafeAtomicInteger[uint64] { return NewPaddedInteger[uint64](0) })
	})
	b.Run("unpadded", func(b *testing.B) {
		slots := make([]Slot[uint64], 64)
		next := 0
		benchCounters(b, func() UnsafeAtomicInteger[uint64] {
			a := IntegerAt[uint64](&slots[next])
			a.Initialize(0)
			next++
			return a
		})
	})
}

func benchCounters(b *testing.B, alloc func() UnsafeAtomicInteger[uint64]) {
	counters := make([]UnsafeAtomicInteger[uint64], 64)
	for i := range counters {
		counters[i] = alloc()
	}
	var id atomic.Int32
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		c := counters[int(id.Add(1)-1)%len(counters)]
		for pb.Next() {
			c.WrappingIncrement(1, UpdateRelaxed)
		}
	})
}

func BenchmarkUnsafeAtomic_Load(b *testing.B) {
	p := NewPointer(&node{1})
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = p.Load(LoadAcquiring)
		}
	})
}

func BenchmarkUnsafeAtomicPair(b *testing.B) {
	p := CreatePair[uint64, uint64, IntegerRepresentation[uint64], IntegerRepresentation[uint64]](
		Pair[uint64, uint64]{})
	b.Run("Load", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = p.Load(LoadAcquiring)
			}
		})
	})
	b.Run("CompareExchange", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			cur := p.Load(LoadRelaxed)
			for pb.Next() {
				next := Pair[uint64, uint64]{First: cur.First + 1, Second: cur.Second + 1}
				_, cur = p.CompareExchange(cur, next, UpdateAcquiringAndReleasing)
			}
		})
	})
}

func BenchmarkLazyReference_Load(b *testing.B) {
	ref := NewLazyReference[tracked]()
	ref.StoreIfNil(newTracked(1))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ref.Load()
		}
	})
}

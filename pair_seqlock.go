package atomics

import "sync/atomic"

// The portable double-word path. A sequence word guards the two halves:
// readers never write, they retry while the sequence is odd or changed
// under them; writers make the sequence odd, update both halves and
// publish the next even value. Both halves are read and written with
// atomic operations, so readers never race with writers.

func seqLoad(seq *uint32, w *[2]uint64) (lo, hi uint64) {
	spins := 0
	for {
		s1 := atomic.LoadUint32(seq)
		if s1&1 != 0 {
			delay(&spins)
			continue
		}
		lo = atomic.LoadUint64(&w[0])
		hi = atomic.LoadUint64(&w[1])
		if s2 := atomic.LoadUint32(seq); s1 == s2 {
			return lo, hi
		}
	}
}

func seqLock(seq *uint32) uint32 {
	spins := 0
	for {
		s := atomic.LoadUint32(seq)
		if s&1 == 0 && atomic.CompareAndSwapUint32(seq, s, s|1) {
			return s
		}
		delay(&spins)
	}
}

//go:nosplit
func seqUnlock(seq *uint32, s uint32) {
	atomic.StoreUint32(seq, s+2)
}

// seqCompareAndSwap replaces the pair with new if it holds old and
// returns the pair it found.
func seqCompareAndSwap(seq *uint32, w *[2]uint64, old, new [2]uint64) (prev [2]uint64, swapped bool) {
	s := seqLock(seq)
	prev[0] = atomic.LoadUint64(&w[0])
	prev[1] = atomic.LoadUint64(&w[1])
	if prev == old {
		atomic.StoreUint64(&w[0], new[0])
		atomic.StoreUint64(&w[1], new[1])
		swapped = true
	}
	seqUnlock(seq, s)
	return prev, swapped
}

func seqSwap(seq *uint32, w *[2]uint64, new [2]uint64) (prev [2]uint64) {
	s := seqLock(seq)
	prev[0] = atomic.LoadUint64(&w[0])
	prev[1] = atomic.LoadUint64(&w[1])
	atomic.StoreUint64(&w[0], new[0])
	atomic.StoreUint64(&w[1], new[1])
	seqUnlock(seq, s)
	return prev
}

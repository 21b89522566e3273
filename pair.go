package atomics

import (
	"sync/atomic"
	"unsafe"
)

// PairSlot is the double-width memory cell behind an UnsafeAtomicPair. It
// can be allocated by the caller and bound to a handle with PairAt. A
// PairSlot must not be copied after first use.
type PairSlot struct {
	_ [0]atomic.Uint64
	// words comes first so it is 8-byte aligned on 32-bit platforms too;
	// the 16-byte aligned pair sits at offset 0 or 8.
	words [3]uint64
	state slotState
	seq   uint32
}

// cell returns the 16-byte aligned double word inside s.
//
//go:nosplit
func (s *PairSlot) cell() *[2]uint64 {
	p := uintptr(unsafe.Pointer(&s.words))
	return (*[2]uint64)(unsafe.Pointer(&s.words[(p>>3)&1]))
}

func (s *PairSlot) load() [2]uint64 {
	w := s.cell()
	if useNativeDoubleWord {
		lo, hi := load128(w)
		return [2]uint64{lo, hi}
	}
	lo, hi := seqLoad(&s.seq, w)
	return [2]uint64{lo, hi}
}

func (s *PairSlot) compareAndSwap(old, new [2]uint64) ([2]uint64, bool) {
	w := s.cell()
	if useNativeDoubleWord {
		lo, hi, ok := cmpxchg128(w, old[0], old[1], new[0], new[1])
		return [2]uint64{lo, hi}, ok
	}
	return seqCompareAndSwap(&s.seq, w, old, new)
}

func (s *PairSlot) swap(new [2]uint64) [2]uint64 {
	if !useNativeDoubleWord {
		return seqSwap(&s.seq, s.cell(), new)
	}
	old := s.load()
	for {
		cur, ok := s.compareAndSwap(old, new)
		if ok {
			return cur
		}
		old = cur
	}
}

// Pair is the logical value of an UnsafeAtomicPair.
type Pair[E1, E2 any] struct {
	First  E1
	Second E2
}

// UnsafeAtomicPair holds two small values in one double-width slot and
// updates them jointly: no operation ever changes one half without the
// other. Each element is encoded into its own 64-bit half by its
// representation, which makes any word-storage Representation usable as
// an element (integers, bools, raw-representable wrappers).
//
// Pointer-shaped elements (*T, unsafe.Pointer, Unmanaged and their
// Optional forms) are not supported: a pointer stored in an integer half
// is invisible to the garbage collector, which could free its referent.
type UnsafeAtomicPair[E1, E2 any, R1 Representation[E1, uint64], R2 Representation[E2, uint64]] struct {
	slot *PairSlot
}

// CreatePair allocates a pair slot holding initial.
func CreatePair[E1, E2 any, R1 Representation[E1, uint64], R2 Representation[E2, uint64]](
	initial Pair[E1, E2],
) UnsafeAtomicPair[E1, E2, R1, R2] {
	p := PairAt[E1, E2, R1, R2](new(PairSlot))
	p.Initialize(initial)
	return p
}

// PairAt returns a handle for a caller-owned pair slot. The slot must be
// initialized with Initialize before any other operation.
//
//go:nosplit
func PairAt[E1, E2 any, R1 Representation[E1, uint64], R2 Representation[E2, uint64]](
	slot *PairSlot,
) UnsafeAtomicPair[E1, E2, R1, R2] {
	return UnsafeAtomicPair[E1, E2, R1, R2]{slot: slot}
}

func (p UnsafeAtomicPair[E1, E2, R1, R2]) encode(v Pair[E1, E2]) [2]uint64 {
	var r1 R1
	var r2 R2
	return [2]uint64{r1.Encode(v.First), r2.Encode(v.Second)}
}

func (p UnsafeAtomicPair[E1, E2, R1, R2]) decode(w [2]uint64) Pair[E1, E2] {
	var r1 R1
	var r2 R2
	return Pair[E1, E2]{First: r1.Decode(w[0]), Second: r2.Decode(w[1])}
}

func checkPairElements[E1, E2 any](op string) {
	if !debugChecks {
		return
	}
	var e1 E1
	var e2 E2
	if unsafe.Sizeof(e1) > 8 || unsafe.Sizeof(e2) > 8 {
		preconditionFailure(op, "pair element wider than a 64-bit half")
	}
}

// Initialize places the prepared encoding of initial in the slot. It is
// not an atomic operation and must happen before the slot is shared.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Initialize(initial Pair[E1, E2]) {
	var r1 R1
	var r2 R2
	checkPairElements[E1, E2]("initialize")
	p.slot.state.markLive()
	w := p.slot.cell()
	w[0] = r1.Prepare(initial.First)
	w[1] = r2.Prepare(initial.Second)
}

// Dispose tears down the slot and returns its final values.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Dispose() Pair[E1, E2] {
	var r1 R1
	var r2 R2
	p.slot.state.markDestroyed("dispose")
	w := p.slot.load()
	return Pair[E1, E2]{First: r1.Dispose(w[0]), Second: r2.Dispose(w[1])}
}

// Destroy tears down a slot obtained from CreatePair and returns its
// final values.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Destroy() Pair[E1, E2] {
	return p.Dispose()
}

// Load atomically loads both values.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Load(ordering LoadOrdering) Pair[E1, E2] {
	checkLoadOrdering("load", ordering)
	p.slot.state.checkLive("load")
	return p.decode(p.slot.load())
}

// Store atomically replaces both values.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Store(desired Pair[E1, E2], ordering StoreOrdering) {
	checkStoreOrdering("store", ordering)
	p.slot.state.checkLive("store")
	p.slot.swap(p.encode(desired))
}

// Exchange atomically replaces both values and returns the previous ones.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) Exchange(desired Pair[E1, E2], ordering UpdateOrdering) Pair[E1, E2] {
	checkUpdateOrdering("exchange", ordering)
	p.slot.state.checkLive("exchange")
	return p.decode(p.slot.swap(p.encode(desired)))
}

// CompareExchange replaces the pair with desired if both halves equal
// expected, and returns the pair observed in the slot.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) CompareExchange(
	expected, desired Pair[E1, E2],
	ordering UpdateOrdering,
) (exchanged bool, original Pair[E1, E2]) {
	return p.CompareExchangeExplicit(expected, desired, ordering, ordering.ImpliedFailureOrdering())
}

// CompareExchangeExplicit is CompareExchange with a separate ordering for
// the failure case.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) CompareExchangeExplicit(
	expected, desired Pair[E1, E2],
	success UpdateOrdering,
	failure LoadOrdering,
) (exchanged bool, original Pair[E1, E2]) {
	checkCompareExchangeOrderings("compareExchange", success, failure)
	p.slot.state.checkLive("compareExchange")
	prev, ok := p.slot.compareAndSwap(p.encode(expected), p.encode(desired))
	return ok, p.decode(prev)
}

// WeakCompareExchange is CompareExchange that may fail spuriously.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) WeakCompareExchange(
	expected, desired Pair[E1, E2],
	ordering UpdateOrdering,
) (exchanged bool, original Pair[E1, E2]) {
	return p.WeakCompareExchangeExplicit(expected, desired, ordering, ordering.ImpliedFailureOrdering())
}

// WeakCompareExchangeExplicit is WeakCompareExchange with a separate
// ordering for the failure case.
func (p UnsafeAtomicPair[E1, E2, R1, R2]) WeakCompareExchangeExplicit(
	expected, desired Pair[E1, E2],
	success UpdateOrdering,
	failure LoadOrdering,
) (exchanged bool, original Pair[E1, E2]) {
	checkCompareExchangeOrderings("weakCompareExchange", success, failure)
	p.slot.state.checkLive("weakCompareExchange")
	prev, ok := p.slot.compareAndSwap(p.encode(expected), p.encode(desired))
	return ok, p.decode(prev)
}

package atomics

import (
	"sync/atomic"
	"unsafe"
)

// Slot is the memory cell behind an UnsafeAtomic. It can be allocated by
// the caller, embedded in a larger structure, and bound to a handle
// with At. A Slot must not be copied after first use.
//
// The state word is zero-size in release builds and a whole aligned word
// in debug builds, so value is 8-byte aligned on every platform.
type Slot[S Storage] struct {
	_     [0]atomic.Uint64
	state slotState
	value S
}

// PaddedSlot is a Slot padded so that neighbouring slots in an array do
// not share a cache line.
type PaddedSlot[S Storage] struct {
	Slot[S]
	//lint:ignore U1000 prevents false sharing
	pad [CacheLineSize - 8 - unsafe.Sizeof(slotState{})]byte
}

// UnsafeAtomic is a typed view of a Slot holding a V encoded by R into
// storage S. It is a thin cursor: copies of a handle refer to the same
// slot. Every operation is a single atomic operation on the slot and
// never allocates or blocks.
//
// The handle does not track the slot's lifetime. Using it after Destroy
// or Dispose is undefined; builds tagged atomics_debug panic instead.
type UnsafeAtomic[V any, S Storage, R Representation[V, S]] struct {
	slot *Slot[S]
}

// Create allocates a slot, prepares it with initial and returns a handle
// owning it.
func Create[V any, S Storage, R Representation[V, S]](initial V) UnsafeAtomic[V, S, R] {
	a := At[V, S, R](new(Slot[S]))
	a.Initialize(initial)
	return a
}

// CreatePadded is Create with a cache-line padded slot.
func CreatePadded[V any, S Storage, R Representation[V, S]](initial V) UnsafeAtomic[V, S, R] {
	a := At[V, S, R](&new(PaddedSlot[S]).Slot)
	a.Initialize(initial)
	return a
}

// At returns a handle for a slot owned by the caller. The slot must be
// initialized with Initialize before any other operation.
//
//go:nosplit
func At[V any, S Storage, R Representation[V, S]](slot *Slot[S]) UnsafeAtomic[V, S, R] {
	return UnsafeAtomic[V, S, R]{slot: slot}
}

// Slot returns the slot the handle refers to.
//
//go:nosplit
func (a UnsafeAtomic[V, S, R]) Slot() *Slot[S] {
	return a.slot
}

// Initialize places the prepared encoding of initial in the slot. It is
// not an atomic operation and must happen before the slot is shared.
func (a UnsafeAtomic[V, S, R]) Initialize(initial V) {
	var r R
	a.slot.state.markLive()
	a.slot.value = r.Prepare(initial)
}

// Dispose tears down the slot and returns its final value. The memory
// stays with its owner.
func (a UnsafeAtomic[V, S, R]) Dispose() V {
	var r R
	a.slot.state.markDestroyed("dispose")
	return r.Dispose(primitiveLoad(&a.slot.value, LoadAcquiring))
}

// Destroy tears down a slot obtained from Create and returns its final
// value. Pointer storage is cleared so the slot no longer keeps the
// referent alive.
func (a UnsafeAtomic[V, S, R]) Destroy() V {
	v := a.Dispose()
	var zero S
	primitiveStore(&a.slot.value, zero, StoreRelaxed)
	return v
}

// Load atomically loads the value.
func (a UnsafeAtomic[V, S, R]) Load(ordering LoadOrdering) V {
	var r R
	a.slot.state.checkLive("load")
	return r.Decode(primitiveLoad(&a.slot.value, ordering))
}

// Store atomically replaces the value.
func (a UnsafeAtomic[V, S, R]) Store(desired V, ordering StoreOrdering) {
	var r R
	a.slot.state.checkLive("store")
	primitiveStore(&a.slot.value, r.Encode(desired), ordering)
}

// Exchange atomically replaces the value and returns the previous one.
func (a UnsafeAtomic[V, S, R]) Exchange(desired V, ordering UpdateOrdering) V {
	var r R
	a.slot.state.checkLive("exchange")
	return r.Decode(primitiveExchange(&a.slot.value, r.Encode(desired), ordering))
}

// CompareExchange replaces the value with desired if it equals expected.
// It returns whether the exchange happened and the value observed in the
// slot, which equals expected exactly when exchanged is true. A failed
// exchange uses ordering.ImpliedFailureOrdering().
func (a UnsafeAtomic[V, S, R]) CompareExchange(
	expected, desired V,
	ordering UpdateOrdering,
) (exchanged bool, original V) {
	return a.CompareExchangeExplicit(expected, desired, ordering, ordering.ImpliedFailureOrdering())
}

// CompareExchangeExplicit is CompareExchange with a separate ordering for
// the failure case. failure must not be stronger than success.
func (a UnsafeAtomic[V, S, R]) CompareExchangeExplicit(
	expected, desired V,
	success UpdateOrdering,
	failure LoadOrdering,
) (exchanged bool, original V) {
	var r R
	a.slot.state.checkLive("compareExchange")
	ok, s := primitiveCompareExchange(&a.slot.value, r.Encode(expected), r.Encode(desired), success, failure)
	return ok, r.Decode(s)
}

// WeakCompareExchange is CompareExchange that may fail spuriously, even
// when the slot held expected. Callers loop until exchanged is true or
// original differs from expected.
func (a UnsafeAtomic[V, S, R]) WeakCompareExchange(
	expected, desired V,
	ordering UpdateOrdering,
) (exchanged bool, original V) {
	return a.WeakCompareExchangeExplicit(expected, desired, ordering, ordering.ImpliedFailureOrdering())
}

// WeakCompareExchangeExplicit is WeakCompareExchange with a separate
// ordering for the failure case.
func (a UnsafeAtomic[V, S, R]) WeakCompareExchangeExplicit(
	expected, desired V,
	success UpdateOrdering,
	failure LoadOrdering,
) (exchanged bool, original V) {
	var r R
	a.slot.state.checkLive("weakCompareExchange")
	ok, s := primitiveWeakCompareExchange(&a.slot.value, r.Encode(expected), r.Encode(desired), success, failure)
	return ok, r.Decode(s)
}

// raw exposes the storage word to the extensions in this package.
//
//go:nosplit
func (a UnsafeAtomic[V, S, R]) raw() *S {
	return &a.slot.value
}

package atomics

import "unsafe"

// UnsafeAtomicInteger is an UnsafeAtomic over an integer type with the
// wrapping read-modify-write operations added. Arithmetic wraps silently
// at T's width.
//
// The "LoadThen" forms return the value before the update; the "ThenLoad"
// forms compute the value after it from that same snapshot, without a
// second access to the slot.
type UnsafeAtomicInteger[T Integral] struct {
	UnsafeAtomic[T, uint64, IntegerRepresentation[T]]
}

// NewInteger allocates a slot holding initial.
func NewInteger[T Integral](initial T) UnsafeAtomicInteger[T] {
	return UnsafeAtomicInteger[T]{Create[T, uint64, IntegerRepresentation[T]](initial)}
}

// NewPaddedInteger allocates a cache-line padded slot holding initial.
func NewPaddedInteger[T Integral](initial T) UnsafeAtomicInteger[T] {
	return UnsafeAtomicInteger[T]{CreatePadded[T, uint64, IntegerRepresentation[T]](initial)}
}

// IntegerAt returns a handle for a caller-owned slot.
//
//go:nosplit
func IntegerAt[T Integral](slot *Slot[uint64]) UnsafeAtomicInteger[T] {
	return UnsafeAtomicInteger[T]{At[T, uint64, IntegerRepresentation[T]](slot)}
}

// fullWidth reports whether T fills the storage word, in which case the
// word's own wraparound is T's.
//
//go:nosplit
func fullWidth[T Integral]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 8
}

// LoadThenWrappingIncrement adds by and returns the previous value.
func (a UnsafeAtomicInteger[T]) LoadThenWrappingIncrement(by T, ordering UpdateOrdering) T {
	var r IntegerRepresentation[T]
	a.slot.state.checkLive("loadThenWrappingIncrement")
	if fullWidth[T]() {
		return r.Decode(primitiveFetchAdd(a.raw(), r.Encode(by), ordering))
	}
	checkUpdateOrdering("loadThenWrappingIncrement", ordering)
	return r.Decode(primitiveFetchUpdate(a.raw(), func(old uint64) uint64 {
		return r.Encode(r.Decode(old) + by)
	}))
}

// LoadThenWrappingDecrement subtracts by and returns the previous value.
func (a UnsafeAtomicInteger[T]) LoadThenWrappingDecrement(by T, ordering UpdateOrdering) T {
	var r IntegerRepresentation[T]
	a.slot.state.checkLive("loadThenWrappingDecrement")
	if fullWidth[T]() {
		return r.Decode(primitiveFetchSub(a.raw(), r.Encode(by), ordering))
	}
	checkUpdateOrdering("loadThenWrappingDecrement", ordering)
	return r.Decode(primitiveFetchUpdate(a.raw(), func(old uint64) uint64 {
		return r.Encode(r.Decode(old) - by)
	}))
}

// LoadThenBitwiseAnd ands the value with operand and returns the
// previous value.
func (a UnsafeAtomicInteger[T]) LoadThenBitwiseAnd(operand T, ordering UpdateOrdering) T {
	var r IntegerRepresentation[T]
	a.slot.state.checkLive("loadThenBitwiseAnd")
	return r.Decode(primitiveFetchAnd(a.raw(), r.Encode(operand), ordering))
}

// LoadThenBitwiseOr ors operand into the value and returns the previous
// value.
func (a UnsafeAtomicInteger[T]) LoadThenBitwiseOr(operand T, ordering UpdateOrdering) T {
	var r IntegerRepresentation[T]
	a.slot.state.checkLive("loadThenBitwiseOr")
	return r.Decode(primitiveFetchOr(a.raw(), r.Encode(operand), ordering))
}

// LoadThenBitwiseXor xors operand into the value and returns the
// previous value.
func (a UnsafeAtomicInteger[T]) LoadThenBitwiseXor(operand T, ordering UpdateOrdering) T {
	var r IntegerRepresentation[T]
	a.slot.state.checkLive("loadThenBitwiseXor")
	return r.Decode(primitiveFetchXor(a.raw(), r.Encode(operand), ordering))
}

// WrappingIncrementThenLoad adds by and returns the new value.
func (a UnsafeAtomicInteger[T]) WrappingIncrementThenLoad(by T, ordering UpdateOrdering) T {
	return a.LoadThenWrappingIncrement(by, ordering) + by
}

// WrappingDecrementThenLoad subtracts by and returns the new value.
func (a UnsafeAtomicInteger[T]) WrappingDecrementThenLoad(by T, ordering UpdateOrdering) T {
	return a.LoadThenWrappingDecrement(by, ordering) - by
}

// BitwiseAndThenLoad ands the value with operand and returns the new
// value.
func (a UnsafeAtomicInteger[T]) BitwiseAndThenLoad(operand T, ordering UpdateOrdering) T {
	return a.LoadThenBitwiseAnd(operand, ordering) & operand
}

// BitwiseOrThenLoad ors operand into the value and returns the new value.
func (a UnsafeAtomicInteger[T]) BitwiseOrThenLoad(operand T, ordering UpdateOrdering) T {
	return a.LoadThenBitwiseOr(operand, ordering) | operand
}

// BitwiseXorThenLoad xors operand into the value and returns the new
// value.
func (a UnsafeAtomicInteger[T]) BitwiseXorThenLoad(operand T, ordering UpdateOrdering) T {
	return a.LoadThenBitwiseXor(operand, ordering) ^ operand
}

// WrappingIncrement adds by.
func (a UnsafeAtomicInteger[T]) WrappingIncrement(by T, ordering UpdateOrdering) {
	a.LoadThenWrappingIncrement(by, ordering)
}

// WrappingDecrement subtracts by.
func (a UnsafeAtomicInteger[T]) WrappingDecrement(by T, ordering UpdateOrdering) {
	a.LoadThenWrappingDecrement(by, ordering)
}

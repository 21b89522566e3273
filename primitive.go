package atomics

import (
	"sync/atomic"
	"unsafe"
)

// Word is the set of integer-shaped primitive storage types.
type Word interface {
	uint32 | uint64 | uintptr
}

// Storage is the set of primitive storage types a slot can hold. The
// pointer shape stays visible to the garbage collector.
type Storage interface {
	uint32 | uint64 | uintptr | unsafe.Pointer
}

// The functions below are the primitive atomic layer. sync/atomic only
// offers sequentially consistent operations; the ordering arguments are
// lower bounds, so every requested ordering is satisfied. They are
// validated in debug builds.

//go:nosplit
func as[S, T any](v T) S {
	return *(*S)(unsafe.Pointer(&v))
}

func primitiveLoad[S Storage](addr *S, ordering LoadOrdering) S {
	checkLoadOrdering("load", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		return as[S](atomic.LoadUint32(p))
	case *uint64:
		return as[S](atomic.LoadUint64(p))
	case *uintptr:
		return as[S](atomic.LoadUintptr(p))
	default:
		return as[S](atomic.LoadPointer((*unsafe.Pointer)(unsafe.Pointer(addr))))
	}
}

func primitiveStore[S Storage](addr *S, val S, ordering StoreOrdering) {
	checkStoreOrdering("store", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		atomic.StoreUint32(p, as[uint32](val))
	case *uint64:
		atomic.StoreUint64(p, as[uint64](val))
	case *uintptr:
		atomic.StoreUintptr(p, as[uintptr](val))
	default:
		atomic.StorePointer((*unsafe.Pointer)(unsafe.Pointer(addr)), as[unsafe.Pointer](val))
	}
}

func primitiveExchange[S Storage](addr *S, val S, ordering UpdateOrdering) S {
	checkUpdateOrdering("exchange", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		return as[S](atomic.SwapUint32(p, as[uint32](val)))
	case *uint64:
		return as[S](atomic.SwapUint64(p, as[uint64](val)))
	case *uintptr:
		return as[S](atomic.SwapUintptr(p, as[uintptr](val)))
	default:
		return as[S](atomic.SwapPointer((*unsafe.Pointer)(unsafe.Pointer(addr)), as[unsafe.Pointer](val)))
	}
}

//go:nosplit
func primitiveCAS[S Storage](addr *S, old, new S) bool {
	switch p := any(addr).(type) {
	case *uint32:
		return atomic.CompareAndSwapUint32(p, as[uint32](old), as[uint32](new))
	case *uint64:
		return atomic.CompareAndSwapUint64(p, as[uint64](old), as[uint64](new))
	case *uintptr:
		return atomic.CompareAndSwapUintptr(p, as[uintptr](old), as[uintptr](new))
	default:
		return atomic.CompareAndSwapPointer((*unsafe.Pointer)(unsafe.Pointer(addr)),
			as[unsafe.Pointer](old), as[unsafe.Pointer](new))
	}
}

// primitiveCompareExchange is the strong compare-exchange. It reports the
// value observed in the slot. sync/atomic does not return the observed
// value of a failed CAS, so it is reloaded; if the reload happens to
// equal expected the CAS is retried, so a failure always reports a value
// different from expected.
func primitiveCompareExchange[S Storage](
	addr *S,
	expected, desired S,
	success UpdateOrdering,
	failure LoadOrdering,
) (bool, S) {
	checkCompareExchangeOrderings("compareExchange", success, failure)
	for {
		if primitiveCAS(addr, expected, desired) {
			return true, expected
		}
		if cur := primitiveLoad(addr, failure); cur != expected {
			return false, cur
		}
	}
}

// primitiveWeakCompareExchange makes a single attempt. It may report
// failure together with an observed value equal to expected, which
// callers must treat as a spurious failure and retry.
func primitiveWeakCompareExchange[S Storage](
	addr *S,
	expected, desired S,
	success UpdateOrdering,
	failure LoadOrdering,
) (bool, S) {
	checkCompareExchangeOrderings("weakCompareExchange", success, failure)
	if primitiveCAS(addr, expected, desired) {
		return true, expected
	}
	return false, primitiveLoad(addr, failure)
}

// primitiveFetchAdd adds delta with wraparound and returns the previous
// value.
func primitiveFetchAdd[S Word](addr *S, delta S, ordering UpdateOrdering) S {
	checkUpdateOrdering("fetchAdd", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		return S(atomic.AddUint32(p, uint32(delta)) - uint32(delta))
	case *uint64:
		return S(atomic.AddUint64(p, uint64(delta)) - uint64(delta))
	default:
		q := (*uintptr)(unsafe.Pointer(addr))
		return S(atomic.AddUintptr(q, uintptr(delta)) - uintptr(delta))
	}
}

// primitiveFetchSub subtracts delta with wraparound and returns the
// previous value.
func primitiveFetchSub[S Word](addr *S, delta S, ordering UpdateOrdering) S {
	return primitiveFetchAdd(addr, -delta, ordering)
}

func primitiveFetchAnd[S Word](addr *S, mask S, ordering UpdateOrdering) S {
	checkUpdateOrdering("fetchAnd", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		return S(atomic.AndUint32(p, uint32(mask)))
	case *uint64:
		return S(atomic.AndUint64(p, uint64(mask)))
	default:
		return S(atomic.AndUintptr((*uintptr)(unsafe.Pointer(addr)), uintptr(mask)))
	}
}

func primitiveFetchOr[S Word](addr *S, mask S, ordering UpdateOrdering) S {
	checkUpdateOrdering("fetchOr", ordering)
	switch p := any(addr).(type) {
	case *uint32:
		return S(atomic.OrUint32(p, uint32(mask)))
	case *uint64:
		return S(atomic.OrUint64(p, uint64(mask)))
	default:
		return S(atomic.OrUintptr((*uintptr)(unsafe.Pointer(addr)), uintptr(mask)))
	}
}

// primitiveFetchXor has no sync/atomic counterpart and is built from a
// CAS loop, which stays lock-free.
func primitiveFetchXor[S Word](addr *S, mask S, ordering UpdateOrdering) S {
	checkUpdateOrdering("fetchXor", ordering)
	return primitiveFetchUpdate(addr, func(old S) S { return old ^ mask })
}

// primitiveFetchUpdate replaces the slot with fn(old) and returns old.
// fn may run more than once and must be pure.
func primitiveFetchUpdate[S Word](addr *S, fn func(S) S) S {
	for {
		old := primitiveLoad(addr, LoadRelaxed)
		if primitiveCAS(addr, old, fn(old)) {
			return old
		}
	}
}

package atomics

import "unsafe"

// UnsafeAtomicLazyReference is a publish-once slot for a reference-counted
// object. It starts empty; the first successful StoreIfNil makes it
// occupied for good. Racing initializers all see the same winner, and
// every losing candidate is released exactly once.
type UnsafeAtomicLazyReference[T any, P RefCountedPointer[T]] struct {
	slot *Slot[unsafe.Pointer]
}

// NewLazyReference allocates an empty slot.
func NewLazyReference[T any, P RefCountedPointer[T]]() UnsafeAtomicLazyReference[T, P] {
	return LazyReferenceAt[T, P](new(Slot[unsafe.Pointer]))
}

// LazyReferenceAt returns a handle for a caller-owned slot. A zero Slot
// is empty and ready for use.
//
//go:nosplit
func LazyReferenceAt[T any, P RefCountedPointer[T]](slot *Slot[unsafe.Pointer]) UnsafeAtomicLazyReference[T, P] {
	return UnsafeAtomicLazyReference[T, P]{slot: slot}
}

// StoreIfNil publishes candidate if the slot is empty and returns the
// object the slot holds afterwards.
//
// The call consumes the caller's reference to candidate. If candidate
// wins, that reference now belongs to the slot. If another object was
// already published, the reference is dropped, which destroys candidate
// when nothing else holds it. The returned object is borrowed from the
// slot and stays valid until Destroy.
func (l UnsafeAtomicLazyReference[T, P]) StoreIfNil(candidate P) P {
	l.slot.state.checkLive("storeIfNil")
	u := PassUnretained(candidate)
	ok, existing := primitiveCompareExchange(&l.slot.value, nil, u.ToOpaque(),
		UpdateAcquiringAndReleasing, LoadAcquiring)
	if ok {
		return candidate
	}
	u.Release()
	return FromOpaque[T, P](existing).TakeUnretainedValue()
}

// Load returns the published object, or nil if the slot is empty. The
// result is borrowed from the slot.
func (l UnsafeAtomicLazyReference[T, P]) Load() P {
	l.slot.state.checkLive("load")
	p := primitiveLoad(&l.slot.value, LoadAcquiring)
	if p == nil {
		var none P
		return none
	}
	return FromOpaque[T, P](p).TakeUnretainedValue()
}

// Destroy tears down the slot and returns the published object, or nil
// if it is empty. The slot's reference passes to the caller, who must
// drop it with DecRef.
func (l UnsafeAtomicLazyReference[T, P]) Destroy() P {
	l.slot.state.markDestroyed("destroy")
	p := primitiveExchange(&l.slot.value, nil, UpdateAcquiring)
	if p == nil {
		var none P
		return none
	}
	return FromOpaque[T, P](p).TakeRetainedValue()
}

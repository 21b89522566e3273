package atomics

import "unsafe"

// PointerRepresentation stores a non-nil *T. A nil pointer is the
// sentinel Nullable uses for None, so it must not be encoded here; use
// Optional[*T] with Nullable for a slot that can be empty.
type PointerRepresentation[T any] struct{}

func (PointerRepresentation[T]) Encode(p *T) unsafe.Pointer {
	if debugChecks && p == nil {
		preconditionFailure("encode", "nil pointer for a non-optional pointer representation")
	}
	return unsafe.Pointer(p)
}

//go:nosplit
func (PointerRepresentation[T]) Decode(s unsafe.Pointer) *T {
	return (*T)(s)
}

func (r PointerRepresentation[T]) Prepare(p *T) unsafe.Pointer { return r.Encode(p) }
func (r PointerRepresentation[T]) Dispose(s unsafe.Pointer) *T { return r.Decode(s) }
func (PointerRepresentation[T]) Nil() unsafe.Pointer           { return nil }

// RawPointerRepresentation stores a non-nil unsafe.Pointer.
type RawPointerRepresentation struct{}

func (RawPointerRepresentation) Encode(p unsafe.Pointer) unsafe.Pointer {
	if debugChecks && p == nil {
		preconditionFailure("encode", "nil pointer for a non-optional pointer representation")
	}
	return p
}

//go:nosplit
func (RawPointerRepresentation) Decode(s unsafe.Pointer) unsafe.Pointer {
	return s
}

func (r RawPointerRepresentation) Prepare(p unsafe.Pointer) unsafe.Pointer { return r.Encode(p) }
func (r RawPointerRepresentation) Dispose(s unsafe.Pointer) unsafe.Pointer { return s }
func (RawPointerRepresentation) Nil() unsafe.Pointer                       { return nil }

// Unmanaged is an opaque, non-owning view of a reference-counted object.
// Moving an Unmanaged around never changes the object's reference count;
// every count change is an explicit call.
type Unmanaged[T any, P RefCountedPointer[T]] struct {
	p P
}

// PassRetained takes one reference on p and returns it as an Unmanaged
// that carries that reference.
func PassRetained[T any, P RefCountedPointer[T]](p P) Unmanaged[T, P] {
	p.IncRef()
	return Unmanaged[T, P]{p: p}
}

// PassUnretained returns p as an Unmanaged without taking a reference.
func PassUnretained[T any, P RefCountedPointer[T]](p P) Unmanaged[T, P] {
	return Unmanaged[T, P]{p: p}
}

// FromOpaque rebuilds an Unmanaged from a pointer produced by ToOpaque.
//
//go:nosplit
func FromOpaque[T any, P RefCountedPointer[T]](ptr unsafe.Pointer) Unmanaged[T, P] {
	return Unmanaged[T, P]{p: P(ptr)}
}

// ToOpaque returns the object's address.
//
//go:nosplit
func (u Unmanaged[T, P]) ToOpaque() unsafe.Pointer {
	return unsafe.Pointer(u.p)
}

// Retain takes one more reference on the object.
func (u Unmanaged[T, P]) Retain() Unmanaged[T, P] {
	u.p.IncRef()
	return u
}

// Release drops one reference on the object.
func (u Unmanaged[T, P]) Release() {
	u.p.DecRef()
}

// TakeUnretainedValue returns the object without consuming a reference.
//
//go:nosplit
func (u Unmanaged[T, P]) TakeUnretainedValue() P {
	return u.p
}

// TakeRetainedValue returns the object and hands the reference this
// Unmanaged carried over to the caller.
//
//go:nosplit
func (u Unmanaged[T, P]) TakeRetainedValue() P {
	return u.p
}

// UnmanagedRepresentation stores an Unmanaged as its opaque pointer.
// Encoding and decoding never retain or release; keeping the count
// balanced is the caller's job.
type UnmanagedRepresentation[T any, P RefCountedPointer[T]] struct{}

func (UnmanagedRepresentation[T, P]) Encode(u Unmanaged[T, P]) unsafe.Pointer {
	if debugChecks && unsafe.Pointer(u.p) == nil {
		preconditionFailure("encode", "nil Unmanaged for a non-optional representation")
	}
	return u.ToOpaque()
}

//go:nosplit
func (UnmanagedRepresentation[T, P]) Decode(s unsafe.Pointer) Unmanaged[T, P] {
	return FromOpaque[T, P](s)
}

func (r UnmanagedRepresentation[T, P]) Prepare(u Unmanaged[T, P]) unsafe.Pointer {
	return r.Encode(u)
}

func (r UnmanagedRepresentation[T, P]) Dispose(s unsafe.Pointer) Unmanaged[T, P] {
	return r.Decode(s)
}

func (UnmanagedRepresentation[T, P]) Nil() unsafe.Pointer { return nil }

package atomics

import "unsafe"

// Ready-made instantiations of UnsafeAtomic for the value types this
// package supports. Integers have their own handle, UnsafeAtomicInteger.

type (
	// Bool is an atomic bool.
	Bool = UnsafeAtomic[bool, uint64, BoolRepresentation]
	// RawPointer is an atomic non-nil unsafe.Pointer.
	RawPointer = UnsafeAtomic[unsafe.Pointer, unsafe.Pointer, RawPointerRepresentation]
	// OptionalRawPointer is an atomic unsafe.Pointer that may be nil.
	OptionalRawPointer = UnsafeAtomic[Optional[unsafe.Pointer], unsafe.Pointer,
		Nullable[unsafe.Pointer, unsafe.Pointer, RawPointerRepresentation]]
)

// NewBool allocates a slot holding initial.
func NewBool(initial bool) Bool {
	return Create[bool, uint64, BoolRepresentation](initial)
}

// NewRawPointer allocates a slot holding the non-nil pointer initial.
func NewRawPointer(initial unsafe.Pointer) RawPointer {
	return Create[unsafe.Pointer, unsafe.Pointer, RawPointerRepresentation](initial)
}

// NewOptionalRawPointer allocates a slot holding initial.
func NewOptionalRawPointer(initial Optional[unsafe.Pointer]) OptionalRawPointer {
	return Create[Optional[unsafe.Pointer], unsafe.Pointer,
		Nullable[unsafe.Pointer, unsafe.Pointer, RawPointerRepresentation]](initial)
}

// NewPointer allocates a slot holding the non-nil pointer initial.
func NewPointer[T any](initial *T) UnsafeAtomic[*T, unsafe.Pointer, PointerRepresentation[T]] {
	return Create[*T, unsafe.Pointer, PointerRepresentation[T]](initial)
}

// NewOptionalPointer allocates a slot holding initial. The empty value
// is stored as a nil pointer.
func NewOptionalPointer[T any](
	initial Optional[*T],
) UnsafeAtomic[Optional[*T], unsafe.Pointer, Nullable[*T, unsafe.Pointer, PointerRepresentation[T]]] {
	return Create[Optional[*T], unsafe.Pointer, Nullable[*T, unsafe.Pointer, PointerRepresentation[T]]](initial)
}

// NewUnmanaged allocates a slot holding initial. The slot takes over no
// reference; see UnmanagedRepresentation.
func NewUnmanaged[T any, P RefCountedPointer[T]](
	initial Unmanaged[T, P],
) UnsafeAtomic[Unmanaged[T, P], unsafe.Pointer, UnmanagedRepresentation[T, P]] {
	return Create[Unmanaged[T, P], unsafe.Pointer, UnmanagedRepresentation[T, P]](initial)
}

// NewOptionalUnmanaged allocates a slot holding initial.
func NewOptionalUnmanaged[T any, P RefCountedPointer[T]](
	initial Optional[Unmanaged[T, P]],
) UnsafeAtomic[Optional[Unmanaged[T, P]], unsafe.Pointer,
	Nullable[Unmanaged[T, P], unsafe.Pointer, UnmanagedRepresentation[T, P]]] {
	return Create[Optional[Unmanaged[T, P]], unsafe.Pointer,
		Nullable[Unmanaged[T, P], unsafe.Pointer, UnmanagedRepresentation[T, P]]](initial)
}

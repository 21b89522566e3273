package atomics

import "unsafe"

// Representation is the encoding contract between a logical value type V
// and the primitive storage type S held in a slot. Implementations are
// zero-size types passed as type arguments, so no value of them is ever
// stored.
//
// Encode and Decode run on every operation. They must be pure and exact
// inverses: Decode(Encode(v)) == v. Prepare and Dispose run once, when a
// slot is initialized and torn down; a representation that moves
// ownership into the slot does its bookkeeping there.
//
// Decode is only ever given a pattern produced by Encode or Prepare of
// the same representation. Anything else is undefined behavior.
type Representation[V any, S Storage] interface {
	Encode(V) S
	Decode(S) V
	Prepare(V) S
	Dispose(S) V
}

// Integral is the set of integer types with an atomic representation,
// including defined types such as `type State uint32`.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntegerRepresentation stores an integer zero-extended into a 64-bit
// word. Every bit pattern of T's width is a valid value.
type IntegerRepresentation[T Integral] struct{}

// widthMask is the mask of the bits T occupies in a 64-bit word.
//
//go:nosplit
func widthMask[T Integral]() uint64 {
	var zero T
	if n := unsafe.Sizeof(zero); n < 8 {
		return 1<<(n*8) - 1
	}
	return ^uint64(0)
}

//go:nosplit
func (IntegerRepresentation[T]) Encode(v T) uint64 {
	return uint64(v) & widthMask[T]()
}

//go:nosplit
func (IntegerRepresentation[T]) Decode(s uint64) T {
	return T(s)
}

func (r IntegerRepresentation[T]) Prepare(v T) uint64 { return r.Encode(v) }
func (r IntegerRepresentation[T]) Dispose(s uint64) T { return r.Decode(s) }

// BoolRepresentation stores false as 0 and true as 1.
type BoolRepresentation struct{}

//go:nosplit
func (BoolRepresentation) Encode(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func (BoolRepresentation) Decode(s uint64) bool {
	if debugChecks && s > 1 {
		preconditionFailure("decode", "invalid bool bit pattern")
	}
	return s != 0
}

func (r BoolRepresentation) Prepare(v bool) uint64 { return r.Encode(v) }
func (r BoolRepresentation) Dispose(s uint64) bool { return r.Decode(s) }

// RawConverter converts a wrapper type to and from the raw value it
// wraps. FromRaw is only called with values ToRaw produced.
type RawConverter[V, Raw any] interface {
	ToRaw(V) Raw
	FromRaw(Raw) V
}

// RawRepresentation gives a wrapper type V the atomic representation of
// the raw value it wraps: encoding goes through C to Raw, then through
// R to storage.
//
//	type state struct{ raw uint }
//	type stateConv struct{}
//	func (stateConv) ToRaw(s state) uint   { return s.raw }
//	func (stateConv) FromRaw(u uint) state { return state{u} }
//
//	type stateRepr = RawRepresentation[state, uint, uint64, IntegerRepresentation[uint], stateConv]
type RawRepresentation[V, Raw any, S Storage, R Representation[Raw, S], C RawConverter[V, Raw]] struct{}

func (RawRepresentation[V, Raw, S, R, C]) Encode(v V) S {
	var r R
	var c C
	return r.Encode(c.ToRaw(v))
}

func (RawRepresentation[V, Raw, S, R, C]) Decode(s S) V {
	var r R
	var c C
	return c.FromRaw(r.Decode(s))
}

func (RawRepresentation[V, Raw, S, R, C]) Prepare(v V) S {
	var r R
	var c C
	return r.Prepare(c.ToRaw(v))
}

func (RawRepresentation[V, Raw, S, R, C]) Dispose(s S) V {
	var r R
	var c C
	return c.FromRaw(r.Dispose(s))
}

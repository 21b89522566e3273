package atomics

// Optional holds either a value of T or nothing. The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
//
//go:nosplit
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
//
//go:nosplit
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsNone reports whether o is empty.
func (o Optional[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or def when o is empty.
func (o Optional[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// NullableRepresentation is a Representation with a storage pattern that
// Encode never produces for any value. Nullable uses that pattern for
// None, so Optional[V] costs no extra storage.
type NullableRepresentation[V any, S Storage] interface {
	Representation[V, S]
	// Nil returns the sentinel pattern.
	Nil() S
}

// Nullable is the representation of Optional[V] in R's own storage shape.
type Nullable[V any, S Storage, R NullableRepresentation[V, S]] struct{}

func (Nullable[V, S, R]) Encode(o Optional[V]) S {
	var r R
	if !o.ok {
		return r.Nil()
	}
	s := r.Encode(o.value)
	if debugChecks && s == r.Nil() {
		preconditionFailure("encode", "value encodes to the nil sentinel")
	}
	return s
}

func (Nullable[V, S, R]) Decode(s S) Optional[V] {
	var r R
	if s == r.Nil() {
		return Optional[V]{}
	}
	return Optional[V]{value: r.Decode(s), ok: true}
}

func (Nullable[V, S, R]) Prepare(o Optional[V]) S {
	var r R
	if !o.ok {
		return r.Nil()
	}
	return r.Prepare(o.value)
}

func (Nullable[V, S, R]) Dispose(s S) Optional[V] {
	var r R
	if s == r.Nil() {
		return Optional[V]{}
	}
	return Optional[V]{value: r.Dispose(s), ok: true}
}

package atomics

import (
	"strconv"
	"sync/atomic"
)

// RefCounter is implemented by objects whose lifetime is managed with
// explicit reference counts.
type RefCounter interface {
	// IncRef takes one additional reference.
	IncRef()
	// DecRef drops one reference, destroying the object when it was the
	// last one.
	DecRef()
}

// RefCountedPointer constrains P to be *T where *T is reference counted.
type RefCountedPointer[T any] interface {
	*T
	RefCounter
}

// RefCount is an embeddable reference count. The zero value holds one
// reference, owned by whoever created the object.
//
// A type embedding RefCount implements DecRef by calling
// DecRefWithDestructor with its own teardown.
type RefCount struct {
	// refs is the number of references minus one.
	refs atomic.Int64
}

// ReadRefs returns the current number of references. The result is only
// a snapshot.
func (r *RefCount) ReadRefs() int64 {
	return r.refs.Load() + 1
}

// IncRef takes one additional reference.
func (r *RefCount) IncRef() {
	if v := r.refs.Add(1); v <= 0 {
		panic("atomics: IncRef on a destroyed object, refs=" + strconv.FormatInt(v, 10))
	}
}

// DecRefWithDestructor drops one reference and runs destroy when it was
// the last one. destroy may be nil.
func (r *RefCount) DecRefWithDestructor(destroy func()) {
	switch v := r.refs.Add(-1); {
	case v < -1:
		panic("atomics: DecRef on a destroyed object, refs=" + strconv.FormatInt(v, 10))
	case v == -1:
		if destroy != nil {
			destroy()
		}
	}
}

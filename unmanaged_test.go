package atomics

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestUnmanaged_RetainRelease(t *testing.T) {
	o := newTracked(1)
	u := PassRetained(o)
	if got := o.ReadRefs(); got != 2 {
		t.Fatalf("refs after PassRetained = %d, want 2", got)
	}
	u.Retain()
	if got := o.ReadRefs(); got != 3 {
		t.Fatalf("refs after Retain = %d, want 3", got)
	}
	u.Release()
	u.Release()
	if got := o.ReadRefs(); got != 1 {
		t.Fatalf("refs after two Releases = %d, want 1", got)
	}

	v := PassUnretained(o)
	if got := o.ReadRefs(); got != 1 {
		t.Fatalf("PassUnretained changed refs to %d", got)
	}
	if FromOpaque[tracked](v.ToOpaque()) != v {
		t.Fatal("FromOpaque(ToOpaque()) is not the same Unmanaged")
	}
	if v.TakeUnretainedValue() != o {
		t.Fatal("TakeUnretainedValue returned another object")
	}
	v.TakeRetainedValue().DecRef()
	if !o.isDestroyed() {
		t.Fatal("object survived its last reference")
	}
}

func TestUnmanaged_Atomic(t *testing.T) {
	a, b := newTracked(1), newTracked(2)
	slot := NewUnmanaged(PassUnretained(a))
	if got := a.ReadRefs(); got != 1 {
		t.Fatalf("storing an Unmanaged changed refs to %d", got)
	}
	if got := slot.Exchange(PassUnretained(b), UpdateAcquiringAndReleasing); got.TakeUnretainedValue() != a {
		t.Fatal("Exchange did not return a")
	}
	ok, orig := slot.CompareExchange(PassUnretained(a), PassUnretained(a), UpdateAcquiringAndReleasing)
	if ok || orig.TakeUnretainedValue() != b {
		t.Fatalf("CompareExchange(a, a) = (%v, %d)", ok, orig.TakeUnretainedValue().id)
	}
	if got := slot.Destroy(); got.TakeUnretainedValue() != b {
		t.Fatal("Destroy did not return b")
	}
	if a.ReadRefs() != 1 || b.ReadRefs() != 1 {
		t.Fatal("slot operations changed a reference count")
	}
}

// A slot that owns its object: the caller transfers a reference in with
// PassRetained and takes it back out of Exchange.
func TestUnmanaged_OwningSlot(t *testing.T) {
	objs := make([]*tracked, 16)
	for i := range objs {
		objs[i] = newTracked(i)
	}
	slot := NewOptionalUnmanaged(None[Unmanaged[tracked, *tracked]]())

	var g errgroup.Group
	for _, o := range objs {
		g.Go(func() error {
			prev := slot.Exchange(Some(PassRetained(o)), UpdateAcquiringAndReleasing)
			if u, ok := prev.Get(); ok {
				u.Release()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	last, ok := slot.Destroy().Get()
	if !ok {
		t.Fatal("slot is empty after every goroutine stored")
	}
	for _, o := range objs {
		want := int64(1)
		if o == last.TakeUnretainedValue() {
			want = 2
		}
		if got := o.ReadRefs(); got != want {
			t.Errorf("object %d refs = %d, want %d", o.id, got, want)
		}
	}
	last.Release()
	for _, o := range objs {
		o.DecRef()
		if o.destroyed.Load() != 1 {
			t.Errorf("object %d destroyed %d times", o.id, o.destroyed.Load())
		}
	}
}

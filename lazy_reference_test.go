package atomics

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// tracked is a reference-counted test object that records its own
// destruction.
type tracked struct {
	RefCount
	id        int
	destroyed atomic.Int32
	onDestroy func(*tracked)
}

func newTracked(id int) *tracked {
	return &tracked{id: id}
}

func (o *tracked) DecRef() {
	o.DecRefWithDestructor(func() {
		o.destroyed.Add(1)
		if o.onDestroy != nil {
			o.onDestroy(o)
		}
	})
}

func (o *tracked) isDestroyed() bool {
	return o.destroyed.Load() != 0
}

func TestLazyReference_Scenario(t *testing.T) {
	ref := NewLazyReference[tracked]()
	a, b := newTracked(1), newTracked(2)

	if got := ref.StoreIfNil(a); got != a {
		t.Fatalf("first StoreIfNil returned %v, want a", got)
	}
	if got := ref.StoreIfNil(b); got != a {
		t.Fatalf("second StoreIfNil returned %v, want a", got)
	}
	if !b.isDestroyed() {
		t.Fatal("the losing candidate was not destroyed")
	}
	if a.isDestroyed() {
		t.Fatal("the published object was destroyed")
	}
	if got := ref.Load(); got != a {
		t.Fatalf("Load() = %v, want a", got)
	}

	got := ref.Destroy()
	if got != a {
		t.Fatalf("Destroy() = %v, want a", got)
	}
	if a.isDestroyed() {
		t.Fatal("Destroy released the reference instead of returning it")
	}
	got.DecRef()
	if !a.isDestroyed() {
		t.Fatal("dropping the returned reference did not destroy a")
	}
}

func TestLazyReference_LoserKeptAliveElsewhere(t *testing.T) {
	ref := NewLazyReference[tracked]()
	a, b := newTracked(1), newTracked(2)
	b.IncRef()
	ref.StoreIfNil(a)
	if got := ref.StoreIfNil(b); got != a {
		t.Fatalf("StoreIfNil(b) = %v, want a", got)
	}
	if b.isDestroyed() {
		t.Fatal("b was destroyed while another reference was outstanding")
	}
	if got := b.ReadRefs(); got != 1 {
		t.Fatalf("b refs = %d, want 1", got)
	}
	b.DecRef()
	if !b.isDestroyed() {
		t.Fatal("b survived its last reference")
	}
	ref.Destroy().DecRef()
}

func TestLazyReference_Empty(t *testing.T) {
	var slot Slot[unsafe.Pointer]
	ref := LazyReferenceAt[tracked](&slot)
	if got := ref.Load(); got != nil {
		t.Fatalf("Load() on a zero slot = %v, want nil", got)
	}
	if got := ref.Destroy(); got != nil {
		t.Fatalf("Destroy() on an empty slot = %v, want nil", got)
	}
}

func TestLazyReference_Concurrent(t *testing.T) {
	const candidates = 64
	for round := range 20 {
		ref := NewLazyReference[tracked]()
		var released atomic.Int32
		objs := make([]*tracked, candidates)
		results := make([]*tracked, candidates)
		for i := range objs {
			objs[i] = newTracked(i)
			objs[i].onDestroy = func(*tracked) { released.Add(1) }
		}

		var g errgroup.Group
		for i := range objs {
			g.Go(func() error {
				results[i] = ref.StoreIfNil(objs[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatal(err)
		}

		winner := ref.Load()
		if winner == nil {
			t.Fatalf("round %d: nothing was published", round)
		}
		for i, r := range results {
			if r != winner {
				t.Fatalf("round %d: caller %d saw %d, winner is %d", round, i, r.id, winner.id)
			}
		}
		if got := released.Load(); got != candidates-1 {
			t.Fatalf("round %d: %d candidates released, want %d", round, got, candidates-1)
		}
		for _, o := range objs {
			if o != winner && o.destroyed.Load() != 1 {
				t.Fatalf("round %d: loser %d destroyed %d times", round, o.id, o.destroyed.Load())
			}
		}
		if winner.isDestroyed() {
			t.Fatalf("round %d: winner destroyed", round)
		}
		ref.Destroy().DecRef()
		if winner.destroyed.Load() != 1 {
			t.Fatalf("round %d: winner destroyed %d times", round, winner.destroyed.Load())
		}
	}
}

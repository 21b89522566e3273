package atomics

import "testing"

func TestLoadOrderingString(t *testing.T) {
	tests := []struct {
		o    LoadOrdering
		want string
	}{
		{LoadRelaxed, "relaxed"},
		{LoadAcquiring, "acquiring"},
		{LoadSequentiallyConsistent, "sequentiallyConsistent"},
		{LoadOrdering(7), "LoadOrdering(7)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("LoadOrdering(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestStoreOrderingString(t *testing.T) {
	tests := []struct {
		o    StoreOrdering
		want string
	}{
		{StoreRelaxed, "relaxed"},
		{StoreReleasing, "releasing"},
		{StoreSequentiallyConsistent, "sequentiallyConsistent"},
		{StoreOrdering(9), "StoreOrdering(9)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("StoreOrdering(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestUpdateOrderingString(t *testing.T) {
	tests := []struct {
		o    UpdateOrdering
		want string
	}{
		{UpdateRelaxed, "relaxed"},
		{UpdateAcquiring, "acquiring"},
		{UpdateReleasing, "releasing"},
		{UpdateAcquiringAndReleasing, "acquiringAndReleasing"},
		{UpdateSequentiallyConsistent, "sequentiallyConsistent"},
		{UpdateOrdering(5), "UpdateOrdering(5)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("UpdateOrdering(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestImpliedFailureOrdering(t *testing.T) {
	tests := []struct {
		o    UpdateOrdering
		want LoadOrdering
	}{
		{UpdateRelaxed, LoadRelaxed},
		{UpdateAcquiring, LoadAcquiring},
		{UpdateReleasing, LoadRelaxed},
		{UpdateAcquiringAndReleasing, LoadAcquiring},
		{UpdateSequentiallyConsistent, LoadSequentiallyConsistent},
	}
	for _, tt := range tests {
		if got := tt.o.ImpliedFailureOrdering(); got != tt.want {
			t.Errorf("%v.ImpliedFailureOrdering() = %v, want %v", tt.o, got, tt.want)
		}
		// The implied ordering is always a valid pairing.
		checkCompareExchangeOrderings("test", tt.o, tt.o.ImpliedFailureOrdering())
	}
}

// Dekker-style handshake: with a sequentially consistent fence between
// each side's store and load, both sides cannot read the other's flag
// as unset.
func TestThreadFence(t *testing.T) {
	for _, o := range []UpdateOrdering{
		UpdateRelaxed, UpdateAcquiring, UpdateReleasing,
		UpdateAcquiringAndReleasing, UpdateSequentiallyConsistent,
	} {
		ThreadFence(o)
	}

	const rounds = 2000
	for range rounds {
		x := NewInteger[int](0)
		y := NewInteger[int](0)
		var r1, r2 int
		done := make(chan struct{})
		go func() {
			x.Store(1, StoreRelaxed)
			ThreadFence(UpdateSequentiallyConsistent)
			r1 = y.Load(LoadRelaxed)
			close(done)
		}()
		y.Store(1, StoreRelaxed)
		ThreadFence(UpdateSequentiallyConsistent)
		r2 = x.Load(LoadRelaxed)
		<-done
		if r1 == 0 && r2 == 0 {
			t.Fatal("both sides missed the other's store across a fence")
		}
	}
}

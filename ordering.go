package atomics

import (
	"strconv"
	"sync/atomic"
)

// LoadOrdering is the memory ordering of an atomic load.
type LoadOrdering uint8

const (
	LoadRelaxed LoadOrdering = iota
	LoadAcquiring
	LoadSequentiallyConsistent
)

// StoreOrdering is the memory ordering of an atomic store.
type StoreOrdering uint8

const (
	StoreRelaxed StoreOrdering = iota
	StoreReleasing
	StoreSequentiallyConsistent
)

// UpdateOrdering is the memory ordering of an atomic read-modify-write
// operation, and of a standalone fence.
type UpdateOrdering uint8

const (
	UpdateRelaxed UpdateOrdering = iota
	UpdateAcquiring
	UpdateReleasing
	UpdateAcquiringAndReleasing
	UpdateSequentiallyConsistent
)

func (o LoadOrdering) String() string {
	switch o {
	case LoadRelaxed:
		return "relaxed"
	case LoadAcquiring:
		return "acquiring"
	case LoadSequentiallyConsistent:
		return "sequentiallyConsistent"
	default:
		return "LoadOrdering(" + strconv.Itoa(int(o)) + ")"
	}
}

func (o StoreOrdering) String() string {
	switch o {
	case StoreRelaxed:
		return "relaxed"
	case StoreReleasing:
		return "releasing"
	case StoreSequentiallyConsistent:
		return "sequentiallyConsistent"
	default:
		return "StoreOrdering(" + strconv.Itoa(int(o)) + ")"
	}
}

func (o UpdateOrdering) String() string {
	switch o {
	case UpdateRelaxed:
		return "relaxed"
	case UpdateAcquiring:
		return "acquiring"
	case UpdateReleasing:
		return "releasing"
	case UpdateAcquiringAndReleasing:
		return "acquiringAndReleasing"
	case UpdateSequentiallyConsistent:
		return "sequentiallyConsistent"
	default:
		return "UpdateOrdering(" + strconv.Itoa(int(o)) + ")"
	}
}

// ImpliedFailureOrdering returns the load ordering a compare-exchange
// uses when it fails and no explicit failure ordering was given.
// The release half of an update has no meaning for a failed update, so
// it is dropped.
//
//go:nosplit
func (o UpdateOrdering) ImpliedFailureOrdering() LoadOrdering {
	switch o {
	case UpdateAcquiring, UpdateAcquiringAndReleasing:
		return LoadAcquiring
	case UpdateSequentiallyConsistent:
		return LoadSequentiallyConsistent
	default:
		return LoadRelaxed
	}
}

// strength ranks an ordering on the relaxed < acquire < seq_cst scale
// used to validate compare-exchange failure orderings.
func (o LoadOrdering) strength() int {
	return int(o)
}

func (o UpdateOrdering) acquireStrength() int {
	return o.ImpliedFailureOrdering().strength()
}

// fenceWord is the target of the read-modify-write that implements a
// standalone fence.
var fenceWord atomic.Uint64

// ThreadFence establishes a memory fence with the given ordering, not
// attached to any particular slot. A relaxed fence has no effect.
func ThreadFence(ordering UpdateOrdering) {
	checkUpdateOrdering("ThreadFence", ordering)
	if ordering == UpdateRelaxed {
		return
	}
	// Every sync/atomic read-modify-write is sequentially consistent and
	// compiles to a full barrier (LOCK XADD, LDADDAL, ...).
	fenceWord.Add(0)
}

func checkLoadOrdering(op string, o LoadOrdering) {
	if debugChecks && o > LoadSequentiallyConsistent {
		preconditionFailure(op, "invalid load ordering "+o.String())
	}
}

func checkStoreOrdering(op string, o StoreOrdering) {
	if debugChecks && o > StoreSequentiallyConsistent {
		preconditionFailure(op, "invalid store ordering "+o.String())
	}
}

func checkUpdateOrdering(op string, o UpdateOrdering) {
	if debugChecks && o > UpdateSequentiallyConsistent {
		preconditionFailure(op, "invalid update ordering "+o.String())
	}
}

// checkCompareExchangeOrderings enforces the C11 restriction that the
// failure ordering is not stronger than the success ordering.
func checkCompareExchangeOrderings(op string, success UpdateOrdering, failure LoadOrdering) {
	if !debugChecks {
		return
	}
	checkUpdateOrdering(op, success)
	checkLoadOrdering(op, failure)
	if failure.strength() > success.acquireStrength() {
		preconditionFailure(op, "failure ordering "+failure.String()+
			" is stronger than success ordering "+success.String())
	}
}

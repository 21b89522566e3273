//go:build atomics_debug

package atomics

import "sync/atomic"

const debugChecks = true

const (
	slotLive      = 0
	slotDestroyed = 1
)

// slotState is a full aligned word so that a Slot's value, which follows
// it, stays 8-byte aligned on 32-bit platforms.
type slotState struct {
	state atomic.Uint64
}

func (s *slotState) markLive() {
	s.state.Store(slotLive)
}

func (s *slotState) markDestroyed(op string) {
	if !s.state.CompareAndSwap(slotLive, slotDestroyed) {
		preconditionFailure(op, "slot destroyed twice")
	}
}

func (s *slotState) checkLive(op string) {
	if s.state.Load() == slotDestroyed {
		preconditionFailure(op, "use of a destroyed slot")
	}
}

package atomics

import (
	"runtime"
	_ "unsafe"
)

// delay backs off a writer waiting on a sequence word: it spins with the
// CPU's PAUSE while the runtime allows, then yields the processor.
func delay(spins *int) {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
	} else {
		runtime.Gosched()
		*spins = 0
	}
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//go:nosplit
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//go:nosplit
func runtime_doSpin()

package atomics

import "golang.org/x/sys/cpu"

// useNativeDoubleWord selects CMPXCHG16B for pair slots. The race
// detector cannot see through assembly, so race builds keep the
// sequence-locked path.
var useNativeDoubleWord = cpu.X86.HasCX16 && !raceEnabled

// cmpxchg128 is LOCK CMPXCHG16B on the 16-byte aligned addr. It returns
// the value found at addr and whether it was replaced.
//
//go:noescape
func cmpxchg128(addr *[2]uint64, oldLo, oldHi, newLo, newHi uint64) (lo, hi uint64, swapped bool)

// load128 atomically reads the 16-byte aligned addr.
//
//go:noescape
func load128(addr *[2]uint64) (lo, hi uint64)

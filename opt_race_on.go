//go:build race

package atomics

// Under the race detector the double-width slot uses the sequence-locked
// path, whose synchronization the detector can observe.
const raceEnabled = true

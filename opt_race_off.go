//go:build !race

package atomics

const raceEnabled = false

//go:build !atomics_debug

package atomics

// debugChecks enables precondition assertions. It is switched on with the
// atomics_debug build tag; without it every check folds away.
const debugChecks = false

// slotState tracks the lifecycle of a slot in debug builds. In release
// builds it occupies no space.
type slotState struct{}

//go:nosplit
func (*slotState) markLive() {}

//go:nosplit
func (*slotState) markDestroyed(string) {}

//go:nosplit
func (*slotState) checkLive(string) {}

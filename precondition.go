package atomics

// PreconditionError is the panic value raised when a caller violates a
// precondition of this package. The checks only exist in builds tagged
// atomics_debug; release builds do not detect these violations.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return "atomics: " + e.Op + ": " + e.Msg
}

//go:noinline
func preconditionFailure(op, msg string) {
	panic(&PreconditionError{Op: op, Msg: msg})
}

//go:build !amd64

package atomics

var useNativeDoubleWord = false

func cmpxchg128(*[2]uint64, uint64, uint64, uint64, uint64) (uint64, uint64, bool) {
	panic("atomics: no native double-word compare-and-swap")
}

func load128(*[2]uint64) (uint64, uint64) {
	panic("atomics: no native double-word load")
}

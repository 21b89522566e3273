//go:build !atomics_opt_cachelinesize_32 && !atomics_opt_cachelinesize_64 && !atomics_opt_cachelinesize_128 && !atomics_opt_cachelinesize_256

package atomics

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is used to pad slots that must not share a cache line.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

//go:build atomics_opt_cachelinesize_64

package atomics

// CacheLineSize is used to pad slots that must not share a cache line.
const CacheLineSize = 64

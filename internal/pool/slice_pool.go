package pool

import "sync"

// Scratch slice pools used by the alignment and sort engines. Containers never
// retain a pooled slice: every result buffer is freshly allocated.
var (
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
	float64SlicePool = sync.Pool{
		New: func() any { return &[]float64{} },
	}
)

func getSlice[T any](p *sync.Pool, size int) ([]T, func()) {
	ptr, _ := p.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { p.Put(ptr) }
}

// GetIntSlice retrieves a zeroed int slice of exactly size elements.
//
// The caller must call the returned cleanup function once it no longer
// references the slice.
//
// Example:
//
//	positions, cleanup := pool.GetIntSlice(n)
//	defer cleanup()
func GetIntSlice(size int) ([]int, func()) {
	return getSlice[int](&intSlicePool, size)
}

// GetFloat64Slice retrieves a zeroed float64 slice of exactly size elements.
//
// The caller must call the returned cleanup function once it no longer
// references the slice.
func GetFloat64Slice(size int) ([]float64, func()) {
	return getSlice[float64](&float64SlicePool, size)
}

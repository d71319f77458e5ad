package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
import "C"

// GLPK numbers rows, columns and array entries starting at 1, with slot 0
// of every array reserved and ignored. The public API of this package is
// 0-based throughout; every conversion between the two spaces goes through
// the functions in this file.

// cIndex translates a 0-based public index into a 1-based GLPK ordinal.
func cIndex(i int) C.int {
	return C.int(i + 1)
}

// goIndex translates a 1-based GLPK ordinal into a 0-based public index.
func goIndex(i C.int) int {
	return int(i) - 1
}

// ffiIndices builds a transient 1-based index buffer from 0-based indices,
// with the dummy slot 0 GLPK's array convention requires.
func ffiIndices(indices []int32) []C.int {
	buf := make([]C.int, len(indices)+1)
	for i, idx := range indices {
		buf[i+1] = C.int(idx) + 1
	}
	return buf
}

// ffiValues builds a transient value buffer with the dummy slot 0.
func ffiValues(values []float64) []C.double {
	buf := make([]C.double, len(values)+1)
	for i, v := range values {
		buf[i+1] = C.double(v)
	}
	return buf
}

// ffiOrdinals builds a transient 1-based ordinal buffer from 0-based
// indices, used by the bulk delete calls.
func ffiOrdinals(indices []int) []C.int {
	buf := make([]C.int, len(indices)+1)
	for i, idx := range indices {
		buf[i+1] = cIndex(idx)
	}
	return buf
}

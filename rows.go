/*
Copyright © 2024-2026 The glp authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"unsafe"
)

/* Row (constraint) related functions */

// RowCount returns the number of rows (constraints) in the problem.
func (p *Problem) RowCount() int {
	return int(C.glp_get_num_rows(p.prob))
}

// AddRows appends count new rows to the problem and returns the 0-based
// index of the first one. New rows have free bounds and an empty
// coefficient vector. count must be positive.
func (p *Problem) AddRows(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRowCount, count)
	}
	first := C.glp_add_rows(p.prob, C.int(count))
	if first < 1 {
		return 0, &BackendError{Op: "AddRows", Code: int(first)}
	}
	return goIndex(first), nil
}

// SetRowName names the given row. An empty name clears it.
func (p *Problem) SetRowName(row int, name string) {
	if name == "" {
		C.glp_set_row_name(p.prob, cIndex(row), nil)
		return
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	C.glp_set_row_name(p.prob, cIndex(row), cName)
}

// RowName returns the name of the given row, or the empty string if it has
// none.
func (p *Problem) RowName(row int) string {
	name := C.glp_get_row_name(p.prob, cIndex(row))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

// SetRowBounds sets the feasible range of the given row. The bounds are
// validated first; a validation failure leaves the problem untouched.
func (p *Problem) SetRowBounds(row int, b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	C.glp_set_row_bnds(p.prob, cIndex(row), C.int(b.Type), C.double(b.Lower), C.double(b.Upper))
	return nil
}

// RowBounds returns the feasible range of the given row.
func (p *Problem) RowBounds(row int) (Bounds, error) {
	i := cIndex(row)
	return boundsFromC(
		C.glp_get_row_type(p.prob, i),
		C.glp_get_row_lb(p.prob, i),
		C.glp_get_row_ub(p.prob, i),
	)
}

// SetRowCoefficients replaces the coefficient vector of the given row.
// indices are 0-based column indices; an empty pair of slices clears the
// row. Validation happens before the backend call, so a failure leaves the
// row unchanged. Previously set coefficients for the row are discarded,
// not merged.
func (p *Problem) SetRowCoefficients(row int, indices []int32, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: %d != %d", ErrMismatchedLengths, len(indices), len(values))
	}
	if err := validateFinite(values); err != nil {
		return err
	}
	if len(values) == 0 {
		C.glp_set_mat_row(p.prob, cIndex(row), 0, nil, nil)
		return nil
	}
	ind := ffiIndices(indices)
	val := ffiValues(values)
	C.glp_set_mat_row(p.prob, cIndex(row), C.int(len(values)), &ind[0], &val[0])
	return nil
}

// SetRowCoefficient replaces the row's coefficient vector with the single
// entry (col, value). Note that this inherits the replace semantics of
// SetRowCoefficients: two successive calls leave only the second entry in
// the row.
func (p *Problem) SetRowCoefficient(row, col int, value float64) error {
	return p.SetRowCoefficients(row, []int32{int32(col)}, []float64{value})
}

// RowCoefficients returns the non-zero coefficients of the given row as a
// freshly allocated SparseVector with 0-based column indices. An empty row
// yields a zero-length vector.
func (p *Problem) RowCoefficients(row int) *SparseVector {
	n := C.glp_get_mat_row(p.prob, cIndex(row), nil, nil)
	v := &SparseVector{
		Indices: make([]int32, n),
		Values:  make([]float64, n),
	}
	if n == 0 {
		return v
	}
	ind := make([]C.int, n+1)
	val := make([]C.double, n+1)
	C.glp_get_mat_row(p.prob, cIndex(row), &ind[0], &val[0])
	for i := 0; i < int(n); i++ {
		v.Indices[i] = int32(goIndex(ind[i+1]))
		v.Values[i] = float64(val[i+1])
	}
	return v
}

// DeleteRows removes the given rows, identified against the pre-deletion
// numbering, in a single backend call. Surviving rows are renumbered
// contiguously from 0 with their relative order preserved; callers holding
// row indices must re-fetch them afterwards. An empty slice is a no-op.
func (p *Problem) DeleteRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	num := ffiOrdinals(rows)
	C.glp_del_rows(p.prob, C.int(len(rows)), &num[0])
}

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

/* Column (variable) related functions */

// ColumnCount returns the number of columns (variables) in the problem.
func (p *Problem) ColumnCount() int {
	return int(C.glp_get_num_cols(p.prob))
}

// AddColumns appends count new columns to the problem and returns the
// 0-based index of the first one. New columns are continuous, fixed at
// zero, with a zero objective coefficient. count must be positive.
func (p *Problem) AddColumns(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColumnCount, count)
	}
	first := C.glp_add_cols(p.prob, C.int(count))
	if first < 1 {
		return 0, &BackendError{Op: "AddColumns", Code: int(first)}
	}
	return goIndex(first), nil
}

// SetColumnName names the given column. An empty name clears it.
func (p *Problem) SetColumnName(col int, name string) {
	if name == "" {
		C.glp_set_col_name(p.prob, cIndex(col), nil)
		return
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	C.glp_set_col_name(p.prob, cIndex(col), cName)
}

// ColumnName returns the name of the given column, or the empty string if
// it has none.
func (p *Problem) ColumnName(col int) string {
	name := C.glp_get_col_name(p.prob, cIndex(col))
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

// SetColumnBounds sets the feasible range of the given column. The bounds
// are validated first; a validation failure leaves the problem untouched.
func (p *Problem) SetColumnBounds(col int, b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	C.glp_set_col_bnds(p.prob, cIndex(col), C.int(b.Type), C.double(b.Lower), C.double(b.Upper))
	return nil
}

// ColumnBounds returns the feasible range of the given column.
func (p *Problem) ColumnBounds(col int) (Bounds, error) {
	j := cIndex(col)
	return boundsFromC(
		C.glp_get_col_type(p.prob, j),
		C.glp_get_col_lb(p.prob, j),
		C.glp_get_col_ub(p.prob, j),
	)
}

// SetColumnKind sets the kind of the given column. Setting BinaryVariable
// also forces the column's bounds to the double-bounded range [0, 1],
// regardless of any bounds set before.
func (p *Problem) SetColumnKind(col int, kind VariableKind) error {
	switch kind {
	case ContinuousVariable, IntegerVariable, BinaryVariable:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	C.glp_set_col_kind(p.prob, cIndex(col), C.int(kind))
	return nil
}

// ColumnKind returns the kind of the given column. An integer column
// double-bounded to [0, 1] is reported as BinaryVariable.
func (p *Problem) ColumnKind(col int) (VariableKind, error) {
	return kindFromC(C.glp_get_col_kind(p.prob, cIndex(col)))
}

// SetObjectiveCoefficient sets the objective coefficient of the given
// column.
func (p *Problem) SetObjectiveCoefficient(col int, coef float64) {
	C.glp_set_obj_coef(p.prob, cIndex(col), C.double(coef))
}

// ObjectiveCoefficient returns the objective coefficient of the given
// column.
func (p *Problem) ObjectiveCoefficient(col int) float64 {
	return float64(C.glp_get_obj_coef(p.prob, cIndex(col)))
}

// SetColumnCoefficients replaces the coefficient vector of the given
// column. indices are 0-based row indices; an empty pair of slices clears
// the column. Validation happens before the backend call, so a failure
// leaves the column unchanged. Previously set coefficients for the column
// are discarded, not merged.
func (p *Problem) SetColumnCoefficients(col int, indices []int32, values []float64) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: %d != %d", ErrMismatchedLengths, len(indices), len(values))
	}
	if err := validateFinite(values); err != nil {
		return err
	}
	if len(values) == 0 {
		C.glp_set_mat_col(p.prob, cIndex(col), 0, nil, nil)
		return nil
	}
	ind := ffiIndices(indices)
	val := ffiValues(values)
	C.glp_set_mat_col(p.prob, cIndex(col), C.int(len(values)), &ind[0], &val[0])
	return nil
}

// SetColumnCoefficient replaces the column's coefficient vector with the
// single entry (row, value). Note that this inherits the replace semantics
// of SetColumnCoefficients: two successive calls leave only the second
// entry in the column.
func (p *Problem) SetColumnCoefficient(col, row int, value float64) error {
	return p.SetColumnCoefficients(col, []int32{int32(row)}, []float64{value})
}

// ColumnCoefficients returns the non-zero coefficients of the given column
// as a freshly allocated SparseVector with 0-based row indices. An empty
// column yields a zero-length vector.
func (p *Problem) ColumnCoefficients(col int) *SparseVector {
	n := C.glp_get_mat_col(p.prob, cIndex(col), nil, nil)
	v := &SparseVector{
		Indices: make([]int32, n),
		Values:  make([]float64, n),
	}
	if n == 0 {
		return v
	}
	ind := make([]C.int, n+1)
	val := make([]C.double, n+1)
	C.glp_get_mat_col(p.prob, cIndex(col), &ind[0], &val[0])
	for i := 0; i < int(n); i++ {
		v.Indices[i] = int32(goIndex(ind[i+1]))
		v.Values[i] = float64(val[i+1])
	}
	return v
}

// DeleteColumns removes the given columns, identified against the
// pre-deletion numbering, in a single backend call. Surviving columns are
// renumbered contiguously from 0 with their relative order preserved;
// callers holding column indices must re-fetch them afterwards. An empty
// slice is a no-op.
func (p *Problem) DeleteColumns(cols []int) {
	if len(cols) == 0 {
		return
	}
	num := ffiOrdinals(cols)
	C.glp_del_cols(p.prob, C.int(len(cols)), &num[0])
}

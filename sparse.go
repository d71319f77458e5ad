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
import "C"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SparseVector holds the non-zero coefficients of a single row or column
// as parallel index/value slices. Indices are 0-based, unique, and carry
// no significant order. Vectors returned by Problem accessors are owned by
// the caller and never alias the problem's internal storage.
type SparseVector struct {
	Indices []int32
	Values  []float64
}

// NewSparseVector returns a SparseVector holding copies of the given
// slices. The two slices must have the same length.
func NewSparseVector(indices []int32, values []float64) (*SparseVector, error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("%w: %d != %d", ErrMismatchedLengths, len(indices), len(values))
	}
	v := &SparseVector{
		Indices: make([]int32, len(indices)),
		Values:  make([]float64, len(values)),
	}
	copy(v.Indices, indices)
	copy(v.Values, values)
	return v, nil
}

// Len returns the number of stored entries.
func (v *SparseVector) Len() int {
	return len(v.Values)
}

// Validate fails if any stored value is NaN or infinite. Indices are not
// range-checked here; whether an index refers to an existing row or column
// is only known to the Problem using the vector.
func (v *SparseVector) Validate() error {
	return validateFinite(v.Values)
}

func validateFinite(values []float64) error {
	for i, x := range values {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %g at entry %d", ErrInvalidValue, x, i)
		}
	}
	return nil
}

// SparseMatrix holds non-zero constraint-matrix entries as parallel
// row/column/value slices. Unlike SparseVector, the indices are 1-based:
// a SparseMatrix lives in GLPK's matrix space and is consumed by
// Problem.LoadMatrix.
type SparseMatrix struct {
	Rows   []int32
	Cols   []int32
	Values []float64
}

// NewSparseMatrix returns a SparseMatrix holding copies of the given
// slices, which must all have the same length.
func NewSparseMatrix(rows, cols []int32, values []float64) (*SparseMatrix, error) {
	if len(rows) != len(values) || len(cols) != len(values) {
		return nil, fmt.Errorf("%w: %d/%d != %d", ErrMismatchedLengths, len(rows), len(cols), len(values))
	}
	m := &SparseMatrix{
		Rows:   make([]int32, len(rows)),
		Cols:   make([]int32, len(cols)),
		Values: make([]float64, len(values)),
	}
	copy(m.Rows, rows)
	copy(m.Cols, cols)
	copy(m.Values, values)
	return m, nil
}

// FromDense compacts a dense matrix into sparse form, visiting cells in
// row-major order and keeping those whose absolute value exceeds
// tolerance. The emitted indices are 1-based, ready for LoadMatrix.
func FromDense(dense mat.Matrix, tolerance float64) *SparseMatrix {
	r, c := dense.Dims()
	m := &SparseMatrix{}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := dense.At(i, j)
			if math.Abs(v) > tolerance {
				m.Rows = append(m.Rows, int32(i+1))
				m.Cols = append(m.Cols, int32(j+1))
				m.Values = append(m.Values, v)
			}
		}
	}
	return m
}

// Len returns the number of stored entries.
func (m *SparseMatrix) Len() int {
	return len(m.Values)
}

// Validate fails if any stored value is NaN or infinite.
func (m *SparseMatrix) Validate() error {
	return validateFinite(m.Values)
}

// LoadMatrix replaces the whole constraint matrix with the contents of m.
// The matrix is validated first; every referenced row and column must
// already exist in the problem.
func (p *Problem) LoadMatrix(m *SparseMatrix) error {
	if len(m.Rows) != len(m.Values) || len(m.Cols) != len(m.Values) {
		return fmt.Errorf("%w: %d/%d != %d", ErrMismatchedLengths, len(m.Rows), len(m.Cols), len(m.Values))
	}
	if err := m.Validate(); err != nil {
		return err
	}

	n := len(m.Values)
	// already 1-based: only the dummy slot 0 is prepended
	ia := make([]C.int, n+1)
	ja := make([]C.int, n+1)
	ar := make([]C.double, n+1)
	for i := 0; i < n; i++ {
		ia[i+1] = C.int(m.Rows[i])
		ja[i+1] = C.int(m.Cols[i])
		ar[i+1] = C.double(m.Values[i])
	}

	C.glp_load_matrix(p.prob, C.int(n), &ia[0], &ja[0], &ar[0])
	return nil
}

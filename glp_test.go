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

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiation(t *testing.T) {
	name := "test problem 1"
	prob, err := NewProblem(name, Maximize)
	require.NoError(t, err)
	defer prob.Close()

	assert.Equal(t, name, prob.Name())

	dir, err := prob.Direction()
	require.NoError(t, err)
	assert.Equal(t, Maximize, dir)

	assert.Equal(t, 0, prob.RowCount())
	assert.Equal(t, 0, prob.ColumnCount())
}

func TestInstantiationInvalidDirection(t *testing.T) {
	_, err := NewProblem("bad", Direction(42))
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestCloseIdempotent(t *testing.T) {
	prob, err := NewProblem("closeme", Minimize)
	require.NoError(t, err)

	prob.Close()
	prob.Close() // repeated release must be a safe no-op
}

func TestSetName(t *testing.T) {
	prob, err := NewProblem("first", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	prob.SetName("second")
	assert.Equal(t, "second", prob.Name())

	prob.SetName("")
	assert.Equal(t, "", prob.Name())
}

func TestSetDirection(t *testing.T) {
	prob, err := NewProblem("dir", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	require.NoError(t, prob.SetDirection(Maximize))
	dir, err := prob.Direction()
	require.NoError(t, err)
	assert.Equal(t, Maximize, dir)

	assert.ErrorIs(t, prob.SetDirection(Direction(-1)), ErrInvalidDirection)
}

func TestObjectiveConstant(t *testing.T) {
	prob, err := NewProblem("shift", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	assert.Equal(t, 0.0, prob.ObjectiveConstant())
	prob.SetObjectiveConstant(3.5)
	assert.Equal(t, 3.5, prob.ObjectiveConstant())
}

func TestAddRows(t *testing.T) {
	prob, err := NewProblem("rows", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(0)
	assert.ErrorIs(t, err, ErrInvalidRowCount)
	_, err = prob.AddRows(-2)
	assert.ErrorIs(t, err, ErrInvalidRowCount)

	first, err := prob.AddRows(3)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 3, prob.RowCount())

	// new rows are appended after the existing ones
	first, err = prob.AddRows(2)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, 5, prob.RowCount())
}

func TestAddColumns(t *testing.T) {
	prob, err := NewProblem("cols", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(0)
	assert.ErrorIs(t, err, ErrInvalidColumnCount)

	first, err := prob.AddColumns(4)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 4, prob.ColumnCount())
}

func TestRowColumnNames(t *testing.T) {
	prob, err := NewProblem("names", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	_, err = prob.AddColumns(1)
	require.NoError(t, err)

	assert.Equal(t, "", prob.RowName(0))
	prob.SetRowName(0, "demand")
	assert.Equal(t, "demand", prob.RowName(0))

	prob.SetColumnName(0, "x")
	assert.Equal(t, "x", prob.ColumnName(0))
	prob.SetColumnName(0, "")
	assert.Equal(t, "", prob.ColumnName(0))
}

func TestSetRowBoundsRoundTrip(t *testing.T) {
	prob, err := NewProblem("bounds", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(5)
	require.NoError(t, err)

	for i, b := range []Bounds{
		FreeBounds(),
		LowerBounds(-1.5),
		UpperBounds(7),
		RangeBounds(-2, 2),
		FixedBounds(4),
	} {
		require.NoError(t, prob.SetRowBounds(i, b))
		got, err := prob.RowBounds(i)
		require.NoError(t, err)
		assert.Equal(t, b, got, "row %d", i)
	}
}

func TestSetRowBoundsValidation(t *testing.T) {
	prob, err := NewProblem("badbounds", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	require.NoError(t, prob.SetRowBounds(0, RangeBounds(0, 10)))

	// the failed assignment must not leave a partial effect behind
	assert.ErrorIs(t, prob.SetRowBounds(0, RangeBounds(3, 1)), ErrInvalidBoundRange)
	got, err := prob.RowBounds(0)
	require.NoError(t, err)
	assert.Equal(t, RangeBounds(0, 10), got)
}

func TestSetColumnBoundsRoundTrip(t *testing.T) {
	prob, err := NewProblem("colbounds", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(2)
	require.NoError(t, err)

	// fresh columns are fixed at zero
	got, err := prob.ColumnBounds(0)
	require.NoError(t, err)
	assert.Equal(t, FixedBounds(0), got)

	require.NoError(t, prob.SetColumnBounds(1, RangeBounds(0, 40)))
	got, err = prob.ColumnBounds(1)
	require.NoError(t, err)
	assert.Equal(t, RangeBounds(0, 40), got)
}

func TestColumnKind(t *testing.T) {
	prob, err := NewProblem("kinds", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(2)
	require.NoError(t, err)

	kind, err := prob.ColumnKind(0)
	require.NoError(t, err)
	assert.Equal(t, ContinuousVariable, kind)

	require.NoError(t, prob.SetColumnKind(0, IntegerVariable))
	require.NoError(t, prob.SetColumnBounds(0, LowerBounds(2)))
	kind, err = prob.ColumnKind(0)
	require.NoError(t, err)
	assert.Equal(t, IntegerVariable, kind)

	assert.ErrorIs(t, prob.SetColumnKind(1, VariableKind(99)), ErrInvalidKind)
}

func TestBinaryKindForcesUnitBounds(t *testing.T) {
	prob, err := NewProblem("binary", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(1)
	require.NoError(t, err)
	require.NoError(t, prob.SetColumnBounds(0, RangeBounds(-5, 5)))

	require.NoError(t, prob.SetColumnKind(0, BinaryVariable))

	kind, err := prob.ColumnKind(0)
	require.NoError(t, err)
	assert.Equal(t, BinaryVariable, kind)

	got, err := prob.ColumnBounds(0)
	require.NoError(t, err)
	assert.Equal(t, RangeBounds(0, 1), got)
}

func TestObjectiveCoefficient(t *testing.T) {
	prob, err := NewProblem("obj", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(2)
	require.NoError(t, err)

	prob.SetObjectiveCoefficient(1, -2.5)
	assert.Equal(t, 0.0, prob.ObjectiveCoefficient(0))
	assert.Equal(t, -2.5, prob.ObjectiveCoefficient(1))
}

// coefficientSet flattens a sparse vector for order-insensitive
// comparison.
func coefficientSet(v *SparseVector) map[int32]float64 {
	set := make(map[int32]float64, v.Len())
	for i, idx := range v.Indices {
		set[idx] = v.Values[i]
	}
	return set
}

func TestRowCoefficients(t *testing.T) {
	prob, err := NewProblem("matrow", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(2)
	require.NoError(t, err)
	_, err = prob.AddColumns(4)
	require.NoError(t, err)

	// an empty row yields a zero-length vector, not an error
	assert.Equal(t, 0, prob.RowCoefficients(0).Len())

	require.NoError(t, prob.SetRowCoefficients(0, []int32{1, 3}, []float64{2.0, -1.0}))
	got := prob.RowCoefficients(0)
	assert.Equal(t, map[int32]float64{1: 2.0, 3: -1.0}, coefficientSet(got))

	// replacing with an empty set clears the row
	require.NoError(t, prob.SetRowCoefficients(0, nil, nil))
	assert.Equal(t, 0, prob.RowCoefficients(0).Len())
}

func TestRowCoefficientsValidation(t *testing.T) {
	prob, err := NewProblem("matrowbad", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	_, err = prob.AddColumns(2)
	require.NoError(t, err)
	require.NoError(t, prob.SetRowCoefficients(0, []int32{0}, []float64{1}))

	err = prob.SetRowCoefficients(0, []int32{0, 1}, []float64{1})
	assert.ErrorIs(t, err, ErrMismatchedLengths)

	err = prob.SetRowCoefficients(0, []int32{0, 1}, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidValue)

	// neither failure may have touched the row
	assert.Equal(t, map[int32]float64{0: 1}, coefficientSet(prob.RowCoefficients(0)))
}

func TestSetRowCoefficientReplaces(t *testing.T) {
	prob, err := NewProblem("single", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	_, err = prob.AddColumns(3)
	require.NoError(t, err)

	require.NoError(t, prob.SetRowCoefficient(0, 0, 1.0))
	require.NoError(t, prob.SetRowCoefficient(0, 2, 5.0))

	// the second call replaced the whole row, it did not accumulate
	assert.Equal(t, map[int32]float64{2: 5.0}, coefficientSet(prob.RowCoefficients(0)))
}

func TestColumnCoefficients(t *testing.T) {
	prob, err := NewProblem("matcol", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(3)
	require.NoError(t, err)
	_, err = prob.AddColumns(2)
	require.NoError(t, err)

	require.NoError(t, prob.SetColumnCoefficients(1, []int32{0, 2}, []float64{4.0, 0.5}))
	assert.Equal(t, map[int32]float64{0: 4.0, 2: 0.5}, coefficientSet(prob.ColumnCoefficients(1)))
	assert.Equal(t, 0, prob.ColumnCoefficients(0).Len())

	// the row-major view reflects the column-major mutation
	assert.Equal(t, map[int32]float64{1: 4.0}, coefficientSet(prob.RowCoefficients(0)))
}

func TestDeleteRows(t *testing.T) {
	prob, err := NewProblem("delrows", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		prob.SetRowName(i, fmt.Sprintf("r%d", i))
	}

	prob.DeleteRows(nil) // no-op
	assert.Equal(t, 5, prob.RowCount())

	prob.DeleteRows([]int{0, 2})
	assert.Equal(t, 3, prob.RowCount())

	// survivors are renumbered contiguously, relative order preserved
	assert.Equal(t, "r1", prob.RowName(0))
	assert.Equal(t, "r3", prob.RowName(1))
	assert.Equal(t, "r4", prob.RowName(2))
}

func TestDeleteColumns(t *testing.T) {
	prob, err := NewProblem("delcols", Minimize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddColumns(4)
	require.NoError(t, err)
	for j := 0; j < 4; j++ {
		prob.SetColumnName(j, fmt.Sprintf("x%d", j))
	}

	prob.DeleteColumns([]int{1, 3})
	assert.Equal(t, 2, prob.ColumnCount())
	assert.Equal(t, "x0", prob.ColumnName(0))
	assert.Equal(t, "x2", prob.ColumnName(1))
}

func TestClone(t *testing.T) {
	prob, err := NewProblem("original", Maximize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(2)
	require.NoError(t, err)
	_, err = prob.AddColumns(3)
	require.NoError(t, err)
	require.NoError(t, prob.SetRowCoefficients(0, []int32{0, 1}, []float64{1, 2}))

	clone := prob.Clone()
	defer clone.Close()

	assert.Equal(t, prob.Name(), clone.Name())
	assert.Equal(t, prob.RowCount(), clone.RowCount())
	assert.Equal(t, prob.ColumnCount(), clone.ColumnCount())
	assert.Equal(t, coefficientSet(prob.RowCoefficients(0)), coefficientSet(clone.RowCoefficients(0)))

	dir, err := clone.Direction()
	require.NoError(t, err)
	assert.Equal(t, Maximize, dir)

	// clearing the clone must not affect the original, and vice versa
	clone.Clear()
	assert.Equal(t, 0, clone.RowCount())
	assert.Equal(t, 2, prob.RowCount())

	_, err = prob.AddRows(1)
	require.NoError(t, err)
	assert.Equal(t, 0, clone.RowCount())
}

func TestClear(t *testing.T) {
	prob, err := NewProblem("clearme", Maximize)
	require.NoError(t, err)
	defer prob.Close()

	_, err = prob.AddRows(3)
	require.NoError(t, err)
	_, err = prob.AddColumns(2)
	require.NoError(t, err)

	prob.Clear()

	assert.Equal(t, 0, prob.RowCount())
	assert.Equal(t, 0, prob.ColumnCount())
	assert.Equal(t, "clearme", prob.Name())

	// erasing the backing structure resets the direction to Minimize
	dir, err := prob.Direction()
	require.NoError(t, err)
	assert.Equal(t, Minimize, dir)
}

/* Benchmarks */

/*
 * BenchmarkMemoryLeaks is a hack to check if the GC really gets rid of
 * unreferenced problem values.
 */
func BenchmarkMemoryLeaks(b *testing.B) {
	if testing.Short() {
		b.SkipNow()
	}
	b.ReportAllocs()
	const n = 100000
	for i := 0; i < n; i++ {
		NewProblem(strconv.Itoa(i), Minimize)
	}
	runtime.GC()
	time.Sleep(10 * time.Second)
}

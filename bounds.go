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
)

type BoundType C.int

const (
	NoBound     = BoundType(C.GLP_FR)
	LowerBound  = BoundType(C.GLP_LO)
	UpperBound  = BoundType(C.GLP_UP)
	DoubleBound = BoundType(C.GLP_DB)
	FixedBound  = BoundType(C.GLP_FX)
)

// boundTypeFromC converts a GLPK bound-type constant back into a
// BoundType, failing for values outside the known set.
func boundTypeFromC(t C.int) (BoundType, error) {
	switch BoundType(t) {
	case NoBound, LowerBound, UpperBound, DoubleBound, FixedBound:
		return BoundType(t), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidBoundType, int(t))
}

// Bounds describes the feasible range of a row or column. Only the fields
// relevant to Type carry meaning; the constructors below leave the unused
// ones zeroed.
type Bounds struct {
	Type  BoundType
	Lower float64
	Upper float64
}

// FreeBounds returns bounds placing no constraint on the value.
func FreeBounds() Bounds {
	return Bounds{Type: NoBound}
}

// LowerBounds returns bounds constraining the value to be at least lower.
func LowerBounds(lower float64) Bounds {
	return Bounds{Type: LowerBound, Lower: lower}
}

// UpperBounds returns bounds constraining the value to be at most upper.
func UpperBounds(upper float64) Bounds {
	return Bounds{Type: UpperBound, Upper: upper}
}

// RangeBounds returns bounds constraining the value to [lower, upper].
func RangeBounds(lower, upper float64) Bounds {
	return Bounds{Type: DoubleBound, Lower: lower, Upper: upper}
}

// FixedBounds returns bounds fixing the value to exactly value.
func FixedBounds(value float64) Bounds {
	return Bounds{Type: FixedBound, Lower: value, Upper: value}
}

// NewBounds derives the bound shape from its arguments: an infinite lower
// or upper bound (the sign of the infinity is ignored) drops that side of
// the constraint, and equal finite bounds fix the value.
func NewBounds(lower, upper float64) Bounds {
	switch {
	case math.IsInf(lower, 0) && math.IsInf(upper, 0):
		return FreeBounds()
	case math.IsInf(lower, 0):
		return UpperBounds(upper)
	case math.IsInf(upper, 0):
		return LowerBounds(lower)
	case upper == lower:
		return FixedBounds(lower)
	default:
		return RangeBounds(lower, upper)
	}
}

// Validate reports whether the bounds are well-formed. Both stored values
// must be finite regardless of shape; a double bound additionally requires
// Lower <= Upper and a fixed bound requires Lower == Upper.
func (b Bounds) Validate() error {
	switch b.Type {
	case NoBound, LowerBound, UpperBound, DoubleBound, FixedBound:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBoundType, int(b.Type))
	}
	if math.IsNaN(b.Lower) || math.IsInf(b.Lower, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidLowerBound, b.Lower)
	}
	if math.IsNaN(b.Upper) || math.IsInf(b.Upper, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidUpperBound, b.Upper)
	}
	switch b.Type {
	case DoubleBound:
		if b.Lower > b.Upper {
			return fmt.Errorf("%w: %g > %g", ErrInvalidBoundRange, b.Lower, b.Upper)
		}
	case FixedBound:
		if b.Lower != b.Upper {
			return fmt.Errorf("%w: %g != %g", ErrInconsistentFixedBounds, b.Lower, b.Upper)
		}
	}
	return nil
}

// boundsFromC reconstructs a Bounds value from the GLPK bound type and the
// raw lower/upper values, zeroing the sides the shape does not use.
func boundsFromC(t C.int, lb, ub C.double) (Bounds, error) {
	bt, err := boundTypeFromC(t)
	if err != nil {
		return Bounds{}, err
	}
	switch bt {
	case LowerBound:
		return LowerBounds(float64(lb)), nil
	case UpperBound:
		return UpperBounds(float64(ub)), nil
	case DoubleBound:
		return RangeBounds(float64(lb), float64(ub)), nil
	case FixedBound:
		// according to the glpk docs, only lb is used for fixed bounds
		return FixedBounds(float64(lb)), nil
	default:
		return FreeBounds(), nil
	}
}

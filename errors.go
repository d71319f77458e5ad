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
	"errors"
	"fmt"
)

// Validation errors. All of them are detected in Go, before any value
// reaches the GLPK library; an operation failing with one of these has not
// mutated the problem.
var (
	ErrInvalidLowerBound       = errors.New("glp: lower bound is not a finite number")
	ErrInvalidUpperBound       = errors.New("glp: upper bound is not a finite number")
	ErrInvalidBoundRange       = errors.New("glp: lower bound is greater than upper bound")
	ErrInconsistentFixedBounds = errors.New("glp: fixed bounds with differing lower and upper values")
	ErrMismatchedLengths       = errors.New("glp: index and value slices differ in length")
	ErrInvalidValue            = errors.New("glp: coefficient is not a finite number")
	ErrInvalidRowCount         = errors.New("glp: row count must be positive")
	ErrInvalidColumnCount      = errors.New("glp: column count must be positive")
	ErrInvalidDirection        = errors.New("glp: unknown objective direction")
	ErrInvalidBoundType        = errors.New("glp: unknown bound type")
	ErrInvalidKind             = errors.New("glp: unknown variable kind")
	ErrFileWriteFailed         = errors.New("glp: writing problem file failed")
)

// BackendError reports a GLPK call that returned a failure code for an
// operation expected to succeed on valid input.
type BackendError struct {
	Op   string
	Code int
}

func (e *BackendError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("glp: %s failed with code %d", e.Op, e.Code)
	}
	return fmt.Sprintf("glp: %s failed", e.Op)
}

// SolveError is a GLPK solver return code.
type SolveError C.int

const (
	ErrBadBasis         = SolveError(C.GLP_EBADB)
	ErrSingularBasis    = SolveError(C.GLP_ESING)
	ErrIllConditioned   = SolveError(C.GLP_ECOND)
	ErrBadBounds        = SolveError(C.GLP_EBOUND)
	ErrSolverFailure    = SolveError(C.GLP_EFAIL)
	ErrObjLowerLimit    = SolveError(C.GLP_EOBJLL)
	ErrObjUpperLimit    = SolveError(C.GLP_EOBJUL)
	ErrIterationLimit   = SolveError(C.GLP_EITLIM)
	ErrTimeLimit        = SolveError(C.GLP_ETMLIM)
	ErrNoPrimalFeasible = SolveError(C.GLP_ENOPFS)
	ErrNoDualFeasible   = SolveError(C.GLP_ENODFS)
	ErrRootNotOptimal   = SolveError(C.GLP_EROOT)
	ErrStopped          = SolveError(C.GLP_ESTOP)
	ErrMIPGap           = SolveError(C.GLP_EMIPGAP)
)

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	switch e {
	case ErrBadBasis:
		return "initial basis invalid"
	case ErrSingularBasis:
		return "initial basis is exactly singular"
	case ErrIllConditioned:
		return "initial basis is ill-conditioned"
	case ErrBadBounds:
		return "double-bounded variable has incorrect bounds"
	case ErrSolverFailure:
		return "solver failure"
	case ErrObjLowerLimit:
		return "objective lower limit reached"
	case ErrObjUpperLimit:
		return "objective upper limit reached"
	case ErrIterationLimit:
		return "simplex iteration limit exceeded"
	case ErrTimeLimit:
		return "time limit exceeded"
	case ErrNoPrimalFeasible:
		return "LP has no primal feasible solution"
	case ErrNoDualFeasible:
		return "LP has no dual feasible solution"
	case ErrRootNotOptimal:
		return "optimal basis for initial LP relaxation not provided and presolver not used"
	case ErrStopped:
		return "search terminated by application"
	case ErrMIPGap:
		return "MIP gap tolerance reached"
	default:
		return fmt.Sprintf("unknown glpk error: %d", int(e))
	}
}

// solveError maps a GLPK solver return code to an error, with 0 meaning
// success.
func solveError(ret C.int) error {
	if ret == 0 {
		return nil
	}
	return SolveError(ret)
}

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

/*

Package glp wraps the GLPK library for modeling and solving linear and
mixed-integer programming problems.

A problem is built row by row (constraints) and column by column
(variables). All indices in the public API are 0-based; the translation to
GLPK's 1-based ordinal space happens inside the package. Inputs are
validated in Go before they reach the C library, so invalid bounds or
coefficients are reported as errors instead of aborting the process.

As an example, the model of the following problem:

    Maximize:
      z = x1 + 2 x2 - x3
    With:
      0 <= x1, x2, x3
    Subject to:
      2 x1 + x2 + x3 <= 14
      4 x1 + 2 x2 + 3 x3 <= 28

can be expressed with glp like this:

	package main

	import (
		"fmt"

		"github.com/mlevan/glp"
	)

	func main() {
		prob, _ := glp.NewProblem("example", glp.Maximize)
		defer prob.Close()

		first, _ := prob.AddColumns(3)
		for i := 0; i < 3; i++ {
			prob.SetColumnBounds(first+i, glp.LowerBounds(0))
		}
		prob.SetObjectiveCoefficient(0, 1)
		prob.SetObjectiveCoefficient(1, 2)
		prob.SetObjectiveCoefficient(2, -1)

		row, _ := prob.AddRows(2)
		prob.SetRowBounds(row, glp.UpperBounds(14))
		prob.SetRowCoefficients(row, []int32{0, 1, 2}, []float64{2, 1, 1})
		prob.SetRowBounds(row+1, glp.UpperBounds(28))
		prob.SetRowCoefficients(row+1, []int32{0, 1, 2}, []float64{4, 2, 3})

		res, _ := prob.SolveSimplex() // you should check for errors

		fmt.Printf("z = %f\n", res.ObjectiveValue())
		fmt.Printf("x1 = %f\n", res.PrimalValue(0))
	}

A Problem is not safe for concurrent use; see Clone for obtaining an
independent copy.

*/
package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"
)

/* Types */

// Problem owns an opaque GLPK problem object. It must be released with
// Close; a finalizer covers values that are garbage-collected without an
// explicit Close. Using a Problem after Close is undefined.
type Problem struct {
	prob     *C.glp_prob
	logger   Logger
	verbose  bool
	presolve bool
}

type Direction C.int

const (
	Minimize = Direction(C.GLP_MIN)
	Maximize = Direction(C.GLP_MAX)
)

// directionFromC converts a GLPK objective-direction constant back into a
// Direction. Foreign values outside the known set are an error, never a
// silent default.
func directionFromC(dir C.int) (Direction, error) {
	switch Direction(dir) {
	case Minimize, Maximize:
		return Direction(dir), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
}

/* Problem related functions */

// NewProblem instantiates a new problem, providing a name (purely
// informational) and an optimization direction (either Minimize or
// Maximize).
func NewProblem(name string, dir Direction, opts ...Option) (*Problem, error) {
	if dir != Minimize && dir != Maximize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	prob := C.glp_create_prob()
	if prob == nil {
		return nil, &BackendError{Op: "NewProblem"}
	}

	p := &Problem{
		prob:     prob,
		logger:   noopLogger{},
		presolve: true,
	}
	p.finishInitialization()

	p.SetName(name)
	C.glp_set_obj_dir(prob, C.int(dir))

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Close()
			return nil, fmt.Errorf("applying problem option: %w", err)
		}
	}

	return p, nil
}

// finishInitialization performs steps that are common to NewProblem() and Clone().
func (p *Problem) finishInitialization() {
	// plug the underlying C library's destructor to the instance of Problem,
	// otherwise we get a memory-leak of the underlying struct
	runtime.SetFinalizer(p, (*Problem).Close)
}

// Close releases the backing GLPK structure. It is safe to call Close
// multiple times; any call after the first is a no-op.
func (p *Problem) Close() {
	if p.prob != nil {
		C.glp_delete_prob(p.prob)
		p.prob = nil
	}
}

// Clone returns a deep copy of the problem, including names, bounds,
// kinds and the coefficient matrix. The copy shares no mutable state with
// the original: mutating either side never affects the other.
func (p *Problem) Clone() *Problem {
	prob := C.glp_create_prob()
	C.glp_copy_prob(prob, p.prob, C.GLP_ON)

	clone := &Problem{
		prob:     prob,
		logger:   p.logger,
		verbose:  p.verbose,
		presolve: p.presolve,
	}
	clone.finishInitialization()

	return clone
}

// Clear removes all rows and columns from the problem. The backing
// structure is erased wholesale, which also resets the objective direction
// to Minimize and the objective constant to 0; this is an intentional,
// documented side effect. The problem name is preserved.
func (p *Problem) Clear() {
	name := p.Name()
	C.glp_erase_prob(p.prob)
	p.SetName(name)
}

// Name returns the name of the problem, or the empty string if it has
// none.
func (p *Problem) Name() string {
	name := C.glp_get_prob_name(p.prob)
	if name == nil {
		return ""
	}
	return C.GoString(name)
}

// SetName changes the name of the problem. An empty name clears it.
func (p *Problem) SetName(name string) {
	if name == "" {
		C.glp_set_prob_name(p.prob, nil)
		return
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	C.glp_set_prob_name(p.prob, cName)
}

// SetDirection changes the direction of the problem's optimization.
func (p *Problem) SetDirection(dir Direction) error {
	if dir != Minimize && dir != Maximize {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	C.glp_set_obj_dir(p.prob, C.int(dir))
	return nil
}

// Direction returns the problem's current optimization direction.
func (p *Problem) Direction() (Direction, error) {
	return directionFromC(C.glp_get_obj_dir(p.prob))
}

// SetObjectiveConstant sets the constant (shift) term of the objective
// function.
func (p *Problem) SetObjectiveConstant(c float64) {
	// ordinal 0 addresses the constant term in GLPK
	C.glp_set_obj_coef(p.prob, 0, C.double(c))
}

// ObjectiveConstant returns the constant term of the objective function.
func (p *Problem) ObjectiveConstant() float64 {
	return float64(C.glp_get_obj_coef(p.prob, 0))
}

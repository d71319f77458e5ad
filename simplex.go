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

// SolutionStatus is the status of a solution as reported by GLPK.
type SolutionStatus C.int

const (
	SolutionOptimal    = SolutionStatus(C.GLP_OPT)
	SolutionFeasible   = SolutionStatus(C.GLP_FEAS)
	SolutionInfeasible = SolutionStatus(C.GLP_INFEAS)
	SolutionNoFeasible = SolutionStatus(C.GLP_NOFEAS)
	SolutionUnbounded  = SolutionStatus(C.GLP_UNBND)
	SolutionUndefined  = SolutionStatus(C.GLP_UNDEF)
)

func (s SolutionStatus) String() string {
	switch s {
	case SolutionOptimal:
		return "optimal"
	case SolutionFeasible:
		return "feasible"
	case SolutionInfeasible:
		return "infeasible"
	case SolutionNoFeasible:
		return "no feasible solution"
	case SolutionUnbounded:
		return "unbounded"
	case SolutionUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

type SimplexResult struct {
	p *Problem
}

// SolveSimplex solves the problem's LP relaxation using the primal
// simplex algorithm.
func (p *Problem) SolveSimplex() (*SimplexResult, error) {
	return p.solveSimplex(C.GLP_PRIMAL)
}

// SolveSimplexDual solves the problem's LP relaxation using the dual
// simplex algorithm, falling back to the primal one on failure.
func (p *Problem) SolveSimplexDual() (*SimplexResult, error) {
	return p.solveSimplex(C.GLP_DUALP)
}

func (p *Problem) solveSimplex(method C.int) (*SimplexResult, error) {
	var parm C.glp_smcp
	C.glp_init_smcp(&parm)
	parm.meth = method

	if p.verbose {
		parm.msg_lev = C.GLP_MSG_ON
	} else {
		parm.msg_lev = C.GLP_MSG_OFF
	}

	if p.presolve {
		parm.presolve = C.GLP_ON
	} else {
		parm.presolve = C.GLP_OFF
	}

	restore := p.installTermHook()
	defer restore()

	if err := solveError(C.glp_simplex(p.prob, &parm)); err != nil {
		return nil, err
	}
	return &SimplexResult{p: p}, nil
}

/* Result-related functions */

func (res *SimplexResult) Status() SolutionStatus {
	return SolutionStatus(C.glp_get_status(res.p.prob))
}

func (res *SimplexResult) ObjectiveValue() float64 {
	return float64(C.glp_get_obj_val(res.p.prob))
}

// PrimalValue returns the computed value of the given column.
func (res *SimplexResult) PrimalValue(col int) float64 {
	return float64(C.glp_get_col_prim(res.p.prob, cIndex(col)))
}

// DualValue returns the reduced cost of the given column.
func (res *SimplexResult) DualValue(col int) float64 {
	return float64(C.glp_get_col_dual(res.p.prob, cIndex(col)))
}

// RowPrimalValue returns the computed value of the given row's linear
// form.
func (res *SimplexResult) RowPrimalValue(row int) float64 {
	return float64(C.glp_get_row_prim(res.p.prob, cIndex(row)))
}

// RowDualValue returns the shadow price of the given row.
func (res *SimplexResult) RowDualValue(row int) float64 {
	return float64(C.glp_get_row_dual(res.p.prob, cIndex(row)))
}

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
/*
// https://golang.org/issue/19837
extern void mipCallback(glp_tree *tree, void *info);
static void glp_set_mip_callback(glp_iocp *parm, void *info) {
	parm->cb_func = mipCallback;
	parm->cb_info = info;
}
*/
import "C"

import (
	"context"
	"errors"
)

type BranchCutResult struct {
	p *Problem
}

// SolveBranchCut solves the problem using the branch-and-cut algorithm.
// Suited for mixed-integer problems, i.e. problems with integer and/or
// binary columns. The MIP presolver is driven by the problem's presolve
// setting; with it disabled, an optimal simplex basis must be computed
// first (see SolveSimplex).
func (p *Problem) SolveBranchCut() (*BranchCutResult, error) {
	return p.solveBranchCut(nil)
}

// SolveBranchCutWithContext wraps SolveBranchCut with a context. If the
// context is cancelled or times out, the search is aborted and the context
// error is returned.
func (p *Problem) SolveBranchCutWithContext(ctx context.Context) (*BranchCutResult, error) {
	res, err := p.solveBranchCut(ctx)

	if errors.Is(err, ErrStopped) && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return res, err
}

func (p *Problem) solveBranchCut(ctx context.Context) (*BranchCutResult, error) {
	var parm C.glp_iocp
	C.glp_init_iocp(&parm)

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

	if ctx != nil {
		ref := saveRef(ctx)
		defer dropRef(ref)
		C.glp_set_mip_callback(&parm, ref)
	}

	restore := p.installTermHook()
	defer restore()

	if err := solveError(C.glp_intopt(p.prob, &parm)); err != nil {
		return nil, err
	}
	return &BranchCutResult{p: p}, nil
}

/* Result-related functions */

func (res *BranchCutResult) Status() SolutionStatus {
	return SolutionStatus(C.glp_mip_status(res.p.prob))
}

func (res *BranchCutResult) ObjectiveValue() float64 {
	return float64(C.glp_mip_obj_val(res.p.prob))
}

// Value returns the computed value of the given column.
func (res *BranchCutResult) Value(col int) float64 {
	return float64(C.glp_mip_col_val(res.p.prob, cIndex(col)))
}

// RowValue returns the computed value of the given row's linear form.
func (res *BranchCutResult) RowValue(row int) float64 {
	return float64(C.glp_mip_row_val(res.p.prob, cIndex(row)))
}

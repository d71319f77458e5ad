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
	"os"
	"unsafe"
)

// Format selects the interchange format used by Problem.WriteFile. The
// byte-level layout of each format is defined by GLPK, not by this
// package.
type Format int

const (
	// FormatCPLEXLP is the CPLEX LP text format.
	FormatCPLEXLP Format = iota
	// FormatMPSFree is the free (modern) MPS format.
	FormatMPSFree
	// FormatMPSFixed is the fixed (ancient) MPS format.
	FormatMPSFixed
	// FormatGLPK is GLPK's own problem-data format.
	FormatGLPK
)

// WriteFile serializes the problem to path in the given format using the
// GLPK writers. If the writer reports failure, a partially written file is
// removed best-effort and the write error is returned.
func (p *Problem) WriteFile(path string, format Format) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	restore := p.installTermHook()
	defer restore()

	var ret C.int
	switch format {
	case FormatCPLEXLP:
		ret = C.glp_write_lp(p.prob, nil, cPath)
	case FormatMPSFree:
		ret = C.glp_write_mps(p.prob, C.GLP_MPS_FILE, nil, cPath)
	case FormatMPSFixed:
		ret = C.glp_write_mps(p.prob, C.GLP_MPS_DECK, nil, cPath)
	case FormatGLPK:
		ret = C.glp_write_prob(p.prob, 0, cPath)
	default:
		return fmt.Errorf("%w: unknown format %d", ErrFileWriteFailed, int(format))
	}

	if ret != 0 {
		os.Remove(path)
		return fmt.Errorf("%w: %s", ErrFileWriteFailed, path)
	}
	return nil
}

package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
import "C"

import "fmt"

type VariableKind C.int

const (
	ContinuousVariable = VariableKind(C.GLP_CV)
	IntegerVariable    = VariableKind(C.GLP_IV)
	BinaryVariable     = VariableKind(C.GLP_BV)
)

// kindFromC converts a GLPK column-kind constant back into a VariableKind,
// failing for values outside the known set.
func kindFromC(k C.int) (VariableKind, error) {
	switch VariableKind(k) {
	case ContinuousVariable, IntegerVariable, BinaryVariable:
		return VariableKind(k), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
}

func (k VariableKind) String() string {
	switch k {
	case ContinuousVariable:
		return "continuous"
	case IntegerVariable:
		return "integer"
	case BinaryVariable:
		return "binary"
	default:
		return fmt.Sprintf("VariableKind(%d)", int(k))
	}
}

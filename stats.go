package glp

// #cgo LDFLAGS: -lglpk
// #include <glpk.h>
import "C"

// Stats is a read-only snapshot of a problem's dimensions, recomputed on
// every call to Problem.Stats. It is not transactional with respect to
// concurrent mutation.
type Stats struct {
	Name      string
	Direction Direction
	Rows      int
	Columns   int
	NonZeros  int
	Integers  int
	Binaries  int
}

// Stats gathers a snapshot of the problem: row/column counts, the number
// of non-zero coefficients (summed over all rows), and the number of
// integer and binary columns (scanning every column's kind).
func (p *Problem) Stats() (Stats, error) {
	dir, err := p.Direction()
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		Name:      p.Name(),
		Direction: dir,
		Rows:      p.RowCount(),
		Columns:   p.ColumnCount(),
	}

	for i := 0; i < s.Rows; i++ {
		s.NonZeros += int(C.glp_get_mat_row(p.prob, cIndex(i), nil, nil))
	}

	for j := 0; j < s.Columns; j++ {
		kind, err := p.ColumnKind(j)
		if err != nil {
			return Stats{}, err
		}
		switch kind {
		case IntegerVariable:
			s.Integers++
		case BinaryVariable:
			s.Binaries++
		}
	}

	return s, nil
}

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mlevan/glp"
)

func main() {
	// Maximize: z = 17 x1 + 12 x2
	// Subject to: 10 x1 + 7 x2 <= 40
	//              x1 +   x2 <= 5
	// With: x1, x2 integer, 0 <= x1, x2
	prob, err := glp.NewProblem("example", glp.Maximize)
	if err != nil {
		log.Fatal(err)
	}
	defer prob.Close()

	first, _ := prob.AddColumns(2)
	for j := first; j < first+2; j++ {
		prob.SetColumnName(j, fmt.Sprintf("x%d", j+1))
		if err := prob.SetColumnBounds(j, glp.LowerBounds(0)); err != nil {
			log.Fatal(err)
		}
		if err := prob.SetColumnKind(j, glp.IntegerVariable); err != nil {
			log.Fatal(err)
		}
	}
	prob.SetObjectiveCoefficient(0, 17)
	prob.SetObjectiveCoefficient(1, 12)

	row, _ := prob.AddRows(2)
	prob.SetRowBounds(row, glp.UpperBounds(40))
	prob.SetRowCoefficients(row, []int32{0, 1}, []float64{10, 7})
	prob.SetRowBounds(row+1, glp.UpperBounds(5))
	prob.SetRowCoefficients(row+1, []int32{0, 1}, []float64{1, 1})

	stats, err := prob.Stats()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %d rows, %d columns, %d non-zeros, %d integer\n",
		stats.Name, stats.Rows, stats.Columns, stats.NonZeros, stats.Integers)

	res, err := prob.SolveBranchCut()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("solution optimal? %t\n", res.Status() == glp.SolutionOptimal)
	fmt.Printf("z = %f\n", res.ObjectiveValue())
	fmt.Printf("x1 = %f, x2 = %f\n", res.Value(0), res.Value(1))

	path := filepath.Join(os.TempDir(), "example.lp")
	if err := prob.WriteFile(path, glp.FormatCPLEXLP); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("model written to %s\n", path)
}

// Some helpers using closures to generate operand matrices
package valgen

import (
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

func MakeConstGen(constant systolic.Operand) func(r, c int) systolic.Operand {
	return func(r, c int) systolic.Operand {
		return constant
	}
}

// MakeDiagonalGen generates diag on the diagonal and off elsewhere.
func MakeDiagonalGen(diag, off systolic.Operand) func(r, c int) systolic.Operand {
	return func(r, c int) systolic.Operand {
		if r == c {
			return diag
		}
		return off
	}
}

// MakeSumGen generates offset + r + c.
func MakeSumGen(offset systolic.Operand) func(r, c int) systolic.Operand {
	return func(r, c int) systolic.Operand {
		return offset + systolic.Operand(r) + systolic.Operand(c)
	}
}

// Fill builds a rows x cols matrix from a generator.
func Fill(rows, cols int, gen func(r, c int) systolic.Operand) [][]systolic.Operand {
	out := make([][]systolic.Operand, rows)
	for r := range out {
		out[r] = make([]systolic.Operand, cols)
		for c := range out[r] {
			out[r][c] = gen(r, c)
		}
	}
	return out
}

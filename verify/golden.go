// Package verify provides the reference model and harness used to check
// the cycle-accurate engine against exact matrix arithmetic.
//
// The engine is checked in two stages:
//
//  1. Product computes the expected result with plain nested loops and
//     unbounded (64-bit) integer arithmetic. It knows nothing about
//     cycles, skewing, or the load protocol, so it cannot share a timing
//     bug with the engine.
//
//  2. RunGEMM drives a core.Engine through the two-phase protocol tick
//     by tick and collects the product on the derived output schedule.
//
// Compare turns the two matrices into a report listing every mismatch.
package verify

import (
	"fmt"

	"github.com/SamuelNadutey/systolic-array-accelerator/core"
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// Product computes a times b with exact integer arithmetic. a is M x K,
// b is K x N; the result is M x N.
func Product(a, b [][]systolic.Operand) [][]systolic.Accum {
	m := len(a)
	k := len(b)
	n := 0
	if k > 0 {
		n = len(b[0])
	}

	out := make([][]systolic.Accum, m)
	for i := 0; i < m; i++ {
		out[i] = make([]systolic.Accum, n)
		for j := 0; j < n; j++ {
			var sum systolic.Accum
			for x := 0; x < k; x++ {
				sum += systolic.Accum(a[i][x]) * systolic.Accum(b[x][j])
			}
			out[i][j] = sum
		}
	}

	return out
}

// RunGEMM drives eng through the two-phase protocol synchronously and
// returns the collected product. Rows of the weight matrix b are loaded
// last to first so that the value passing each row on the final load
// cycle is the one that stays resident there; then a streams one row per
// cycle and the pipeline drains for the grid's latency.
//
// b must be Rows x Cols and every row of a must have Rows entries.
func RunGEMM(
	eng *core.Engine,
	a, b [][]systolic.Operand,
) ([][]systolic.Accum, error) {
	rows := eng.Rows()
	cols := eng.Cols()

	if len(b) != rows {
		return nil, fmt.Errorf("weight matrix has %d rows, grid has %d",
			len(b), rows)
	}
	for r, row := range b {
		if len(row) != cols {
			return nil, fmt.Errorf("weight row %d has %d entries, want %d",
				r, len(row), cols)
		}
	}
	for i, row := range a {
		if len(row) != rows {
			return nil, fmt.Errorf("ifmap row %d has %d entries, want %d",
				i, len(row), rows)
		}
	}

	m := len(a)
	out := make([][]systolic.Accum, m)
	for i := range out {
		out[i] = make([]systolic.Accum, cols)
	}

	zeroIfmap := make([]systolic.Operand, rows)
	zeroWeight := make([]systolic.Operand, cols)

	// Output row i, column c completes at cycle rows+i+c+(rows-1).
	record := func(cycle int, psums []systolic.Accum) {
		for c, v := range psums {
			i := cycle - rows - c - (rows - 1)
			if i >= 0 && i < m {
				out[i][c] = v
			}
		}
	}

	cycle := 0

	for t := 0; t < rows; t++ {
		res, err := eng.Tick(zeroIfmap, b[rows-1-t], true)
		if err != nil {
			return nil, err
		}
		record(cycle, res)
		cycle++
	}

	for i := 0; i < m; i++ {
		res, err := eng.Tick(a[i], zeroWeight, false)
		if err != nil {
			return nil, err
		}
		record(cycle, res)
		cycle++
	}

	for t := 0; t < eng.Latency(); t++ {
		res, err := eng.Tick(zeroIfmap, zeroWeight, false)
		if err != nil {
			return nil, err
		}
		record(cycle, res)
		cycle++
	}

	return out, nil
}

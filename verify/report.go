package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// A Mismatch is one result element that differs from the reference.
type Mismatch struct {
	Row, Col      int
	Expected, Got systolic.Accum
}

// A Report holds the outcome of comparing a simulated product against
// the reference product.
type Report struct {
	Rows, Cols int
	Mismatches []Mismatch
}

// Compare checks got element-wise against expected.
func Compare(expected, got [][]systolic.Accum) *Report {
	r := &Report{
		Rows: len(expected),
	}
	if r.Rows > 0 {
		r.Cols = len(expected[0])
	}

	for i := range expected {
		for j := range expected[i] {
			if got[i][j] != expected[i][j] {
				r.Mismatches = append(r.Mismatches, Mismatch{
					Row:      i,
					Col:      j,
					Expected: expected[i][j],
					Got:      got[i][j],
				})
			}
		}
	}

	return r
}

// OK reports whether the simulated product matched the reference.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// WriteReport writes a formatted report to a writer.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "GEMM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Result shape: %d x %d\n", r.Rows, r.Cols)

	if r.OK() {
		fmt.Fprintln(w, "Result: PASS (exact match with reference product)")
		fmt.Fprintln(w, separator)
		return
	}

	fmt.Fprintf(w, "Result: FAIL (%d mismatches)\n", len(r.Mismatches))
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  [%d][%d] expected %d, got %d\n",
			m.Row, m.Col, m.Expected, m.Got)
	}
	fmt.Fprintln(w, separator)
}

package core

import (
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// A Grid is the rectangular mesh of processing elements. Elements live in
// a flat row-major slice; the mesh wiring is implicit in the indexing.
// Input operands flow west to east along rows, weights and partial sums
// flow north to south along columns, and the bottom edge of the last row
// is the output boundary.
//
// Every element observes the wire values its upstream neighbors produced
// on the previous tick: Tick computes all new wire values from the
// committed snapshot and only then swaps the snapshot in, so updates are
// simultaneous rather than a sequential cascade within one tick.
type Grid struct {
	rows, cols int

	accMin, accMax systolic.Accum

	pes []PE

	ifmapWires  []systolic.Operand
	weightWires []systolic.Operand
	psumWires   []systolic.Accum

	nextIfmap  []systolic.Operand
	nextWeight []systolic.Operand
	nextPsum   []systolic.Accum

	bottom []systolic.Accum

	overflow bool
}

// NewGrid creates a rows x cols grid. Partial sums leaving any element
// are saturated to [accMin, accMax]; crossing either bound latches the
// sticky overflow flag.
func NewGrid(rows, cols int, accMin, accMax systolic.Accum) *Grid {
	if rows < 1 || cols < 1 {
		panic("grid dimensions must be positive")
	}

	n := rows * cols
	return &Grid{
		rows:        rows,
		cols:        cols,
		accMin:      accMin,
		accMax:      accMax,
		pes:         make([]PE, n),
		ifmapWires:  make([]systolic.Operand, n),
		weightWires: make([]systolic.Operand, n),
		psumWires:   make([]systolic.Accum, n),
		nextIfmap:   make([]systolic.Operand, n),
		nextWeight:  make([]systolic.Operand, n),
		nextPsum:    make([]systolic.Accum, n),
		bottom:      make([]systolic.Accum, cols),
	}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Weight returns the stationary weight held by the element at (row, col).
func (g *Grid) Weight(row, col int) systolic.Operand {
	return g.pes[row*g.cols+col].Weight()
}

// Overflow reports whether any partial sum left the accumulator range
// since the last reset.
func (g *Grid) Overflow() bool {
	return g.overflow
}

// Tick advances the whole mesh by one cycle. loadPhase is broadcast
// unchanged to every element. The returned slice holds the partial sums
// leaving the bottom edge this cycle and is reused on the next call.
func (g *Grid) Tick(
	ifmapRowInputs, weightColInputs []systolic.Operand,
	loadPhase bool,
) []systolic.Accum {
	if len(ifmapRowInputs) != g.rows || len(weightColInputs) != g.cols {
		panic("grid fed with mis-sized boundary vectors")
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c

			ifmapIn := ifmapRowInputs[r]
			if c > 0 {
				ifmapIn = g.ifmapWires[i-1]
			}

			weightIn := weightColInputs[c]
			psumIn := systolic.Accum(0)
			if r > 0 {
				weightIn = g.weightWires[i-g.cols]
				psumIn = g.psumWires[i-g.cols]
			}

			ifmapOut, weightOut, psumOut :=
				g.pes[i].Tick(ifmapIn, weightIn, psumIn, loadPhase)

			g.nextIfmap[i] = ifmapOut
			g.nextWeight[i] = weightOut
			g.nextPsum[i] = g.saturate(psumOut)
		}
	}

	g.ifmapWires, g.nextIfmap = g.nextIfmap, g.ifmapWires
	g.weightWires, g.nextWeight = g.nextWeight, g.weightWires
	g.psumWires, g.nextPsum = g.nextPsum, g.psumWires

	copy(g.bottom, g.psumWires[(g.rows-1)*g.cols:])

	return g.bottom
}

func (g *Grid) saturate(v systolic.Accum) systolic.Accum {
	if v > g.accMax {
		g.overflow = true
		return g.accMax
	}
	if v < g.accMin {
		g.overflow = true
		return g.accMin
	}
	return v
}

// Reset clears every element, every wire, and the overflow flag.
func (g *Grid) Reset() {
	for i := range g.pes {
		g.pes[i].Reset()
	}
	for i := range g.ifmapWires {
		g.ifmapWires[i] = 0
		g.weightWires[i] = 0
		g.psumWires[i] = 0
	}
	for i := range g.bottom {
		g.bottom[i] = 0
	}
	g.overflow = false
}

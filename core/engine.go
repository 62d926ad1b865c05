package core

import (
	"fmt"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// An Engine is the top-level orchestrator. It owns one delay line per row
// (row i delayed by i cycles) and the compute grid, and exposes the flat
// unskewed per-cycle interface callers drive. Weight vectors pass through
// without alignment: loading is assumed to happen while compute is
// paused, so the weight stream needs no wavefront shaping.
type Engine struct {
	rows, cols   int
	operandWidth int
	accumWidth   int

	opMin, opMax systolic.Operand

	skew []*DelayLine
	grid *Grid

	skewed []systolic.Operand
	cycle  int64
}

// Rows returns the number of grid rows.
func (e *Engine) Rows() int {
	return e.rows
}

// Cols returns the number of grid columns.
func (e *Engine) Cols() int {
	return e.cols
}

// OperandWidth returns the configured operand width in bits.
func (e *Engine) OperandWidth() int {
	return e.operandWidth
}

// AccumWidth returns the configured accumulator width in bits.
func (e *Engine) AccumWidth() int {
	return e.accumWidth
}

// Latency returns the fixed pipeline depth: a value entering one corner
// of the grid takes rows+cols-1 cycles, counted inclusively, to influence
// the opposite corner's output.
func (e *Engine) Latency() int {
	return e.rows + e.cols - 1
}

// Cycle returns the number of ticks applied since construction or the
// last reset.
func (e *Engine) Cycle() int64 {
	return e.cycle
}

// Overflow reports whether any partial sum saturated since the last
// reset. With a configuration that passed CheckWidths this stays false
// for every in-range workload.
func (e *Engine) Overflow() bool {
	return e.grid.Overflow()
}

// Weight returns the stationary weight held at (row, col).
func (e *Engine) Weight(row, col int) systolic.Operand {
	return e.grid.Weight(row, col)
}

// Tick advances the engine by one cycle: every row input passes through
// its alignment line, then the grid moves one step. The returned slice is
// freshly allocated and holds the bottom-edge partial sums of this cycle.
//
// A shape or range error leaves the engine byte-identical to before the
// call so the caller can correct and retry. Out-of-range operands are
// rejected rather than wrapped; silent wrapping would mask caller bugs.
func (e *Engine) Tick(
	flatIfmapIn, flatWeightIn []systolic.Operand,
	loadPhase bool,
) ([]systolic.Accum, error) {
	if len(flatIfmapIn) != e.rows {
		return nil, fmt.Errorf("ifmap vector has %d entries, want %d",
			len(flatIfmapIn), e.rows)
	}

	if len(flatWeightIn) != e.cols {
		return nil, fmt.Errorf("weight vector has %d entries, want %d",
			len(flatWeightIn), e.cols)
	}

	if err := e.checkRange("ifmap", flatIfmapIn); err != nil {
		return nil, err
	}

	if err := e.checkRange("weight", flatWeightIn); err != nil {
		return nil, err
	}

	for i, line := range e.skew {
		e.skewed[i] = line.Tick(flatIfmapIn[i])
	}

	bottom := e.grid.Tick(e.skewed, flatWeightIn, loadPhase)

	out := make([]systolic.Accum, e.cols)
	copy(out, bottom)

	e.cycle++

	if PrintToggle {
		fmt.Printf("Cycle %d:\n", e.cycle)
		PrintState(e.grid)
	}

	return out, nil
}

func (e *Engine) checkRange(stream string, vals []systolic.Operand) error {
	for i, v := range vals {
		if v < e.opMin || v > e.opMax {
			return fmt.Errorf(
				"%s[%d] = %d outside signed %d-bit range [%d, %d]",
				stream, i, v, e.operandWidth, e.opMin, e.opMax)
		}
	}
	return nil
}

// Reset synchronously clears all owned state: every delay line, every
// element, every wire, and the cycle counter.
func (e *Engine) Reset() {
	for _, line := range e.skew {
		line.Reset()
	}
	for i := range e.skewed {
		e.skewed[i] = 0
	}
	e.grid.Reset()
	e.cycle = 0

	Trace("Engine",
		"Behavior", "Reset",
		"Rows", e.rows,
		"Cols", e.cols,
	)
}

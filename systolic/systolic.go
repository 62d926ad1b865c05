// Package systolic defines the commonly used data types for the
// weight-stationary matrix engine.
package systolic

import (
	"fmt"
	"math"

	"github.com/sarchlab/akita/v4/sim"
)

// An Operand is one fixed-width signed matrix element, either an input
// value or a weight value. Values are stored sign-extended; the
// configured operand width decides the representable range.
type Operand int32

// An Accum is a wide signed integer holding a running partial sum across
// the contraction dimension.
type Accum int64

// Default and limit widths, in bits.
const (
	DefaultOperandWidth = 8
	DefaultAccumWidth   = 32

	MinWidth        = 2
	MaxOperandWidth = 32
	MaxAccumWidth   = 64
)

// OperandRange returns the smallest and largest value representable in a
// signed integer of the given bit width.
func OperandRange(width int) (min, max Operand) {
	return Operand(-(int64(1) << (width - 1))),
		Operand(int64(1)<<(width-1) - 1)
}

// AccumRange returns the smallest and largest value representable in a
// signed accumulator of the given bit width.
func AccumRange(width int) (min, max Accum) {
	if width == MaxAccumWidth {
		return math.MinInt64, math.MaxInt64
	}
	return Accum(-(int64(1) << (width - 1))),
		Accum(int64(1)<<(width-1) - 1)
}

// CheckWidths validates a grid configuration. The accumulator must hold
// rows chained full-magnitude products so that no in-range workload can
// overflow the partial-sum chain.
func CheckWidths(operandWidth, accumWidth, rows int) error {
	if operandWidth < MinWidth || operandWidth > MaxOperandWidth {
		return fmt.Errorf("operand width %d outside [%d, %d]",
			operandWidth, MinWidth, MaxOperandWidth)
	}

	if accumWidth < MinWidth || accumWidth > MaxAccumWidth {
		return fmt.Errorf("accumulator width %d outside [%d, %d]",
			accumWidth, MinWidth, MaxAccumWidth)
	}

	if rows < 1 {
		return fmt.Errorf("need at least 1 row, got %d", rows)
	}

	// Worst case magnitude is rows * 2^(2w-2), both operands at the
	// negative extreme of a w-bit range.
	maxSquare := uint64(1) << uint(2*(operandWidth-1))
	_, accMax := AccumRange(accumWidth)
	if uint64(rows) > uint64(accMax)/maxSquare {
		return fmt.Errorf(
			"%d-bit accumulator cannot hold %d chained %d-bit products",
			accumWidth, rows, operandWidth)
	}

	return nil
}

// A Device is a simulated accelerator that consumes one stimulus message
// per cycle and replies with one result message per cycle.
type Device interface {
	CtrlPort() sim.Port
	SetDriverPort(port sim.RemotePort)
	Rows() int
	Cols() int
	Latency() int
}

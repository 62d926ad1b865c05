package core

import (
	"fmt"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// EngineBuilder can create new engines.
type EngineBuilder struct {
	rows, cols   int
	operandWidth int
	accumWidth   int
}

// NewEngineBuilder returns a builder with the default 8-bit operand and
// 32-bit accumulator widths.
func NewEngineBuilder() EngineBuilder {
	return EngineBuilder{
		operandWidth: systolic.DefaultOperandWidth,
		accumWidth:   systolic.DefaultAccumWidth,
	}
}

// WithRows sets the number of grid rows.
func (b EngineBuilder) WithRows(rows int) EngineBuilder {
	b.rows = rows
	return b
}

// WithCols sets the number of grid columns.
func (b EngineBuilder) WithCols(cols int) EngineBuilder {
	b.cols = cols
	return b
}

// WithOperandWidth sets the operand width in bits.
func (b EngineBuilder) WithOperandWidth(width int) EngineBuilder {
	b.operandWidth = width
	return b
}

// WithAccumWidth sets the accumulator width in bits.
func (b EngineBuilder) WithAccumWidth(width int) EngineBuilder {
	b.accumWidth = width
	return b
}

// Build creates an engine. Configuration errors are rejected here, before
// any tick can happen.
func (b EngineBuilder) Build() (*Engine, error) {
	if b.rows < 1 {
		return nil, fmt.Errorf("need at least 1 row, got %d", b.rows)
	}

	if b.cols < 1 {
		return nil, fmt.Errorf("need at least 1 column, got %d", b.cols)
	}

	if err := systolic.CheckWidths(
		b.operandWidth, b.accumWidth, b.rows); err != nil {
		return nil, err
	}

	opMin, opMax := systolic.OperandRange(b.operandWidth)
	accMin, accMax := systolic.AccumRange(b.accumWidth)

	e := &Engine{
		rows:         b.rows,
		cols:         b.cols,
		operandWidth: b.operandWidth,
		accumWidth:   b.accumWidth,
		opMin:        opMin,
		opMax:        opMax,
		skew:         make([]*DelayLine, b.rows),
		grid:         NewGrid(b.rows, b.cols, accMin, accMax),
		skewed:       make([]systolic.Operand, b.rows),
	}

	for i := range e.skew {
		e.skew[i] = NewDelayLine(i)
	}

	return e, nil
}

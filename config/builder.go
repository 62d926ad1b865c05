package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/SamuelNadutey/systolic-array-accelerator/core"
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// DeviceBuilder can build accelerator devices.
type DeviceBuilder struct {
	engine       sim.Engine
	freq         sim.Freq
	rows, cols   int
	operandWidth int
	accumWidth   int
}

// WithEngine sets the event engine that drives the device simulation.
func (b DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the device.
func (b DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	b.freq = freq
	return b
}

// WithRows sets the number of grid rows.
func (b DeviceBuilder) WithRows(rows int) DeviceBuilder {
	b.rows = rows
	return b
}

// WithCols sets the number of grid columns.
func (b DeviceBuilder) WithCols(cols int) DeviceBuilder {
	b.cols = cols
	return b
}

// WithOperandWidth sets the operand width in bits.
func (b DeviceBuilder) WithOperandWidth(width int) DeviceBuilder {
	b.operandWidth = width
	return b
}

// WithAccumWidth sets the accumulator width in bits.
func (b DeviceBuilder) WithAccumWidth(width int) DeviceBuilder {
	b.accumWidth = width
	return b
}

// Build creates an accelerator device. An invalid configuration is
// rejected here, before any tick can happen.
func (b DeviceBuilder) Build(name string) *Accelerator {
	if b.operandWidth == 0 {
		b.operandWidth = systolic.DefaultOperandWidth
	}
	if b.accumWidth == 0 {
		b.accumWidth = systolic.DefaultAccumWidth
	}

	dataEngine, err := core.NewEngineBuilder().
		WithRows(b.rows).
		WithCols(b.cols).
		WithOperandWidth(b.operandWidth).
		WithAccumWidth(b.accumWidth).
		Build()
	if err != nil {
		panic(err)
	}

	a := &Accelerator{
		dataEngine: dataEngine,
	}
	a.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, a)

	a.ctrlPort = sim.NewPort(a, 1, 1, name+".Ctrl")
	a.AddPort("Ctrl", a.ctrlPort)

	return a
}

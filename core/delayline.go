package core

import (
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// A DelayLine staggers one input stream by a fixed number of cycles so
// that per-row inputs enter the grid as a diagonal wavefront. A
// depth-zero line is the identity used for row zero, which needs no
// alignment.
type DelayLine struct {
	slots []systolic.Operand
	head  int
}

// NewDelayLine creates a delay line of the given depth.
func NewDelayLine(depth int) *DelayLine {
	if depth < 0 {
		panic("delay line depth must be non-negative")
	}

	return &DelayLine{
		slots: make([]systolic.Operand, depth),
	}
}

// Depth returns the configured delay in cycles.
func (d *DelayLine) Depth() int {
	return len(d.slots)
}

// Tick enqueues in and returns the value that entered Depth cycles ago.
// Slots start zeroed, so the first Depth ticks after construction or
// reset return zero rather than stale history.
func (d *DelayLine) Tick(in systolic.Operand) systolic.Operand {
	if len(d.slots) == 0 {
		return in
	}

	out := d.slots[d.head]
	d.slots[d.head] = in

	d.head++
	if d.head == len(d.slots) {
		d.head = 0
	}

	return out
}

// Reset clears every slot so in-flight values do not leak across runs.
func (d *DelayLine) Reset() {
	for i := range d.slots {
		d.slots[i] = 0
	}
	d.head = 0
}

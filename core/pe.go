// Package core implements the weight-stationary dataflow engine: the
// processing elements, the input-alignment delay lines, the compute grid,
// and the engine that ties them together behind a flat per-cycle
// interface.
package core

import (
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// A PE is one processing element of the grid. It keeps one stationary
// weight and three pipeline registers. Tick returns the register state
// after this cycle's inputs are applied; that is what downstream
// neighbors observe on the following cycle, never a combinational value
// within the same cycle.
type PE struct {
	stationary systolic.Operand

	ifmapReg  systolic.Operand
	weightReg systolic.Operand
	psumReg   systolic.Accum
}

// Tick advances the element by one cycle. Both operand streams are
// forwarded unconditionally; a stalled stream would desynchronize the
// wavefront. During the load phase weightIn is latched as the new
// stationary weight and the partial-sum path passes through untouched.
// Otherwise psumOut accumulates ifmapIn times the stationary weight
// latched during the most recent load phase.
func (p *PE) Tick(
	ifmapIn, weightIn systolic.Operand,
	psumIn systolic.Accum,
	loadPhase bool,
) (ifmapOut, weightOut systolic.Operand, psumOut systolic.Accum) {
	p.ifmapReg = ifmapIn
	p.weightReg = weightIn

	if loadPhase {
		p.stationary = weightIn
		p.psumReg = psumIn
	} else {
		p.psumReg = systolic.Accum(ifmapIn)*systolic.Accum(p.stationary) +
			psumIn
	}

	return p.ifmapReg, p.weightReg, p.psumReg
}

// Weight returns the currently latched stationary weight.
func (p *PE) Weight() systolic.Operand {
	return p.stationary
}

// Reset clears the stationary weight and all pipeline registers.
func (p *PE) Reset() {
	*p = PE{}
}

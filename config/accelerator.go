// Package config builds the simulated accelerator component that exposes
// the systolic engine to an akita simulation.
package config

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/SamuelNadutey/systolic-array-accelerator/core"
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// An Accelerator wraps a core.Engine as a ticking component. Every cycle
// it consumes at most one stimulus message from its control port,
// advances the engine, and replies with the bottom-edge partial sums
// tagged with the stimulus cycle.
type Accelerator struct {
	*sim.TickingComponent

	ctrlPort sim.Port
	driver   sim.RemotePort

	dataEngine *core.Engine
	pending    *systolic.ResultMsg
}

// CtrlPort returns the port stimuli arrive on.
func (a *Accelerator) CtrlPort() sim.Port {
	return a.ctrlPort
}

// SetDriverPort sets the port results are sent back to.
func (a *Accelerator) SetDriverPort(port sim.RemotePort) {
	a.driver = port
}

// Rows returns the number of grid rows.
func (a *Accelerator) Rows() int {
	return a.dataEngine.Rows()
}

// Cols returns the number of grid columns.
func (a *Accelerator) Cols() int {
	return a.dataEngine.Cols()
}

// Latency returns the fixed pipeline depth of the grid.
func (a *Accelerator) Latency() int {
	return a.dataEngine.Latency()
}

// Tick runs the accelerator for one cycle.
func (a *Accelerator) Tick() (madeProgress bool) {
	madeProgress = a.sendResult() || madeProgress
	madeProgress = a.applyStimulus() || madeProgress

	return madeProgress
}

func (a *Accelerator) sendResult() bool {
	if a.pending == nil {
		return false
	}

	err := a.ctrlPort.Send(a.pending)
	if err != nil {
		return false
	}

	a.pending = nil

	return true
}

func (a *Accelerator) applyStimulus() bool {
	// Hold the stimulus until the previous reply has drained.
	if a.pending != nil {
		return false
	}

	item := a.ctrlPort.PeekIncoming()
	if item == nil {
		return false
	}

	msg := item.(*systolic.StimulusMsg)

	out, err := a.dataEngine.Tick(msg.Ifmap, msg.Weight, msg.LoadPhase)
	if err != nil {
		// The driver owns the shapes; a mis-sized message is a
		// protocol bug, not a recoverable condition.
		panic(err)
	}

	core.Trace("Accelerator",
		"Behavior", "Tick",
		"Cycle", msg.Cycle,
		"LoadPhase", msg.LoadPhase,
		"Time", float64(a.Engine.CurrentTime()*1e9),
	)

	a.pending = systolic.ResultMsgBuilder{}.
		WithSrc(a.ctrlPort.AsRemote()).
		WithDst(a.driver).
		WithCycle(msg.Cycle).
		WithPsums(out).
		Build()

	a.ctrlPort.RetrieveIncoming()

	return true
}

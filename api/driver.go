// Package api defines the driver API for the systolic accelerator.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/SamuelNadutey/systolic-array-accelerator/core"
	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

// Driver provides the interface to control a systolic accelerator. It
// runs the two-phase protocol on the caller's behalf: weights are loaded
// one row per cycle, the left operand streams one row per cycle, and the
// pipeline drains for the grid's latency before the run completes.
type Driver interface {
	// RegisterDevice registers a device to the driver. The driver will
	// establish a connection to the device.
	RegisterDevice(device systolic.Device)

	// LoadWeights schedules the weight matrix to be loaded. The matrix
	// must be Rows x Cols.
	LoadWeights(weights [][]systolic.Operand)

	// StreamMatrix schedules the left operand to be streamed after
	// loading finishes. Each row must have Rows entries, one per
	// contraction index.
	StreamMatrix(ifmap [][]systolic.Operand)

	// Collect registers the destination matrix for the product. It must
	// have one row per streamed row and Cols columns.
	Collect(dst [][]systolic.Accum)

	// Run drives the protocol to completion.
	Run()
}

type protocolPhase int

const (
	phaseIdle protocolPhase = iota
	phaseLoading
	phaseStreaming
	phaseDraining
	phaseDone
)

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type driverImpl struct {
	*sim.TickingComponent

	device      systolic.Device
	portFactory portFactory
	port        sim.Port
	remote      sim.RemotePort

	weights [][]systolic.Operand
	ifmap   [][]systolic.Operand
	dst     [][]systolic.Accum

	phase     protocolPhase
	remaining int
	cycle     int64
	collected int
	expected  int
}

// Tick runs the driver for one cycle.
func (d *driverImpl) Tick() (madeProgress bool) {
	madeProgress = d.doCollect() || madeProgress
	madeProgress = d.doFeed() || madeProgress

	return madeProgress
}

func (d *driverImpl) doCollect() bool {
	madeProgress := false

	for {
		item := d.port.PeekIncoming()
		if item == nil {
			break
		}

		d.recordResult(item.(*systolic.ResultMsg))
		d.port.RetrieveIncoming()
		madeProgress = true
	}

	return madeProgress
}

// recordResult scatters one cycle of bottom-edge sums into the collect
// matrix. Output row i, column c completes at protocol cycle
// rows + i + c + (rows-1): the load phase takes rows cycles and the grid
// adds its pipeline depth.
func (d *driverImpl) recordResult(msg *systolic.ResultMsg) {
	rows := d.device.Rows()

	for c, v := range msg.Psums {
		i := msg.Cycle - int64(rows) - int64(c) - int64(rows-1)
		if i < 0 || i >= int64(len(d.dst)) {
			continue
		}

		d.dst[i][c] = v
		d.collected++
	}
}

func (d *driverImpl) doFeed() bool {
	if d.phase == phaseIdle || d.phase == phaseDone {
		return false
	}

	if !d.port.CanSend() {
		return false
	}

	msg := d.buildStimulus()
	err := d.port.Send(msg)
	if err != nil {
		panic("accelerator cannot absorb one stimulus per cycle")
	}

	d.cycle++
	d.advancePhase()

	return true
}

func (d *driverImpl) buildStimulus() *systolic.StimulusMsg {
	rows := d.device.Rows()
	cols := d.device.Cols()

	ifmap := make([]systolic.Operand, rows)
	weight := make([]systolic.Operand, cols)
	loadPhase := false

	switch d.phase {
	case phaseLoading:
		// Rows go in last to first: the vector passing row r on the
		// final load cycle is the one that stays resident there.
		copy(weight, d.weights[int64(rows)-1-d.cycle])
		loadPhase = true
	case phaseStreaming:
		copy(ifmap, d.ifmap[d.cycle-int64(rows)])
	case phaseDraining:
		// zeros let the pipeline drain
	}

	return systolic.StimulusMsgBuilder{}.
		WithSrc(d.port.AsRemote()).
		WithDst(d.remote).
		WithCycle(d.cycle).
		WithIfmap(ifmap).
		WithWeight(weight).
		WithLoadPhase(loadPhase).
		Build()
}

func (d *driverImpl) advancePhase() {
	d.remaining--
	if d.remaining > 0 {
		return
	}

	switch d.phase {
	case phaseLoading:
		d.phase = phaseStreaming
		d.remaining = len(d.ifmap)
	case phaseStreaming:
		d.phase = phaseDraining
		d.remaining = d.device.Latency()
	case phaseDraining:
		d.phase = phaseDone
	}

	core.Trace("Driver",
		"Behavior", "PhaseChange",
		"Phase", int(d.phase),
		"Cycle", d.cycle,
	)
}

// RegisterDevice registers a device to the driver. The driver will
// establish a connection to the device.
func (d *driverImpl) RegisterDevice(device systolic.Device) {
	d.device = device

	d.port = d.portFactory.make(d, d.Name()+".Ctrl")
	d.AddPort("Ctrl", d.port)

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(d.port.Name() + "." + device.CtrlPort().Name())
	conn.PlugIn(d.port)
	conn.PlugIn(device.CtrlPort())

	d.remote = device.CtrlPort().AsRemote()
	device.SetDriverPort(d.port.AsRemote())
}

// LoadWeights schedules the weight matrix to be loaded.
func (d *driverImpl) LoadWeights(weights [][]systolic.Operand) {
	rows, cols := d.mustHaveDevice()

	if len(weights) != rows {
		panic(fmt.Sprintf("weight matrix has %d rows, grid has %d",
			len(weights), rows))
	}
	for r, row := range weights {
		if len(row) != cols {
			panic(fmt.Sprintf("weight row %d has %d entries, want %d",
				r, len(row), cols))
		}
	}

	d.weights = weights
}

// StreamMatrix schedules the left operand to be streamed.
func (d *driverImpl) StreamMatrix(ifmap [][]systolic.Operand) {
	rows, _ := d.mustHaveDevice()

	if len(ifmap) == 0 {
		panic("need at least one row to stream")
	}
	for i, row := range ifmap {
		if len(row) != rows {
			panic(fmt.Sprintf("ifmap row %d has %d entries, want %d",
				i, len(row), rows))
		}
	}

	d.ifmap = ifmap
}

// Collect registers the destination matrix for the product.
func (d *driverImpl) Collect(dst [][]systolic.Accum) {
	_, cols := d.mustHaveDevice()

	for i, row := range dst {
		if len(row) != cols {
			panic(fmt.Sprintf("destination row %d has %d entries, want %d",
				i, len(row), cols))
		}
	}

	d.dst = dst
}

func (d *driverImpl) mustHaveDevice() (rows, cols int) {
	if d.device == nil {
		panic("no device registered")
	}
	return d.device.Rows(), d.device.Cols()
}

// Run drives the protocol to completion.
func (d *driverImpl) Run() {
	if d.weights == nil || d.ifmap == nil || d.dst == nil {
		panic("driver needs weights, an operand stream, and a destination")
	}
	if len(d.dst) != len(d.ifmap) {
		panic(fmt.Sprintf("destination has %d rows, streaming %d",
			len(d.dst), len(d.ifmap)))
	}

	d.phase = phaseLoading
	d.remaining = d.device.Rows()
	d.cycle = 0
	d.collected = 0
	d.expected = len(d.ifmap) * d.device.Cols()

	d.TickNow()
	d.Engine.Run()

	if d.collected != d.expected {
		panic(fmt.Sprintf("protocol finished with %d of %d results",
			d.collected, d.expected))
	}
}

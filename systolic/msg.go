package systolic

import "github.com/sarchlab/akita/v4/sim"

// StimulusMsg carries one cycle of boundary inputs into the accelerator:
// the flat per-row input vector, the per-column weight vector, and the
// broadcast load flag. Cycle is the protocol cycle number assigned by the
// driver; it rides along so that result collection does not depend on
// transport latency.
type StimulusMsg struct {
	sim.MsgMeta

	Cycle     int64
	Ifmap     []Operand
	Weight    []Operand
	LoadPhase bool
}

// Meta returns the meta data of the msg.
func (m *StimulusMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *StimulusMsg) Clone() sim.Msg {
	c := *m
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// StimulusMsgBuilder is a factory for StimulusMsg.
type StimulusMsgBuilder struct {
	src, dst  sim.RemotePort
	cycle     int64
	ifmap     []Operand
	weight    []Operand
	loadPhase bool
}

// WithSrc sets the source port of the msg.
func (b StimulusMsgBuilder) WithSrc(src sim.RemotePort) StimulusMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b StimulusMsgBuilder) WithDst(dst sim.RemotePort) StimulusMsgBuilder {
	b.dst = dst
	return b
}

// WithCycle sets the protocol cycle the stimulus belongs to.
func (b StimulusMsgBuilder) WithCycle(cycle int64) StimulusMsgBuilder {
	b.cycle = cycle
	return b
}

// WithIfmap sets the flat per-row input vector.
func (b StimulusMsgBuilder) WithIfmap(ifmap []Operand) StimulusMsgBuilder {
	b.ifmap = ifmap
	return b
}

// WithWeight sets the per-column weight vector.
func (b StimulusMsgBuilder) WithWeight(weight []Operand) StimulusMsgBuilder {
	b.weight = weight
	return b
}

// WithLoadPhase sets the broadcast load flag.
func (b StimulusMsgBuilder) WithLoadPhase(loadPhase bool) StimulusMsgBuilder {
	b.loadPhase = loadPhase
	return b
}

// Build creates a StimulusMsg.
func (b StimulusMsgBuilder) Build() *StimulusMsg {
	return &StimulusMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Cycle:     b.cycle,
		Ifmap:     b.ifmap,
		Weight:    b.weight,
		LoadPhase: b.loadPhase,
	}
}

// ResultMsg carries the partial sums that left the bottom edge of the
// grid on one cycle, tagged with the cycle of the stimulus that produced
// them.
type ResultMsg struct {
	sim.MsgMeta

	Cycle int64
	Psums []Accum
}

// Meta returns the meta data of the msg.
func (m *ResultMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone creates a copy of the msg with a new ID.
func (m *ResultMsg) Clone() sim.Msg {
	c := *m
	c.ID = sim.GetIDGenerator().Generate()
	return &c
}

// ResultMsgBuilder is a factory for ResultMsg.
type ResultMsgBuilder struct {
	src, dst sim.RemotePort
	cycle    int64
	psums    []Accum
}

// WithSrc sets the source port of the msg.
func (b ResultMsgBuilder) WithSrc(src sim.RemotePort) ResultMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ResultMsgBuilder) WithDst(dst sim.RemotePort) ResultMsgBuilder {
	b.dst = dst
	return b
}

// WithCycle sets the protocol cycle the results belong to.
func (b ResultMsgBuilder) WithCycle(cycle int64) ResultMsgBuilder {
	b.cycle = cycle
	return b
}

// WithPsums sets the bottom-edge partial sums.
func (b ResultMsgBuilder) WithPsums(psums []Accum) ResultMsgBuilder {
	b.psums = psums
	return b
}

// Build creates a ResultMsg.
func (b ResultMsgBuilder) Build() *ResultMsg {
	return &ResultMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Cycle: b.cycle,
		Psums: b.psums,
	}
}

package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

var _ = Describe("DelayLine", func() {
	It("should be the identity at depth zero", func() {
		line := NewDelayLine(0)

		Expect(line.Tick(7)).To(Equal(systolic.Operand(7)))
		Expect(line.Tick(-3)).To(Equal(systolic.Operand(-3)))
	})

	It("should return zero until the line is primed", func() {
		line := NewDelayLine(3)

		Expect(line.Tick(1)).To(Equal(systolic.Operand(0)))
		Expect(line.Tick(2)).To(Equal(systolic.Operand(0)))
		Expect(line.Tick(3)).To(Equal(systolic.Operand(0)))
	})

	It("should return the value supplied depth ticks earlier, in order", func() {
		line := NewDelayLine(2)

		line.Tick(10)
		line.Tick(20)
		Expect(line.Tick(30)).To(Equal(systolic.Operand(10)))
		Expect(line.Tick(40)).To(Equal(systolic.Operand(20)))
		Expect(line.Tick(50)).To(Equal(systolic.Operand(30)))
	})

	It("should flush in-flight values on reset", func() {
		line := NewDelayLine(2)

		line.Tick(10)
		line.Tick(20)
		line.Reset()

		Expect(line.Tick(30)).To(Equal(systolic.Operand(0)))
		Expect(line.Tick(40)).To(Equal(systolic.Operand(0)))
		Expect(line.Tick(50)).To(Equal(systolic.Operand(30)))
	})

	It("should reject a negative depth", func() {
		Expect(func() { NewDelayLine(-1) }).To(Panic())
	})
})

package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

var _ = Describe("PE", func() {
	var pe PE

	BeforeEach(func() {
		pe = PE{}
	})

	It("should forward both operand streams every cycle", func() {
		ifmapOut, weightOut, _ := pe.Tick(3, 7, 0, true)
		Expect(ifmapOut).To(Equal(systolic.Operand(3)))
		Expect(weightOut).To(Equal(systolic.Operand(7)))

		ifmapOut, weightOut, _ = pe.Tick(-4, 9, 0, false)
		Expect(ifmapOut).To(Equal(systolic.Operand(-4)))
		Expect(weightOut).To(Equal(systolic.Operand(9)))
	})

	It("should latch the stationary weight during the load phase", func() {
		pe.Tick(0, 5, 0, true)
		Expect(pe.Weight()).To(Equal(systolic.Operand(5)))

		pe.Tick(0, -6, 0, true)
		Expect(pe.Weight()).To(Equal(systolic.Operand(-6)))
	})

	It("should pass the partial sum through as a bubble while loading", func() {
		_, _, psumOut := pe.Tick(3, 5, 42, true)
		Expect(psumOut).To(Equal(systolic.Accum(42)))
	})

	It("should accumulate against the previously latched weight", func() {
		pe.Tick(0, 3, 0, true)

		// weightIn changes to 9 here, but the MAC must still use 3.
		_, _, psumOut := pe.Tick(4, 9, 10, false)
		Expect(psumOut).To(Equal(systolic.Accum(10 + 4*3)))
		Expect(pe.Weight()).To(Equal(systolic.Operand(3)))
	})

	It("should handle negative operands", func() {
		pe.Tick(0, -5, 0, true)

		_, _, psumOut := pe.Tick(-7, 0, -3, false)
		Expect(psumOut).To(Equal(systolic.Accum(-3 + (-7)*(-5))))
	})

	It("should clear everything on reset", func() {
		pe.Tick(1, 2, 3, true)
		pe.Reset()

		Expect(pe.Weight()).To(Equal(systolic.Operand(0)))
		_, _, psumOut := pe.Tick(5, 0, 0, false)
		Expect(psumOut).To(Equal(systolic.Accum(0)))
	})
})

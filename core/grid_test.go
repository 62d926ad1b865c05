package core

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SamuelNadutey/systolic-array-accelerator/systolic"
)

func loadAllOnes(g *Grid) {
	ones := make([]systolic.Operand, g.Cols())
	for i := range ones {
		ones[i] = 1
	}
	zeros := make([]systolic.Operand, g.Rows())
	for t := 0; t < g.Rows(); t++ {
		g.Tick(zeros, ones, true)
	}
}

var _ = Describe("Grid", func() {
	It("should multiply-accumulate on a 1x1 grid", func() {
		g := NewGrid(1, 1, -1<<31, 1<<31-1)

		g.Tick([]systolic.Operand{0}, []systolic.Operand{3}, true)
		Expect(g.Weight(0, 0)).To(Equal(systolic.Operand(3)))

		out := g.Tick([]systolic.Operand{5}, []systolic.Operand{0}, false)
		Expect(out[0]).To(Equal(systolic.Accum(15)))
	})

	It("should latch the last in-flight weight per row", func() {
		g := NewGrid(2, 1, -1<<31, 1<<31-1)
		zeros := []systolic.Operand{0, 0}

		// Fed last to first: the vector passing row r on the final
		// load tick is the one that stays resident there.
		g.Tick(zeros, []systolic.Operand{20}, true)
		g.Tick(zeros, []systolic.Operand{10}, true)

		Expect(g.Weight(0, 0)).To(Equal(systolic.Operand(10)))
		Expect(g.Weight(1, 0)).To(Equal(systolic.Operand(20)))
	})

	It("should update all elements from the previous tick's wires", func() {
		g := NewGrid(2, 2, -1<<31, 1<<31-1)
		loadAllOnes(g)

		// Pre-skewed wavefront for the row vector [5 7]: with all
		// weights one, each output column must see 5+7.
		out := g.Tick([]systolic.Operand{5, 0}, []systolic.Operand{0, 0}, false)
		Expect(out).To(Equal([]systolic.Accum{0, 0}))

		out = g.Tick([]systolic.Operand{0, 7}, []systolic.Operand{0, 0}, false)
		Expect(out[0]).To(Equal(systolic.Accum(12)))

		out = g.Tick([]systolic.Operand{0, 0}, []systolic.Operand{0, 0}, false)
		Expect(out[1]).To(Equal(systolic.Accum(12)))
	})

	It("should saturate and latch the overflow flag", func() {
		g := NewGrid(1, 1, -100, 100)

		g.Tick([]systolic.Operand{0}, []systolic.Operand{10}, true)
		out := g.Tick([]systolic.Operand{20}, []systolic.Operand{0}, false)

		Expect(out[0]).To(Equal(systolic.Accum(100)))
		Expect(g.Overflow()).To(BeTrue())

		g.Tick([]systolic.Operand{0}, []systolic.Operand{0}, false)
		Expect(g.Overflow()).To(BeTrue())
	})

	It("should panic on mis-sized boundary vectors", func() {
		g := NewGrid(2, 2, -1<<31, 1<<31-1)

		Expect(func() {
			g.Tick([]systolic.Operand{0}, []systolic.Operand{0, 0}, false)
		}).To(Panic())
	})

	It("should clear all history on reset", func() {
		g := NewGrid(2, 2, -1<<31, 1<<31-1)
		loadAllOnes(g)
		g.Tick([]systolic.Operand{5, 7}, []systolic.Operand{0, 0}, false)

		g.Reset()

		Expect(g.Weight(0, 0)).To(Equal(systolic.Operand(0)))
		Expect(g.Overflow()).To(BeFalse())

		zeros := []systolic.Operand{0, 0}
		for t := 0; t < 3; t++ {
			out := g.Tick(zeros, zeros, false)
			Expect(out).To(Equal([]systolic.Accum{0, 0}))
		}
	})
})

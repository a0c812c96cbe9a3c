package qmci

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ThreadPlan", func() {
	It("interleaves walkers and accumulators", func() {
		p := MakeThreadPlan(3, 2, false)

		Expect(p.Size()).To(Equal(5))
		Expect(p.Role(0)).To(Equal(RoleWalker))
		Expect(p.Role(1)).To(Equal(RoleAccumulator))
		Expect(p.Role(2)).To(Equal(RoleWalker))
		Expect(p.Role(3)).To(Equal(RoleAccumulator))
		Expect(p.Role(4)).To(Equal(RoleWalker))
	})

	It("appends the surplus role after interleaving", func() {
		p := MakeThreadPlan(1, 3, false)

		Expect(p.Size()).To(Equal(4))
		Expect(p.Role(0)).To(Equal(RoleWalker))
		Expect(p.Role(1)).To(Equal(RoleAccumulator))
		Expect(p.Role(2)).To(Equal(RoleAccumulator))
		Expect(p.Role(3)).To(Equal(RoleAccumulator))
	})

	It("maps slots back to walker and accumulator indices", func() {
		p := MakeThreadPlan(3, 2, false)

		Expect(p.WalkerIndex(0)).To(Equal(0))
		Expect(p.WalkerIndex(2)).To(Equal(1))
		Expect(p.WalkerIndex(4)).To(Equal(2))
		Expect(p.AccumIndex(1)).To(Equal(0))
		Expect(p.AccumIndex(3)).To(Equal(1))
	})

	It("fuses slots when walkers and accumulators pair up", func() {
		p := MakeThreadPlan(2, 2, true)

		Expect(p.Size()).To(Equal(2))
		for slot := 0; slot < 2; slot++ {
			Expect(p.Role(slot)).To(Equal(RoleWalkerAndAccumulator))
			Expect(p.WalkerIndex(slot)).To(Equal(slot))
			Expect(p.AccumIndex(slot)).To(Equal(slot))
		}
	})

	It("appends surplus accumulators to a fused plan", func() {
		p := MakeThreadPlan(1, 3, true)

		Expect(p.Size()).To(Equal(3))
		Expect(p.Role(0)).To(Equal(RoleWalkerAndAccumulator))
		Expect(p.Role(1)).To(Equal(RoleAccumulator))
		Expect(p.Role(2)).To(Equal(RoleAccumulator))
		Expect(p.AccumIndex(1)).To(Equal(1))
		Expect(p.AccumIndex(2)).To(Equal(2))
	})

	It("gives every slot exactly one role", func() {
		p := MakeThreadPlan(4, 7, false)

		walkers, accumulators := 0, 0
		for slot := 0; slot < p.Size(); slot++ {
			switch p.Role(slot) {
			case RoleWalker:
				walkers++
			case RoleAccumulator:
				accumulators++
			case RoleWalkerAndAccumulator:
				walkers++
				accumulators++
			}
		}

		Expect(walkers).To(Equal(4))
		Expect(accumulators).To(Equal(7))
	})

	It("is deterministic", func() {
		Expect(MakeThreadPlan(5, 3, false)).
			To(Equal(MakeThreadPlan(5, 3, false)))
	})

	It("panics without walkers", func() {
		Expect(func() {
			MakeThreadPlan(0, 1, false)
		}).To(PanicWith(ContainSubstring("at least 1")))
	})

	It("panics without accumulators", func() {
		Expect(func() {
			MakeThreadPlan(1, 0, false)
		}).To(PanicWith(ContainSubstring("at least 1")))
	})

	It("panics when a fused plan has more walkers than accumulators", func() {
		Expect(func() {
			MakeThreadPlan(3, 2, true)
		}).To(PanicWith(ContainSubstring("fused plan")))
	})

	It("panics when asking a pure accumulator slot for its walker", func() {
		p := MakeThreadPlan(1, 1, false)

		Expect(func() {
			p.WalkerIndex(1)
		}).To(PanicWith(ContainSubstring("drives no walker")))
	})

	It("panics when asking a pure walker slot for its accumulator", func() {
		p := MakeThreadPlan(1, 1, false)

		Expect(func() {
			p.AccumIndex(0)
		}).To(PanicWith(ContainSubstring("drives no accumulator")))
	})

	It("prints the slot table", func() {
		p := MakeThreadPlan(1, 2, true)

		Expect(p.String()).To(ContainSubstring("0: walker and accumulator"))
		Expect(p.String()).To(ContainSubstring("1: accumulator"))
	})
})

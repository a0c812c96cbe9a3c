package qmci

import (
	"fmt"
	"strings"
)

// Role tells what work one thread slot performs.
type Role int

const (
	// RoleWalker marks a slot that only advances a Markov chain.
	RoleWalker Role = iota

	// RoleAccumulator marks a slot that only aggregates measurements.
	RoleAccumulator

	// RoleWalkerAndAccumulator marks a fused slot that does both,
	// bypassing the hand-off queue.
	RoleWalkerAndAccumulator
)

func (r Role) String() string {
	switch r {
	case RoleWalker:
		return "walker"
	case RoleAccumulator:
		return "accumulator"
	case RoleWalkerAndAccumulator:
		return "walker and accumulator"
	}

	return "undefined"
}

// A ThreadPlan assigns a role to every thread slot of an integration run
// and maps each slot back to the index of the walker or accumulator it
// drives. Plans are immutable after construction.
type ThreadPlan struct {
	roles        []Role
	walkerIndex  []int
	accumIndex   []int
	walkers      int
	accumulators int
}

// MakeThreadPlan lays out the thread slots for the requested walker and
// accumulator counts. Without fusion the two roles alternate while both
// have remaining quota, then the surplus role fills the rest, for a plan
// of walkers+accumulators slots. With fusion the first min(walkers,
// accumulators) slots carry both roles and surplus accumulators follow,
// for a plan of max(walkers, accumulators) slots.
//
// MakeThreadPlan panics when either count is below one, and when a fused
// plan asks for more walkers than accumulators: the surplus walkers would
// block forever on a queue no pure accumulator ever enters.
func MakeThreadPlan(walkers, accumulators int, fused bool) ThreadPlan {
	if walkers < 1 || accumulators < 1 {
		panic(fmt.Sprintf(
			"qmci: both the number of walkers and the number of accumulators "+
				"must be at least 1, got %d and %d", walkers, accumulators))
	}

	if fused && walkers > accumulators {
		panic(fmt.Sprintf(
			"qmci: a fused plan must not have more walkers than accumulators, "+
				"got %d and %d", walkers, accumulators))
	}

	p := ThreadPlan{walkers: walkers, accumulators: accumulators}

	if fused {
		shared := min(walkers, accumulators)
		for i := 0; i < shared; i++ {
			p.appendSlot(RoleWalkerAndAccumulator, i, i)
		}
		for i := shared; i < accumulators; i++ {
			p.appendSlot(RoleAccumulator, -1, i)
		}

		return p
	}

	w, a := 0, 0
	for w < walkers || a < accumulators {
		if w < walkers {
			p.appendSlot(RoleWalker, w, -1)
			w++
		}
		if a < accumulators {
			p.appendSlot(RoleAccumulator, -1, a)
			a++
		}
	}

	return p
}

func (p *ThreadPlan) appendSlot(r Role, walkerIndex, accumIndex int) {
	p.roles = append(p.roles, r)
	p.walkerIndex = append(p.walkerIndex, walkerIndex)
	p.accumIndex = append(p.accumIndex, accumIndex)
}

// Size returns the number of thread slots in the plan.
func (p ThreadPlan) Size() int {
	return len(p.roles)
}

// Walkers returns the number of walkers the plan drives.
func (p ThreadPlan) Walkers() int {
	return p.walkers
}

// Accumulators returns the number of accumulators the plan drives.
func (p ThreadPlan) Accumulators() int {
	return p.accumulators
}

// Role returns the role of the given slot.
func (p ThreadPlan) Role(slot int) Role {
	return p.roles[slot]
}

// WalkerIndex returns which walker the slot drives. The index selects the
// slot's random stream and checkpoint entry. It panics for pure
// accumulator slots.
func (p ThreadPlan) WalkerIndex(slot int) int {
	if p.walkerIndex[slot] < 0 {
		panic(fmt.Sprintf("qmci: slot %d drives no walker", slot))
	}

	return p.walkerIndex[slot]
}

// AccumIndex returns which accumulator the slot drives. It panics for
// pure walker slots.
func (p ThreadPlan) AccumIndex(slot int) int {
	if p.accumIndex[slot] < 0 {
		panic(fmt.Sprintf("qmci: slot %d drives no accumulator", slot))
	}

	return p.accumIndex[slot]
}

// String renders the slot table the way the run banner prints it.
func (p ThreadPlan) String() string {
	var sb strings.Builder

	sb.WriteString("thread task assignment:\n")
	for i, r := range p.roles {
		fmt.Fprintf(&sb, "  %2d: %s\n", i, r)
	}

	return sb.String()
}

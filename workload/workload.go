// Package workload divides a global measurement target across processes and
// walker threads.
package workload

import "fmt"

// Share returns the amount of work assigned to one worker when total units
// are split across workers as evenly as possible. The remainder goes to the
// lowest-indexed workers, so the per-worker counts always sum to total.
func Share(total, workers, index int) int {
	if workers < 1 {
		panic(fmt.Sprintf("workload: workers must be at least 1, got %d", workers))
	}

	if index < 0 || index >= workers {
		panic(fmt.Sprintf(
			"workload: index %d out of range for %d workers", index, workers))
	}

	if total < 0 {
		panic(fmt.Sprintf("workload: total must not be negative, got %d", total))
	}

	share := total / workers
	if index < total%workers {
		share++
	}

	return share
}

// A Concurrency describes the position of this process in the process grid of
// a distributed run. Single-process runs use rank 0 of size 1.
type Concurrency struct {
	rank int
	size int
}

// NewConcurrency creates a Concurrency context.
func NewConcurrency(rank, size int) Concurrency {
	if size < 1 {
		panic(fmt.Sprintf("workload: process grid size must be at least 1, got %d", size))
	}

	if rank < 0 || rank >= size {
		panic(fmt.Sprintf(
			"workload: rank %d out of range for grid size %d", rank, size))
	}

	return Concurrency{rank: rank, size: size}
}

// Rank returns the rank of this process.
func (c Concurrency) Rank() int {
	return c.rank
}

// Size returns the number of processes in the grid.
func (c Concurrency) Size() int {
	return c.size
}

// IsFirst tells if this process is the lowest-ranked one. Only the first
// process prints run-wide progress.
func (c Concurrency) IsFirst() bool {
	return c.rank == 0
}

// ProcessShare returns the portion of total that this process is responsible
// for, using the same remainder-to-lowest-ranks rule as Share.
func (c Concurrency) ProcessShare(total int) int {
	return Share(total, c.size, c.rank)
}

// PerWalker returns the measurement count one walker must produce and
// whether that walker is the primary progress reporter. Under the fixed
// policy each walker receives its static Share and only walker 0
// reports; under the shared policy the returned count is the claimable
// total, which the walkers divide dynamically through a Counter, and
// every walker reports its own claims.
func PerWalker(total, walkers, index int, fixed bool) (count int, primary bool) {
	if fixed {
		return Share(total, walkers, index), index == 0
	}

	return total, true
}

// Package random provides reproducible random streams for walker threads.
//
// Each walker owns one Stream for the duration of a run. Streams created
// from the same (rank, size, seed) triple are bit-for-bit reproducible, and
// streams with different global IDs are decorrelated by a SplitMix64 mix of
// the seed and the ID.
package random

import (
	"fmt"
	"math/rand"
)

// A Stream is a reproducible pseudo-random generator owned by one walker.
// It is not safe for concurrent use; per-walker ownership removes the need
// for locking.
type Stream struct {
	rng      *rand.Rand
	globalID int
}

// NewStream creates the stream with the given global ID. The global ID of
// the i-th stream of a process is i*size+rank, so no two streams of a
// distributed run share an ID.
func NewStream(globalID int, seed int64) *Stream {
	return &Stream{
		rng:      rand.New(rand.NewSource(deriveSeed(seed, uint64(globalID)))),
		globalID: globalID,
	}
}

// NewPool creates one stream per walker slot, seeded deterministically from
// the process rank, the process-grid size, and the global seed.
func NewPool(rank, size int, seed int64, n int) []*Stream {
	if size < 1 {
		panic(fmt.Sprintf("random: process grid size must be at least 1, got %d", size))
	}

	if rank < 0 || rank >= size {
		panic(fmt.Sprintf("random: rank %d out of range for grid size %d", rank, size))
	}

	streams := make([]*Stream, n)
	for i := 0; i < n; i++ {
		streams[i] = NewStream(i*size+rank, seed)
	}

	return streams
}

// GlobalID returns the run-wide ID of this stream.
func (s *Stream) GlobalID() int {
	return s.globalID
}

// Uniform returns a float64 uniformly distributed in [0, 1).
func (s *Stream) Uniform() float64 {
	return s.rng.Float64()
}

// Intn returns an int uniformly distributed in [0, n).
func (s *Stream) Intn(n int) int {
	return s.rng.Intn(n)
}

// Int63 returns a non-negative 63-bit integer.
func (s *Stream) Int63() int64 {
	return s.rng.Int63()
}

// deriveSeed mixes a seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so nearby IDs produce well-separated
// generator states.
func deriveSeed(seed int64, stream uint64) int64 {
	x := uint64(seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

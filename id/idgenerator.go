// Package id generates unique identifiers for runs and trace tasks.
package id

import (
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

var generatorMutex sync.Mutex
var generatorInstantiated bool
var generator Generator

// Generator can generate IDs.
type Generator interface {
	// Generate an ID.
	Generate() string
}

// UseSequentialGenerator configures the generator to produce sequential IDs.
// Sequential IDs keep repeated runs comparable record by record.
func UseSequentialGenerator() {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	generator = &sequentialGenerator{}
	generatorInstantiated = true
}

// UseParallelGenerator configures the generator to produce xid-based IDs.
// The IDs generated are not deterministic anymore.
func UseParallelGenerator() {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	if generatorInstantiated {
		log.Panic("cannot change id generator type after using it")
	}

	generator = parallelGenerator{}
	generatorInstantiated = true
}

// GetGenerator returns the generator used in the current process.
func GetGenerator() Generator {
	if generatorInstantiated {
		return generator
	}

	generatorMutex.Lock()
	if generatorInstantiated {
		generatorMutex.Unlock()
		return generator
	}

	generator = &sequentialGenerator{}
	generatorInstantiated = true
	generatorMutex.Unlock()

	return generator
}

// Generate returns a fresh ID from the process-wide generator.
func Generate() string {
	return GetGenerator().Generate()
}

type sequentialGenerator struct {
	nextID uint64
}

func (g *sequentialGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	id := strconv.FormatUint(idNumber, 10)

	return id
}

type parallelGenerator struct {
}

func (g parallelGenerator) Generate() string {
	return xid.New().String()
}

package tracing

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// TotalTimeTracer accumulates the wall time spent in each kind of
// traced task. It backs the end-of-run timing report, showing how long
// walkers spent updating versus waiting for accumulators.
type TotalTimeTracer struct {
	mu         sync.Mutex
	timeTeller TimeTeller

	inflight map[string]Task
	totals   map[string]float64
	counts   map[string]int
}

// NewTotalTimeTracer creates a TotalTimeTracer.
func NewTotalTimeTracer(timeTeller TimeTeller) *TotalTimeTracer {
	return &TotalTimeTracer{
		timeTeller: timeTeller,
		inflight:   make(map[string]Task),
		totals:     make(map[string]float64),
		counts:     make(map[string]int),
	}
}

// StartTask records the start time of the task.
func (t *TotalTimeTracer) StartTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	task.StartTime = t.timeTeller.CurrentTime()
	t.inflight[task.ID] = task
}

// StepTask does nothing.
func (t *TotalTimeTracer) StepTask(_ Task) {
	// Do nothing.
}

// EndTask adds the task duration to the total of its kind.
func (t *TotalTimeTracer) EndTask(task Task) {
	t.mu.Lock()
	defer t.mu.Unlock()

	original, ok := t.inflight[task.ID]
	if !ok {
		return
	}

	duration := t.timeTeller.CurrentTime() - original.StartTime
	t.totals[original.Kind] += duration
	t.counts[original.Kind]++

	delete(t.inflight, task.ID)
}

// TotalTime returns the accumulated seconds of all finished tasks of
// one kind.
func (t *TotalTimeTracer) TotalTime(kind string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.totals[kind]
}

// Count returns the number of finished tasks of one kind.
func (t *TotalTimeTracer) Count(kind string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.counts[kind]
}

// Report writes one line per task kind, alphabetically.
func (t *TotalTimeTracer) Report(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds := make([]string, 0, len(t.totals))
	for kind := range t.totals {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		fmt.Fprintf(w, "%-24s %8d tasks %12.6f s\n",
			kind, t.counts[kind], t.totals[kind])
	}
}

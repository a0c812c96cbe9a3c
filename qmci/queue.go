package qmci

import "sync"

// An accumulatorSlot is one entry of the solver's accumulator registry.
// The slot owns the synchronization between the accumulator goroutine and
// whichever walker claims it: the accumulator parks in awaitDelivery until
// a walker's update lands or the run shuts down. Only slot indices
// circulate through the hand-off queue, never the accumulators themselves.
type accumulatorSlot struct {
	mu   sync.Mutex
	cond *sync.Cond

	// accum is bound by the owning goroutine each iteration, before the
	// slot index first enters the queue.
	accum Accumulator

	updates int
	done    bool
}

func newAccumulatorSlot() *accumulatorSlot {
	s := &accumulatorSlot{}
	s.cond = sync.NewCond(&s.mu)

	return s
}

// bind installs the accumulator the slot synchronizes for this iteration.
func (s *accumulatorSlot) bind(a Accumulator) {
	s.accum = a
}

// reset prepares the slot for a new iteration. It must not be called
// while runner goroutines are active.
func (s *accumulatorSlot) reset() {
	s.updates = 0
	s.done = false
}

// deliver runs the walker-to-accumulator update on the calling walker's
// goroutine and wakes the parked accumulator. The call is synchronous for
// the walker: once it returns, the walker may sweep on immediately while
// the accumulator measures.
func (s *accumulatorSlot) deliver(w Walker) {
	s.accum.UpdateFrom(w)

	s.mu.Lock()
	s.updates++
	s.mu.Unlock()

	s.cond.Signal()
}

// awaitDelivery parks the accumulator goroutine until a delivery arrives
// or the slot is signaled done. It reports false on shutdown without a
// pending delivery.
func (s *accumulatorSlot) awaitDelivery() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.updates == 0 && !s.done {
		s.cond.Wait()
	}

	if s.updates == 0 {
		return false
	}

	s.updates--

	return true
}

// notifyDone wakes the parked accumulator so it can observe shutdown.
// The shutdown drain sends this exactly once per queued slot.
func (s *accumulatorSlot) notifyDone() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()

	s.cond.Signal()
}

// A handoffQueue is the synchronized stack of available accumulator slot
// indices. Accumulators push themselves, walkers pop. Pushing re-checks
// the shutdown decision under the same lock, so no slot re-enters the
// queue after the last walker has finished and no walker blocks forever
// on a drained queue.
type handoffQueue struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond

	stack    []int
	finished int
	walkers  int
}

func newHandoffQueue(walkers int) *handoffQueue {
	q := &handoffQueue{walkers: walkers}
	q.nonEmpty = sync.NewCond(&q.mu)

	return q
}

// reset clears the queue state for a new iteration. It must not be
// called while runner goroutines are active.
func (q *handoffQueue) reset() {
	q.stack = q.stack[:0]
	q.finished = 0
}

// push offers a slot to the walkers. It reports false, without queuing,
// when every walker has already finished, which tells the accumulator to
// exit its loop instead.
func (q *handoffQueue) push(slot int) bool {
	q.mu.Lock()
	if q.finished == q.walkers {
		q.mu.Unlock()
		return false
	}
	q.stack = append(q.stack, slot)
	q.mu.Unlock()

	q.nonEmpty.Signal()

	return true
}

// pop blocks until a slot is available and claims it.
func (q *handoffQueue) pop() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.stack) == 0 {
		q.nonEmpty.Wait()
	}

	top := q.stack[len(q.stack)-1]
	q.stack = q.stack[:len(q.stack)-1]

	return top
}

// walkerFinished counts one walker as done. For the walker that finishes
// last it drains the queue and returns the still-queued slot indices,
// each owed exactly one termination signal.
func (q *handoffQueue) walkerFinished() (drained []int, last bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.finished++
	if q.finished != q.walkers {
		return nil, false
	}

	drained = make([]int, len(q.stack))
	copy(drained, q.stack)
	q.stack = q.stack[:0]

	return drained, true
}

// finishedWalkers returns how many walkers have completed their
// measurements.
func (q *handoffQueue) finishedWalkers() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.finished
}

// size returns how many slots are currently queued.
func (q *handoffQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.stack)
}

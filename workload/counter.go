package workload

import "sync/atomic"

// A Counter hands out measurement indices to concurrently running walkers.
// Each index in [0, total) is claimed by exactly one caller and the stored
// count never exceeds total, so readers can use it as a progress value.
type Counter struct {
	claimed atomic.Int64
	total   int64
}

// NewCounter creates a Counter that will hand out total claims.
func NewCounter(total int) *Counter {
	c := &Counter{}
	c.Reset(total)
	return c
}

// Reset prepares the counter for a new round of total claims. It must not be
// called while claimers are active.
func (c *Counter) Reset(total int) {
	if total < 0 {
		panic("workload: counter total must not be negative")
	}

	c.total = int64(total)
	c.claimed.Store(0)
}

// Next claims the next measurement index. The second return value is false
// when all work has been handed out.
func (c *Counter) Next() (int, bool) {
	for {
		cur := c.claimed.Load()
		if cur >= c.total {
			return 0, false
		}

		if c.claimed.CompareAndSwap(cur, cur+1) {
			return int(cur), true
		}
	}
}

// Claimed returns how many units have been handed out so far.
func (c *Counter) Claimed() int {
	return int(c.claimed.Load())
}

// Total returns the number of units this counter hands out in total.
func (c *Counter) Total() int {
	return int(c.total)
}

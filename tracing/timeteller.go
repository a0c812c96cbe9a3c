package tracing

import "time"

// A TimeTeller reports the current time of a run in seconds.
type TimeTeller interface {
	CurrentTime() float64
}

// WallClock tells time as wall-clock seconds elapsed since its
// creation. One clock is shared by every tracer of a run so all traced
// tasks live on the same axis.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a WallClock starting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// CurrentTime returns the seconds elapsed since the clock started.
func (c *WallClock) CurrentTime() float64 {
	return time.Since(c.start).Seconds()
}

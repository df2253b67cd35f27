package valve

import (
	"math"
	"time"
)

// FrameClock turns a fixed-rate frame loop into ticks of a coarser
// interval. Hosts call Step once per frame.
type FrameClock struct {
	per    int
	frames int
}

// NewFrameClock ticks once every interval at tps frames per second.
func NewFrameClock(interval time.Duration, tps int) *FrameClock {
	per := int(math.Round(interval.Seconds() * float64(tps)))
	if per < 1 {
		per = 1
	}
	return &FrameClock{per: per}
}

// Step counts one frame and reports whether an interval just completed.
func (c *FrameClock) Step() bool {
	c.frames++
	if c.frames < c.per {
		return false
	}
	c.frames = 0
	return true
}

// Reset drops any partial interval.
func (c *FrameClock) Reset() { c.frames = 0 }

// Package wheel converts a continuous drag around the valve wheel into
// discrete countdown steps.
package wheel

import "math"

// AngleFor returns the angle in degrees of point (px, py) around centre
// (cx, cy), in screen coordinates (y grows downwards, so positive deltas are
// clockwise on screen).
func AngleFor(px, py, cx, cy float64) float64 {
	return math.Atan2(py-cy, px-cx) * 180 / math.Pi
}

// NormalizedDelta returns the signed rotation from one angle to the next,
// folded into (-180, 180] so crossing the ±180 seam is a small step.
func NormalizedDelta(from, to float64) float64 {
	delta := to - from
	if delta > 180 {
		delta -= 360
	}
	if delta <= -180 {
		delta += 360
	}
	return delta
}

// Steps reports how many timer steps one pointer sample produced.
type Steps struct {
	Up   int
	Down int
}

// Any reports whether at least one step was applied.
func (s Steps) Any() bool { return s.Up > 0 || s.Down > 0 }

// Converter buffers rotation per direction and flushes whole turns into the
// timer. It is not safe for concurrent use; hosts call it from their UI loop.
type Converter struct {
	Timer *Timer

	rotation  float64
	lastAngle float64
	dragging  bool

	clockwise        float64
	counterclockwise float64
}

// NewConverter returns a converter stepping t.
func NewConverter(t *Timer) *Converter {
	return &Converter{Timer: t}
}

// Move feeds one pointer position relative to the wheel centre. The first
// sample of a gesture only seeds the reference angle.
func (c *Converter) Move(x, y, cx, cy float64) Steps {
	angle := AngleFor(x, y, cx, cy)
	if !c.dragging {
		c.dragging = true
		c.lastAngle = angle
		return Steps{}
	}
	steps := c.Rotate(NormalizedDelta(c.lastAngle, angle))
	c.lastAngle = angle
	return steps
}

// Rotate buffers an already normalized delta in degrees and applies every
// whole turn it completes. The threshold is re-read before each step since a
// step may move the timer across the six hour boundary, and both buffers are
// drained again until neither holds a whole turn. A step the timer cannot
// take at zero or at the maximum is not counted; the buffer keeps only its
// partial turn. Non-finite deltas are ignored.
func (c *Converter) Rotate(delta float64) Steps {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return Steps{}
	}
	c.rotation += delta
	switch {
	case delta > 0:
		c.clockwise += delta
	case delta < 0:
		c.counterclockwise -= delta
	}

	var s Steps
	for {
		up := c.drain(&c.clockwise, c.Timer.Increment)
		down := c.drain(&c.counterclockwise, c.Timer.Decrement)
		if up == 0 && down == 0 {
			return s
		}
		s.Up += up
		s.Down += down
	}
}

// drain applies step for each whole turn in buf and returns how many moved
// the timer.
func (c *Converter) drain(buf *float64, step func()) int {
	n := 0
	for {
		need := c.Timer.RequiredDegrees()
		if *buf < need {
			return n
		}
		before := c.Timer.Remaining()
		step()
		if c.Timer.Remaining() == before {
			*buf = math.Mod(*buf, need)
			return n
		}
		*buf -= need
		n++
	}
}

// Release ends the gesture and drops any partial turn.
func (c *Converter) Release() {
	c.dragging = false
	c.lastAngle = 0
	c.clockwise = 0
	c.counterclockwise = 0
}

// Reset returns the converter to its initial state, including the visual
// rotation. The timer is left alone.
func (c *Converter) Reset() {
	c.Release()
	c.rotation = 0
}

// Dragging reports whether a gesture is in progress.
func (c *Converter) Dragging() bool { return c.dragging }

// Rotation is the accumulated wheel rotation in degrees for rendering.
func (c *Converter) Rotation() float64 { return c.rotation }

// Buffered returns the pending clockwise and counter-clockwise rotation.
func (c *Converter) Buffered() (cw, ccw float64) {
	return c.clockwise, c.counterclockwise
}

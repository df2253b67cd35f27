package wheel

const (
	// MaxSeconds caps the countdown at one day.
	MaxSeconds = 24 * 60 * 60

	fineStepSeconds   = 10
	coarseStepSeconds = 600
	fineLimitSeconds  = 60

	// Rotation required per step, widened once the countdown exceeds six hours.
	DegreesPerTurn      = 360.0
	DegreesPerTurnSlow  = 540.0
	slowThresholdSecond = 6 * 60 * 60
)

// Timer is the countdown driven by the wheel and the 1 second tick.
// The zero value is an expired timer.
type Timer struct {
	remaining int
}

// Remaining returns the seconds left, always within [0, MaxSeconds].
func (t *Timer) Remaining() int { return t.remaining }

// Set stores seconds clamped to [0, MaxSeconds].
func (t *Timer) Set(seconds int) {
	t.remaining = clampSeconds(seconds)
}

// Tick removes one second; an expired timer stays at zero.
func (t *Timer) Tick() {
	if t.remaining > 0 {
		t.remaining--
	}
}

// Increment applies one clockwise step. Inside the first minute the timer
// grows by 10s and never past 60s; above it each step adds ten minutes.
func (t *Timer) Increment() {
	if t.remaining < fineLimitSeconds {
		t.remaining = min(fineLimitSeconds, t.remaining+fineStepSeconds)
		return
	}
	t.remaining = min(MaxSeconds, t.remaining+coarseStepSeconds)
}

// Decrement applies one counter-clockwise step. Coarse steps stop at the
// last minute, which is then unwound 10s at a time.
func (t *Timer) Decrement() {
	if t.remaining <= 0 {
		return
	}
	if t.remaining <= fineLimitSeconds {
		t.remaining = max(0, t.remaining-fineStepSeconds)
		return
	}
	t.remaining = max(fineLimitSeconds, t.remaining-coarseStepSeconds)
}

// RequiredDegrees is the buffered rotation needed for the next step.
func (t *Timer) RequiredDegrees() float64 {
	if t.remaining > slowThresholdSecond {
		return DegreesPerTurnSlow
	}
	return DegreesPerTurn
}

func clampSeconds(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSeconds {
		return MaxSeconds
	}
	return v
}

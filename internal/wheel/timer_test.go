package wheel

import (
	"math/rand"
	"testing"
)

func TestTimerIncrement(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"from zero", 0, 10},
		{"fine step", 30, 40},
		{"fine step clamps to minute", 55, 60},
		{"coarse step at minute", 60, 660},
		{"coarse step", 3600, 4200},
		{"clamps to a day", MaxSeconds - 100, MaxSeconds},
		{"at cap", MaxSeconds, MaxSeconds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tm Timer
			tm.Set(tt.start)
			tm.Increment()
			if got := tm.Remaining(); got != tt.want {
				t.Errorf("Increment from %d = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func TestTimerDecrement(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"expired is a no-op", 0, 0},
		{"fine step floors at zero", 5, 0},
		{"fine step", 45, 35},
		{"fine step at minute", 60, 50},
		{"coarse step stops at minute", 300, 60},
		{"coarse step", 4200, 3600},
		{"from cap", MaxSeconds, MaxSeconds - 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tm Timer
			tm.Set(tt.start)
			tm.Decrement()
			if got := tm.Remaining(); got != tt.want {
				t.Errorf("Decrement from %d = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func TestTimerDecrementIdempotentAtZero(t *testing.T) {
	var tm Timer
	for i := 0; i < 5; i++ {
		tm.Decrement()
		tm.Tick()
	}
	if tm.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", tm.Remaining())
	}
}

func TestTimerSetClamps(t *testing.T) {
	var tm Timer
	tm.Set(-5)
	if tm.Remaining() != 0 {
		t.Errorf("Set(-5) = %d, want 0", tm.Remaining())
	}
	tm.Set(MaxSeconds + 1)
	if tm.Remaining() != MaxSeconds {
		t.Errorf("Set(max+1) = %d, want %d", tm.Remaining(), MaxSeconds)
	}
}

func TestTimerRequiredDegrees(t *testing.T) {
	var tm Timer
	tm.Set(6 * 3600)
	if got := tm.RequiredDegrees(); got != DegreesPerTurn {
		t.Errorf("at exactly 6h RequiredDegrees = %v, want %v", got, DegreesPerTurn)
	}
	tm.Set(6*3600 + 1)
	if got := tm.RequiredDegrees(); got != DegreesPerTurnSlow {
		t.Errorf("above 6h RequiredDegrees = %v, want %v", got, DegreesPerTurnSlow)
	}
}

func TestTimerStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var tm Timer
	for i := 0; i < 20000; i++ {
		switch rng.Intn(3) {
		case 0:
			tm.Increment()
		case 1:
			tm.Decrement()
		default:
			tm.Tick()
		}
		if r := tm.Remaining(); r < 0 || r > MaxSeconds {
			t.Fatalf("step %d: remaining %d out of range", i, r)
		}
	}
}

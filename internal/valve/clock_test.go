package valve

import (
	"testing"
	"time"
)

func TestFrameClockSixtyFrames(t *testing.T) {
	c := NewFrameClock(time.Second, 60)
	for i := 0; i < 59; i++ {
		if c.Step() {
			t.Fatalf("ticked early at frame %d", i+1)
		}
	}
	if !c.Step() {
		t.Fatal("60th frame did not tick")
	}
	if c.Step() {
		t.Fatal("61st frame ticked")
	}
}

func TestFrameClockMinimumOneFrame(t *testing.T) {
	c := NewFrameClock(time.Millisecond, 60)
	for i := 0; i < 3; i++ {
		if !c.Step() {
			t.Fatalf("frame %d did not tick", i)
		}
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(time.Second, 10)
	for i := 0; i < 9; i++ {
		c.Step()
	}
	c.Reset()
	if c.Step() {
		t.Fatal("Reset kept partial interval")
	}
}

func TestSessionTicksDownFromClock(t *testing.T) {
	s := NewSession(nil)
	s.Appear()
	s.Rotate(360)
	s.Rotate(360)

	c := NewFrameClock(time.Second, 60)
	for i := 0; i < 120; i++ {
		if c.Step() {
			s.Tick()
		}
	}
	if s.Remaining() != 18 {
		t.Fatalf("remaining = %d, want 18", s.Remaining())
	}
}

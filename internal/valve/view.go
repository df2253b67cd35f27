package valve

import (
	"fmt"
	"image/color"
)

// View is a snapshot of the derived visual state of a session.
type View struct {
	Remaining int
	// Clock is the countdown as HH:MM:SS.
	Clock string
	// WheelRotation is the accumulated drag rotation in degrees.
	WheelRotation float64

	// WheelOn fades the lit wheel in over the last 25 seconds.
	WheelOn float64
	// TubeMin and TubeMax cross-fade the tube glow across the first minute.
	TubeMin float64
	TubeMax float64

	// Background is the top, middle and bottom gradient stop.
	Background [3]color.RGBA

	// ShowContinue is set once the countdown has run out.
	ShowContinue bool
}

// ContinueText is shown when the countdown is empty.
const ContinueText = "Continue the work"

type rgb struct{ r, g, b float64 }

// Gradient stops for an idle (grey) and a wound-up (deep blue) scene.
var (
	idleStops   = [3]rgb{{0.16, 0.16, 0.18}, {0.08, 0.08, 0.09}, {0.02, 0.02, 0.03}}
	activeStops = [3]rgb{{0.19, 0.20, 0.48}, {0.05, 0.07, 0.38}, {0.01, 0.03, 0.16}}
)

func newView(remaining int, rotation float64) View {
	p := clamp01(float64(remaining) / 60)
	v := View{
		Remaining:     remaining,
		Clock:         FormatClock(remaining),
		WheelRotation: rotation,
		WheelOn:       clamp01(float64(remaining) / 25),
		ShowContinue:  remaining == 0,
	}
	if p < 0.5 {
		v.TubeMin = 2 * p
	} else {
		v.TubeMin = 2 * (1 - p)
		v.TubeMax = 2*p - 1
	}

	blend := clamp01(float64(remaining) / 120)
	for i := range v.Background {
		v.Background[i] = mix(idleStops[i], activeStops[i], blend)
	}
	return v
}

// FormatClock formats seconds as HH:MM:SS; negative input reads as zero.
func FormatClock(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

func mix(from, to rgb, t float64) color.RGBA {
	t = clamp01(t)
	ch := func(a, b float64) uint8 {
		return uint8((a+(b-a)*t)*255 + 0.5)
	}
	return color.RGBA{R: ch(from.r, to.r), G: ch(from.g, to.g), B: ch(from.b, to.b), A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

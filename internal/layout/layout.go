// Package layout computes screen geometry for the valve wheel hosts. It is
// free of any rendering library so both the window and terminal hosts use it.
package layout

import (
	"math"
	"strings"

	"github.com/iburimskiy/valve-wheel/internal/config"
)

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the centre point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectAt returns a w by h rectangle centred on (cx, cy).
func RectAt(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Gameplay is the geometry of the wheel screen.
type Gameplay struct {
	CX, CY    float64
	WheelSize float64
	BackSize  float64
	Timer     Rect
	Back      Rect
	Continue  [2]float64
}

// ForGameplay lays out the wheel screen for a w by h surface.
func ForGameplay(w, h float64) Gameplay {
	wheel := math.Min(w*config.WheelWidthRatio, config.WheelMaxSize)
	cx := w / 2
	cy := h/2 + math.Min(config.WheelDropMax, h*config.WheelDropRatio)
	timerW := math.Min(w*config.TimerWidthRatio, config.TimerMaxWidth)
	tx := cx + math.Min(config.TimerOffsetMax, w*config.TimerOffsetRatio)
	ty := cy + math.Min(wheel*config.TimerDropRatio, config.TimerDropMax)

	return Gameplay{
		CX:        cx,
		CY:        cy,
		WheelSize: wheel,
		BackSize:  wheel * config.WheelBackScale,
		Timer:     RectAt(tx, ty, timerW, config.TimerHeight),
		Back:      Rect{X: 22, Y: 40, W: 2 * config.BackButtonR, H: 2 * config.BackButtonR},
		Continue:  [2]float64{w / 2, 210},
	}
}

// InWheel reports whether a press at (x, y) grabs the wheel.
func (g Gameplay) InWheel(x, y float64) bool {
	return math.Hypot(x-g.CX, y-g.CY) <= g.WheelSize/2
}

// BottomPadding is the gap under the main button on menu-style screens.
func BottomPadding(h float64) float64 {
	return math.Max(42, math.Min(92, h*0.11))
}

// Menu is the geometry of the title screen.
type Menu struct {
	Start    Rect
	Rules    Rect
	Settings Rect
}

// ForMenu lays out the title screen.
func ForMenu(w, h float64) Menu {
	start := RectAt(w/2, h-BottomPadding(h)-config.ButtonHeight/2, config.ButtonWidth, config.ButtonHeight)
	return Menu{
		Start:    start,
		Rules:    Rect{X: w - 96, Y: 24, W: 40, H: 40},
		Settings: Rect{X: w - 52, Y: 24, W: 40, H: 40},
	}
}

// Settings is the geometry of the settings screen.
type Settings struct {
	Row    Rect
	Toggle Rect
	Save   Rect
	Close  Rect
}

// ForSettings lays out the settings screen.
func ForSettings(w, h float64) Settings {
	rowW := math.Min(w-48, 392)
	row := Rect{X: (w - rowW) / 2, Y: 76, W: rowW, H: 112}
	return Settings{
		Row:    row,
		Toggle: RectAt(row.X+row.W-24-58, row.Y+row.H/2, 116, 58),
		Save:   RectAt(w/2, h-BottomPadding(h)-config.ButtonHeight/2, config.ButtonWidth, config.ButtonHeight),
		Close:  Rect{X: w - 52, Y: 24, W: 40, H: 40},
	}
}

// Wrap breaks text into lines no wider than maxWidth according to measure.
// A single word wider than maxWidth gets a line of its own.
func Wrap(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

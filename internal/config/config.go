package config

import (
	"image/color"
	"time"
)

const (
	// Logical portrait screen; the window scales it.
	ScreenWidth  = 430
	ScreenHeight = 860

	// Wheel geometry as fractions of the screen, capped in logical pixels.
	WheelWidthRatio = 0.72
	WheelMaxSize    = 338.0
	WheelBackScale  = 1.36
	WheelDropRatio  = 0.03
	WheelDropMax    = 26.0
	WheelSpokes     = 6

	// Countdown plate under the wheel.
	TimerWidthRatio  = 0.36
	TimerMaxWidth    = 164.0
	TimerHeight      = 56.0
	TimerOffsetRatio = 0.16
	TimerOffsetMax   = 62.0
	TimerDropMax     = 220.0
	TimerDropRatio   = 0.82

	// Buttons
	ButtonWidth  = 168
	ButtonHeight = 80
	BackButtonR  = 23

	LevelSmoothing = 0.6

	TickInterval = time.Second

	// Minimum time the loading bar stays up.
	LoadingMinDuration = 1200 * time.Millisecond
)

// Palette
var (
	ColorTitle      = color.RGBA{R: 0xCA, G: 0xD0, B: 0xDD, A: 0xFF}
	ColorButtonText = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
	ColorClock      = color.RGBA{R: 0xFF, G: 0x34, B: 0x34, A: 0xFF}
	ColorContinue   = color.RGBA{R: 0xC8, G: 0xCC, B: 0xD9, A: 0xFF}
	ColorBody       = color.RGBA{R: 0xEE, G: 0xF1, B: 0xFF, A: 0xFF}
	ColorSoundOn    = color.RGBA{R: 0x00, G: 0xFF, B: 0x7A, A: 0xFF}
	ColorSoundOff   = color.RGBA{R: 0xFF, G: 0x2D, B: 0x2D, A: 0xFF}
	ColorBackdrop   = color.RGBA{R: 0x04, G: 0x00, B: 0x26, A: 0xFF}
	ColorLoadTrack  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xE0}
	ColorLoadFill   = color.RGBA{R: 0x66, G: 0x69, B: 0x9F, A: 0xFF}
)

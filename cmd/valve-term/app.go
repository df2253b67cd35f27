package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/layout"
	"github.com/iburimskiy/valve-wheel/internal/sound"
	"github.com/iburimskiy/valve-wheel/internal/valve"
)

const (
	// A terminal cell is roughly twice as tall as it is wide.
	cellAspect = 2.0

	// Rows kept under the wheel for the clock and key help.
	statusRows = 2

	// Degrees per arrow key press.
	keyTurn = 30.0
)

// app runs one valve session on a tcell screen.
type app struct {
	screen  tcell.Screen
	session *valve.Session
	sound   *sound.Service
	log     *slog.Logger

	geo     layout.Gameplay
	grabbed bool
}

func newApp(screen tcell.Screen, svc *sound.Service, log *slog.Logger) *app {
	a := &app{
		screen:  screen,
		session: valve.NewSession(svc),
		sound:   svc,
		log:     log,
	}
	a.resize()
	a.session.Appear()
	return a
}

// resize fits the wheel into the screen in aspect-corrected cell units.
func (a *app) resize() {
	w, h := a.screen.Size()
	pw := float64(w)
	ph := float64(max(h-statusRows, 1)) * cellAspect
	a.geo = layout.Gameplay{
		CX:        pw / 2,
		CY:        ph / 2,
		WheelSize: math.Min(pw, ph) * 0.8,
	}
}

// point maps a cell to the centre of that cell in wheel space.
func point(col, row int) (float64, float64) {
	return float64(col) + 0.5, (float64(row) + 0.5) * cellAspect
}

// handle applies one event and reports whether the app keeps running.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == 's':
			a.sound.PlayClick()
			a.sound.SaveSoundEnabled(!a.sound.Enabled())
			a.log.Info("sound toggled", "enabled", a.sound.Enabled())
		case ev.Key() == tcell.KeyRight:
			a.session.Rotate(keyTurn)
		case ev.Key() == tcell.KeyLeft:
			a.session.Rotate(-keyTurn)
		}

	case *tcell.EventMouse:
		x, y := point(ev.Position())
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && (a.grabbed || a.geo.InWheel(x, y)):
			a.grabbed = true
			a.session.Drag(x, y, a.geo.CX, a.geo.CY)
		case !pressed && a.grabbed:
			a.grabbed = false
			a.session.Release()
		}

	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
	return true
}

// run polls input and ticks the countdown every interval until ctx ends or
// the user quits.
func (a *app) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.session.Tick()
		}
		a.draw()
	}
}

// close ends the session so gameplay audio stops.
func (a *app) close() {
	a.session.Disappear()
}

type glyph int

const (
	glyphNone glyph = iota
	glyphRim
	glyphSpoke
	glyphHub
)

// glyphAt classifies the cell at (col, row) for a wheel turned by rotation
// degrees.
func (a *app) glyphAt(col, row int, rotation float64) glyph {
	x, y := point(col, row)
	dx, dy := x-a.geo.CX, y-a.geo.CY
	d := math.Hypot(dx, dy)
	r := a.geo.WheelSize / 2

	switch {
	case math.Abs(d-r) < 0.75:
		return glyphRim
	case d <= r*0.12:
		return glyphHub
	case d < r:
		sector := 360.0 / config.WheelSpokes
		rel := math.Mod(math.Atan2(dy, dx)*180/math.Pi-rotation, sector)
		if rel < 0 {
			rel += sector
		}
		off := math.Min(rel, sector-rel) * math.Pi / 180
		if d*math.Sin(off) < 0.7 {
			return glyphSpoke
		}
	}
	return glyphNone
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	rimOff = color.RGBA{R: 0x6B, G: 0x6F, B: 0x7A, A: 0xFF}
	rimOn  = color.RGBA{R: 0xE0, G: 0x3A, B: 0x2E, A: 0xFF}
)

func (a *app) draw() {
	v := a.session.View()
	bg := tcell.StyleDefault.Background(rgb(v.Background[1]))
	a.screen.SetStyle(bg)
	a.screen.Clear()

	w, h := a.screen.Size()
	rim := bg.Foreground(rgb(mixRGBA(rimOff, rimOn, v.WheelOn)))
	for row := 0; row < h-statusRows; row++ {
		for col := 0; col < w; col++ {
			switch a.glyphAt(col, row, v.WheelRotation) {
			case glyphRim:
				a.screen.SetContent(col, row, 'O', nil, rim)
			case glyphSpoke:
				a.screen.SetContent(col, row, '+', nil, rim)
			case glyphHub:
				a.screen.SetContent(col, row, '@', nil, rim)
			}
		}
	}

	if v.ShowContinue {
		a.centered(0, valve.ContinueText, bg.Foreground(rgb(config.ColorContinue)))
	}
	a.centered(h-2, v.Clock, bg.Foreground(rgb(config.ColorClock)).Bold(true))

	state := "off"
	if a.sound.Enabled() {
		state = "on"
	}
	help := fmt.Sprintf("sound %s | drag the wheel or use arrows | s: sound  q: quit", state)
	a.centered(h-1, help, bg.Foreground(rgb(config.ColorBody)))
	a.screen.Show()
}

func (a *app) centered(row int, s string, style tcell.Style) {
	w, _ := a.screen.Size()
	runes := []rune(s)
	col := (w - len(runes)) / 2
	for i, r := range runes {
		a.screen.SetContent(col+i, row, r, nil, style)
	}
}

func mixRGBA(from, to color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	l := func(a, b uint8) uint8 { return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t)) }
	return color.RGBA{R: l(from.R, to.R), G: l(from.G, to.G), B: l(from.B, to.B), A: 0xFF}
}

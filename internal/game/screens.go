package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/layout"
)

const rulesText = "When the system runs dry, the atmosphere turns cold, gray, and a persistent signal " +
	"reminds you that the work has stopped. To bring back the peace, you have to engage. " +
	"You physically rotate the valve, swipe by swipe, turn by turn. Each full rotation buys you " +
	"ten minutes of deep, immersive ambient sound and a shift into a vibrant, living aesthetic."

var startStops = [3]color.RGBA{
	{R: 0x17, G: 0x12, B: 0x4A, A: 0xFF},
	{R: 0x0B, G: 0x06, B: 0x33, A: 0xFF},
	config.ColorBackdrop,
}

func drawTitle(g *Game, dst *ebiten.Image) {
	big := math.Min(g.width*0.22, 96)
	small := math.Min(g.width*0.13, 56)
	drawText(dst, "L'AuLake", g.fonts.title(big), 18, 50, text.AlignStart, false, config.ColorTitle)
	drawText(dst, "Gaming", g.fonts.title(small), g.width-18, 50+big*1.2-18, text.AlignEnd, false, config.ColorTitle)
}

func drawButton(g *Game, dst *ebiten.Image, b *button, label string, size float64, c color.Color) {
	drawMetal(dst, b.rect, true)
	if b.armed && b.hovered(&g.pointer) {
		r := b.rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fade(shadowColor, 0.2), true)
	}
	x, y := b.rect.Center()
	drawText(dst, label, g.fonts.button(size), x, y, text.AlignCenter, true, c)
}

type loadingScreen struct {
	started  time.Time
	assets   float64
	loaded   bool
	progress float64
}

func newLoadingScreen() *loadingScreen { return &loadingScreen{} }

func (s *loadingScreen) appear(*Game)    { s.started = time.Now() }
func (s *loadingScreen) disappear(*Game) {}

func (s *loadingScreen) update(g *Game) error {
	if !s.loaded {
		done, total := g.sound.Preload()
		s.assets = 1
		if total > 0 {
			s.assets = float64(done) / float64(total)
		}
		s.loaded = done >= total
	}
	elapsed := clamp01(float64(time.Since(s.started)) / float64(config.LoadingMinDuration))
	s.progress = math.Min(s.assets, elapsed)
	if s.loaded && elapsed >= 1 {
		g.log.Info("sounds ready")
		g.replace(newMenuScreen(g))
	}
	return nil
}

func (s *loadingScreen) draw(g *Game, dst *ebiten.Image) {
	drawGradient(dst, startStops)
	drawTitle(g, dst)
	w := g.width - 108
	y := g.height - 82 - 26
	drawCapsule(dst, 54, y, w, 26, config.ColorLoadTrack)
	drawCapsule(dst, 54, y, w*s.progress, 26, config.ColorLoadFill)
}

type menuScreen struct {
	start, rules, settings button
}

func newMenuScreen(g *Game) *menuScreen {
	l := layout.ForMenu(g.width, g.height)
	return &menuScreen{
		start:    button{rect: l.Start},
		rules:    button{rect: l.Rules},
		settings: button{rect: l.Settings},
	}
}

func (s *menuScreen) appear(*Game)    {}
func (s *menuScreen) disappear(*Game) {}

func (s *menuScreen) update(g *Game) error {
	p := &g.pointer
	switch {
	case s.start.update(p):
		g.clickAnd(func() { g.push(newGameplayScreen(g)) })
	case s.rules.update(p):
		g.clickAnd(func() { g.push(newRulesScreen(g)) })
	case s.settings.update(p):
		g.clickAnd(func() { g.push(newSettingsScreen(g)) })
	}
	return nil
}

func (s *menuScreen) draw(g *Game, dst *ebiten.Image) {
	drawGradient(dst, startStops)
	drawTitle(g, dst)
	drawButton(g, dst, &s.start, "Start", 40, config.ColorButtonText)
	x, y := s.rules.rect.Center()
	drawText(dst, "?", g.fonts.body(30), x, y, text.AlignCenter, true, config.ColorTitle)
	drawGear(dst, s.settings.rect, config.ColorTitle)
}

type rulesScreen struct {
	close button
	size  float64
	lines []string
}

func newRulesScreen(g *Game) *rulesScreen {
	size := math.Max(17, math.Min(28, math.Min(g.width, g.height)*0.06))
	pad := math.Max(20, math.Min(34, g.width*0.07))
	return &rulesScreen{
		close: button{rect: layout.ForSettings(g.width, g.height).Close},
		size:  size,
		lines: layout.Wrap(rulesText, g.width-2*pad, measure(g.fonts.body(size))),
	}
}

func (s *rulesScreen) appear(*Game)    {}
func (s *rulesScreen) disappear(*Game) {}

func (s *rulesScreen) update(g *Game) error {
	if s.close.update(&g.pointer) {
		g.clickAnd(g.pop)
	}
	return nil
}

func (s *rulesScreen) draw(g *Game, dst *ebiten.Image) {
	drawGradient(dst, startStops)
	drawCross(dst, s.close.rect, config.ColorTitle)
	face := g.fonts.body(s.size)
	step := s.size*1.2 + math.Max(2, math.Min(7, s.size*0.16))
	y := math.Max(44, math.Min(80, g.height*0.14))
	for _, line := range s.lines {
		drawText(dst, line, face, g.width/2, y, text.AlignCenter, false, config.ColorBody)
		y += step
	}
}

// settingsScreen edits a draft of the sound preference. Only Save applies
// it; closing discards the draft.
type settingsScreen struct {
	row                  layout.Rect
	toggle, save, closeB button
	draft                bool
}

func newSettingsScreen(g *Game) *settingsScreen {
	l := layout.ForSettings(g.width, g.height)
	return &settingsScreen{
		row:    l.Row,
		toggle: button{rect: l.Toggle},
		save:   button{rect: l.Save},
		closeB: button{rect: l.Close},
	}
}

func (s *settingsScreen) appear(g *Game)  { s.draft = g.sound.Enabled() }
func (s *settingsScreen) disappear(*Game) {}

func (s *settingsScreen) update(g *Game) error {
	p := &g.pointer
	switch {
	case s.toggle.update(p):
		g.clickAnd(func() { s.draft = !s.draft })
	case s.save.update(p):
		g.clickAnd(func() {
			g.sound.SaveSoundEnabled(s.draft)
			g.log.Info("sound preference saved", "enabled", s.draft)
			g.pop()
		})
	case s.closeB.update(p):
		g.clickAnd(g.pop)
	}
	return nil
}

func (s *settingsScreen) draw(g *Game, dst *ebiten.Image) {
	drawGradient(dst, startStops)
	drawCross(dst, s.closeB.rect, config.ColorTitle)
	drawMetal(dst, s.row, false)
	_, cy := s.row.Center()
	drawText(dst, "Sound", g.fonts.title(42), s.row.X+24, cy, text.AlignStart, true, config.ColorBody)

	label, c := "OFF", config.ColorSoundOff
	if s.draft {
		label, c = "ON", config.ColorSoundOn
	}
	drawButton(g, dst, &s.toggle, label, 34, c)
	drawButton(g, dst, &s.save, "Save", 40, config.ColorButtonText)
}

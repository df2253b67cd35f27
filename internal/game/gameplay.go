package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/layout"
	"github.com/iburimskiy/valve-wheel/internal/valve"
)

// Degrees per frame while an arrow key is held.
const keyTurnSpeed = 6.0

var (
	tubeOff    = color.RGBA{R: 0x3A, G: 0x3D, B: 0x46, A: 0xFF}
	tubeWarm   = color.RGBA{R: 0xFF, G: 0x6A, B: 0x2A, A: 0xFF}
	tubeBright = color.RGBA{R: 0xFF, G: 0xD2, B: 0x4A, A: 0xFF}
	wheelBack  = color.RGBA{R: 0x1C, G: 0x1E, B: 0x26, A: 0xFF}
	wheelOff   = color.RGBA{R: 0x6B, G: 0x6F, B: 0x7A, A: 0xFF}
	wheelOn    = color.RGBA{R: 0xE0, G: 0x3A, B: 0x2E, A: 0xFF}
)

type gameplayScreen struct {
	session *valve.Session
	clock   *valve.FrameClock
	geo     layout.Gameplay
	back    button
	grabbed bool
}

func newGameplayScreen(g *Game) *gameplayScreen {
	geo := layout.ForGameplay(g.width, g.height)
	return &gameplayScreen{
		session: valve.NewSession(g.sound),
		clock:   valve.NewFrameClock(config.TickInterval, ebiten.TPS()),
		geo:     geo,
		back:    button{rect: geo.Back},
	}
}

func (s *gameplayScreen) appear(*Game) {
	s.clock.Reset()
	s.session.Appear()
}

func (s *gameplayScreen) disappear(*Game) {
	s.grabbed = false
	s.session.Disappear()
}

func (s *gameplayScreen) update(g *Game) error {
	p := &g.pointer
	if s.back.update(p) {
		g.clickAnd(g.pop)
		return nil
	}

	if s.clock.Step() {
		s.session.Tick()
	}

	switch {
	case p.pressed && s.geo.InWheel(p.x, p.y):
		s.grabbed = true
		s.session.Drag(p.x, p.y, s.geo.CX, s.geo.CY)
	case s.grabbed && p.released:
		s.grabbed = false
		s.session.Release()
	case s.grabbed && p.down:
		s.session.Drag(p.x, p.y, s.geo.CX, s.geo.CY)
	}

	if s.grabbed {
		return nil
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		s.session.Rotate(keyTurnSpeed)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		s.session.Rotate(-keyTurnSpeed)
	case inpututil.IsKeyJustReleased(ebiten.KeyArrowRight), inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft):
		s.session.Release()
	}
	return nil
}

func (s *gameplayScreen) draw(g *Game, dst *ebiten.Image) {
	v := s.session.View()
	drawGradient(dst, v.Background)
	s.drawTubes(g, dst, v)

	if v.ShowContinue {
		drawText(dst, valve.ContinueText, g.fonts.title(30), s.geo.Continue[0], s.geo.Continue[1],
			text.AlignCenter, true, config.ColorContinue)
	}

	s.drawWheel(g, dst, v)

	drawMetal(dst, s.geo.Timer, false)
	tx, ty := s.geo.Timer.Center()
	drawText(dst, v.Clock, g.fonts.body(30), tx, ty, text.AlignCenter, true, config.ColorClock)

	drawChevron(dst, s.back.rect, config.ColorTitle)
}

func (s *gameplayScreen) drawTubes(g *Game, dst *ebiten.Image, v valve.View) {
	const width = 26
	h := float32(g.height)
	for _, x := range []float64{g.width * 0.1, g.width * 0.9} {
		left := float32(x - width/2)
		vector.DrawFilledRect(dst, left, 0, width, h, fade(tubeOff, 0.9), true)
		vector.DrawFilledRect(dst, left, 0, width, h, fade(tubeWarm, v.TubeMin), true)
		vector.DrawFilledRect(dst, left, 0, width, h, fade(tubeBright, v.TubeMax), true)
		vector.StrokeRect(dst, left, 0, width, h, 2, metalDark, true)
	}
}

func (s *gameplayScreen) drawWheel(g *Game, dst *ebiten.Image, v valve.View) {
	cx, cy := float32(s.geo.CX), float32(s.geo.CY)
	size := s.geo.WheelSize

	vector.DrawFilledCircle(dst, cx, cy, float32(s.geo.BackSize/2), wheelBack, true)
	vector.StrokeCircle(dst, cx, cy, float32(s.geo.BackSize/2), 3, metalDark, true)

	// Halo follows the audio output level.
	if g.level > 0.01 {
		r, gr, b := hsvToRgb(8+g.level*32, 0.85, 1)
		halo := fade(color.RGBA{R: r, G: gr, B: b, A: 0xFF}, g.level*0.8)
		radius := size/2 + 10 + g.level*18
		vector.StrokeCircle(dst, cx, cy, float32(radius), float32(4+g.level*8), halo, true)
	}

	rim := lerpColor(wheelOff, wheelOn, v.WheelOn)
	rimR := size / 2 * 0.86
	vector.StrokeCircle(dst, cx, cy, float32(rimR), float32(size*0.07), rim, true)

	hubR := size * 0.1
	for i := 0; i < config.WheelSpokes; i++ {
		a := (v.WheelRotation + float64(i)*360/config.WheelSpokes) * math.Pi / 180
		cos, sin := math.Cos(a), math.Sin(a)
		vector.StrokeLine(dst,
			cx+float32(cos*hubR), cy+float32(sin*hubR),
			cx+float32(cos*rimR), cy+float32(sin*rimR),
			float32(size*0.045), rim, true)
		vector.DrawFilledCircle(dst, cx+float32(cos*rimR), cy+float32(sin*rimR), float32(size*0.05), metalFace, true)
	}
	vector.DrawFilledCircle(dst, cx, cy, float32(hubR), rim, true)
	vector.DrawFilledCircle(dst, cx, cy, float32(hubR*0.5), metalFace, true)
}

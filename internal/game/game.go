// Package game is the windowed host: an ebiten game with a stack of screens
// over the valve session and the sound service.
package game

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valve-wheel/internal/config"
	"github.com/iburimskiy/valve-wheel/internal/sound"
)

type screen interface {
	update(g *Game) error
	draw(g *Game, dst *ebiten.Image)
	appear(g *Game)
	disappear(g *Game)
}

// Game implements ebiten.Game.
type Game struct {
	log     *slog.Logger
	sound   *sound.Service
	fonts   *fonts
	pointer pointer
	stack   []screen

	// smoothed output level for the wheel halo
	level float64

	width, height float64
	debug         bool
}

// New builds the game showing the loading screen. A nil logger discards.
// debug adds a frame rate and audio overlay.
func New(svc *sound.Service, log *slog.Logger, debug bool) (*Game, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}
	g := &Game{
		log:    log,
		sound:  svc,
		fonts:  f,
		width:  config.ScreenWidth,
		height: config.ScreenHeight,
		debug:  debug,
	}
	g.push(newLoadingScreen())
	return g, nil
}

func (g *Game) top() screen { return g.stack[len(g.stack)-1] }

func (g *Game) push(s screen) {
	g.stack = append(g.stack, s)
	g.log.Debug("screen pushed", "depth", len(g.stack))
	s.appear(g)
}

// pop leaves the root screen in place.
func (g *Game) pop() {
	if len(g.stack) < 2 {
		return
	}
	top := g.top()
	g.stack = g.stack[:len(g.stack)-1]
	top.disappear(g)
	g.log.Debug("screen popped", "depth", len(g.stack))
}

func (g *Game) replace(s screen) {
	g.top().disappear(g)
	g.stack[len(g.stack)-1] = s
	s.appear(g)
}

// clickAnd plays the button click before a navigation action.
func (g *Game) clickAnd(action func()) {
	g.sound.PlayClick()
	action()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if len(g.stack) < 2 {
			return ebiten.Termination
		}
		g.clickAnd(g.pop)
		return nil
	}

	g.pointer.update()
	g.level = g.level*config.LevelSmoothing + g.sound.Level()*(1-config.LevelSmoothing)
	return g.top().update(g)
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(config.ColorBackdrop)
	g.top().draw(g, dst)
	if g.debug {
		status := fmt.Sprintf("TPS %.0f  FPS %.0f  sound %v  blend %.2f  level %.2f",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.sound.Enabled(), g.sound.Blend(), g.level)
		ebitenutil.DebugPrintAt(dst, status, 12, int(g.height)-20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close stops every sound, for use after the run loop returns.
func (g *Game) Close() {
	for len(g.stack) > 1 {
		g.pop()
	}
	g.sound.StopGameplay()
}

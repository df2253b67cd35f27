package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/valve-wheel/internal/layout"
)

// pointer merges the left mouse button and the first touch into one
// press/drag/release stream.
type pointer struct {
	x, y     float64
	down     bool
	pressed  bool // went down this frame
	released bool // went up this frame

	touching bool
	touchID  ebiten.TouchID
	touchIDs []ebiten.TouchID
}

func (p *pointer) update() {
	p.pressed, p.released = false, false

	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			// Keep the last position; a lifted touch reports 0,0.
			p.touching, p.down, p.released = false, false, true
			return
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.x, p.y = float64(x), float64(y)
		return
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touchID = p.touchIDs[0]
		p.touching, p.down, p.pressed = true, true, true
		x, y := ebiten.TouchPosition(p.touchID)
		p.x, p.y = float64(x), float64(y)
		return
	}

	x, y := ebiten.CursorPosition()
	p.x, p.y = float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.down, p.pressed = true, true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && p.down:
		p.down, p.released = false, true
	}
}

// button fires when a press that started inside it is released inside it.
type button struct {
	rect  layout.Rect
	armed bool
}

func (b *button) update(p *pointer) bool {
	inside := b.rect.Contains(p.x, p.y)
	if p.pressed && inside {
		b.armed = true
	}
	if p.released {
		clicked := b.armed && inside
		b.armed = false
		return clicked
	}
	return false
}

func (b *button) hovered(p *pointer) bool {
	return b.rect.Contains(p.x, p.y)
}

package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/valve-wheel/internal/layout"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
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

// fade scales a premultiplied colour by opacity a.
func fade(c color.RGBA, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lerpColor(from, to color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	l := func(a, b uint8) uint8 { return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t)) }
	return color.RGBA{R: l(from.R, to.R), G: l(from.G, to.G), B: l(from.B, to.B), A: l(from.A, to.A)}
}

// drawGradient paints three colour stops top to bottom in 2px bands.
func drawGradient(dst *ebiten.Image, stops [3]color.RGBA) {
	b := dst.Bounds()
	w, h := float32(b.Dx()), b.Dy()
	for y := 0; y < h; y += 2 {
		t := float64(y) / float64(h)
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(stops[0], stops[1], t*2)
		} else {
			c = lerpColor(stops[1], stops[2], t*2-1)
		}
		vector.DrawFilledRect(dst, 0, float32(y), w, 2, c, false)
	}
}

var (
	metalFace   = color.RGBA{R: 0x8E, G: 0x93, B: 0x9E, A: 0xFF}
	metalLight  = color.RGBA{R: 0xC4, G: 0xC9, B: 0xD3, A: 0xFF}
	metalDark   = color.RGBA{R: 0x3A, G: 0x3D, B: 0x46, A: 0xFF}
	plateFace   = color.RGBA{R: 0x4B, G: 0x4F, B: 0x5A, A: 0xFF}
	shadowColor = color.RGBA{A: 0xFF}
)

// drawMetal draws a brushed plate with a drop shadow. Buttons are lighter
// than plates.
func drawMetal(dst *ebiten.Image, r layout.Rect, button bool) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	face := plateFace
	if button {
		face = metalFace
	}
	vector.DrawFilledRect(dst, x, y+8, w, h, fade(shadowColor, 0.45), true)
	vector.DrawFilledRect(dst, x, y, w, h, face, true)
	vector.DrawFilledRect(dst, x, y, w, h*0.4, fade(metalLight, 0.35), true)
	vector.StrokeRect(dst, x, y, w, h, 2, metalDark, true)
}

func drawCapsule(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	if w <= 0 {
		return
	}
	r := h / 2
	if w < h {
		vector.DrawFilledCircle(dst, float32(x+w/2), float32(y+r), float32(w/2), c, true)
		return
	}
	vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-h), float32(h), c, true)
	vector.DrawFilledCircle(dst, float32(x+r), float32(y+r), float32(r), c, true)
	vector.DrawFilledCircle(dst, float32(x+w-r), float32(y+r), float32(r), c, true)
}

// drawCross is the close icon.
func drawCross(dst *ebiten.Image, r layout.Rect, c color.RGBA) {
	cx, cy := r.Center()
	d := float32(r.W * 0.3)
	x, y := float32(cx), float32(cy)
	vector.StrokeLine(dst, x-d, y-d, x+d, y+d, 2, c, true)
	vector.StrokeLine(dst, x-d, y+d, x+d, y-d, 2, c, true)
}

// drawGear is the settings icon: a ring with teeth.
func drawGear(dst *ebiten.Image, r layout.Rect, c color.RGBA) {
	cx, cy := r.Center()
	inner := r.W * 0.2
	outer := r.W * 0.32
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(inner), 3, c, true)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		vector.StrokeLine(dst,
			float32(cx+math.Cos(a)*inner), float32(cy+math.Sin(a)*inner),
			float32(cx+math.Cos(a)*outer), float32(cy+math.Sin(a)*outer),
			3, c, true)
	}
}

// drawChevron is the back icon.
func drawChevron(dst *ebiten.Image, r layout.Rect, c color.RGBA) {
	cx, cy := r.Center()
	rad := float32(r.W / 2)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), rad, fade(shadowColor, 0.25), true)
	x, y := float32(cx)+rad*0.1, float32(cy)
	d := rad * 0.4
	vector.StrokeLine(dst, x, y-d, x-d, y, 3, c, true)
	vector.StrokeLine(dst, x-d, y, x, y+d, 3, c, true)
}

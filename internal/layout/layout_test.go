package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/iburimskiy/valve-wheel/internal/config"
)

func TestForGameplayCapsWheel(t *testing.T) {
	g := ForGameplay(1000, 1000)
	if g.WheelSize != config.WheelMaxSize {
		t.Fatalf("wheel = %v, want cap %v", g.WheelSize, config.WheelMaxSize)
	}
	if g.CX != 500 || g.CY != 526 {
		t.Fatalf("centre = %v,%v", g.CX, g.CY)
	}

	small := ForGameplay(300, 600)
	if small.WheelSize != 216 {
		t.Fatalf("wheel = %v, want 216", small.WheelSize)
	}
	if small.CY != 318 {
		t.Fatalf("cy = %v, want 318", small.CY)
	}
}

func TestInWheel(t *testing.T) {
	g := ForGameplay(400, 800)
	r := g.WheelSize / 2
	if !g.InWheel(g.CX, g.CY) || !g.InWheel(g.CX+r, g.CY) {
		t.Fatal("centre and rim should grab the wheel")
	}
	if g.InWheel(g.CX+r+1, g.CY) || g.InWheel(g.CX+r, g.CY+r) {
		t.Fatal("outside the circle grabbed the wheel")
	}
}

func TestRect(t *testing.T) {
	r := RectAt(50, 50, 20, 10)
	if r != (Rect{X: 40, Y: 45, W: 20, H: 10}) {
		t.Fatalf("RectAt = %+v", r)
	}
	if !r.Contains(40, 45) || !r.Contains(60, 55) || r.Contains(61, 50) {
		t.Fatal("Contains edges wrong")
	}
	if x, y := r.Center(); x != 50 || y != 50 {
		t.Fatalf("Center = %v,%v", x, y)
	}
}

func TestBottomPadding(t *testing.T) {
	for h, want := range map[float64]float64{100: 42, 600: 66, 2000: 92} {
		if got := BottomPadding(h); math.Abs(got-want) > 1e-9 {
			t.Errorf("BottomPadding(%v) = %v, want %v", h, got, want)
		}
	}
}

func TestMenuAndSettingsButtonsOnScreen(t *testing.T) {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	screen := Rect{W: w, H: h}
	m := ForMenu(w, h)
	s := ForSettings(w, h)
	for name, r := range map[string]Rect{
		"start": m.Start, "rules": m.Rules, "settings": m.Settings,
		"toggle": s.Toggle, "save": s.Save, "close": s.Close,
	} {
		if !screen.Contains(r.X, r.Y) || !screen.Contains(r.X+r.W, r.Y+r.H) {
			t.Errorf("%s = %+v off screen", name, r)
		}
	}
	if !s.Row.Contains(s.Toggle.Center()) {
		t.Error("toggle is not inside its row")
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	got := Wrap("turn the valve swipe by swipe\n\nreallylongword x", 10, measure)
	want := []string{"turn the", "valve", "swipe by", "swipe", "", "reallylongword", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
}

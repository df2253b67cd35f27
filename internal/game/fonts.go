package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	sans *text.GoTextFaceSource
	bold *text.GoTextFaceSource
	mono *text.GoTextFaceSource
}

func loadFonts() (*fonts, error) {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading sans font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading bold font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading mono font: %w", err)
	}
	return &fonts{sans: sans, bold: bold, mono: mono}, nil
}

func (f *fonts) title(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.sans, Size: size}
}

func (f *fonts) button(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.bold, Size: size}
}

func (f *fonts) body(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.mono, Size: size}
}

// drawText places s with its anchor at (x, y). The anchor is the top edge
// horizontally aligned by align, or the centre when middle is set.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, middle bool, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	if middle {
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

func measure(face text.Face) func(string) float64 {
	return func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}
}

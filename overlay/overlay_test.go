// seehuhn.de/go/stripes - curve-driven scanline stripes for photographs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package overlay

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/stripes/curve"
	"seehuhn.de/go/stripes/scanline"
)

func black(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func TestDrawGuides(t *testing.T) {
	img := black(100, 100)
	c := curve.Default(100, 100)
	m := scanline.Build(c, 100, scanline.PreviewSamples)

	NewPainter().Draw(img, c, m)

	for i, q := range c.Points() {
		got := img.NRGBAAt(int(q.X), int(q.Y))
		if got.R < 220 || got.A != 255 {
			t.Errorf("handle %d at %v: color %v", i, q, got)
		}
	}

	// corners far away from all guides stay black
	for _, p := range []image.Point{{0, 99}, {99, 0}, {99, 40}} {
		if got := img.NRGBAAt(p.X, p.Y); got != (color.NRGBA{A: 255}) {
			t.Errorf("pixel %v: color %v, want black", p, got)
		}
	}
}

func TestCurveDrawn(t *testing.T) {
	img := black(100, 100)
	c := curve.Default(100, 100)
	p := NewPainter()
	p.Style.HandleRadius = 0
	p.Style.MarkerRadius = 0
	p.Style.PolygonWidth = 0
	p.Draw(img, c, nil)

	mid := c.Eval(0.5)
	if got := img.NRGBAAt(int(mid.X), int(mid.Y)); got.R < 128 {
		t.Errorf("curve midpoint %v: color %v", mid, got)
	}
}

func TestEmptyStyle(t *testing.T) {
	img := black(50, 50)
	c := curve.Default(50, 50)
	m := scanline.Build(c, 50, scanline.PreviewSamples)

	p := NewPainter()
	p.Style = Style{}
	p.Draw(img, c, m)

	if !bytes.Equal(img.Pix, black(50, 50).Pix) {
		t.Error("image modified with all guides disabled")
	}
}

func TestMarkers(t *testing.T) {
	img := black(40, 40)
	m := make(scanline.Map, 40)
	for y := 5; y < 35; y++ {
		m[y] = scanline.Entry{X: 10, Valid: true}
	}

	p := NewPainter()
	p.Style = Style{MarkerRadius: 1.5, MarkerColor: color.NRGBA{G: 255, A: 255}}
	p.Draw(img, curve.Cubic{}, m)

	for y := 6; y < 34; y++ {
		if got := img.NRGBAAt(10, y); got.G < 250 {
			t.Errorf("marker at (10, %d): color %v", y, got)
		}
		if got := img.NRGBAAt(20, y); got != (color.NRGBA{A: 255}) {
			t.Errorf("pixel (20, %d) touched: %v", y, got)
		}
	}
	if got := img.NRGBAAt(10, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("row without a marker touched: %v", got)
	}
}

// TestRepeatable checks that the mask is cleared between calls, also when
// the image size changes.
func TestRepeatable(t *testing.T) {
	p := NewPainter()
	draw := func(w, h int) []byte {
		img := black(w, h)
		c := curve.Default(float64(w), float64(h))
		p.Draw(img, c, scanline.Build(c, h, scanline.PreviewSamples))
		return img.Pix
	}

	first := draw(80, 60)
	draw(120, 90)
	draw(30, 20)
	if !bytes.Equal(first, draw(80, 60)) {
		t.Error("second drawing differs from the first")
	}
}

func TestSubImage(t *testing.T) {
	full := black(60, 60)
	sub := full.SubImage(image.Rect(10, 10, 50, 50)).(*image.NRGBA)
	c := curve.Default(40, 40)
	NewPainter().Draw(sub, c, scanline.Build(c, 40, scanline.PreviewSamples))

	for y := range 60 {
		for x := range 60 {
			if image.Pt(x, y).In(sub.Bounds()) {
				continue
			}
			if got := full.NRGBAAt(x, y); got != (color.NRGBA{A: 255}) {
				t.Fatalf("pixel (%d, %d) outside the sub-image touched", x, y)
			}
		}
	}
	// handle P0 lands at (10+6, 10+10)
	if got := full.NRGBAAt(16, 20); got.R < 220 {
		t.Errorf("handle not drawn in sub-image coordinates: %v", got)
	}
}

func BenchmarkDraw(b *testing.B) {
	img := black(1200, 900)
	c := curve.Default(1200, 900)
	m := scanline.Build(c, 900, scanline.PreviewSamples)
	p := NewPainter()
	for b.Loop() {
		p.Draw(img, c, m)
	}
}

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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// collect renders into a dense w×h coverage buffer.
func collect(w, h int) ([]float32, func(y, xMin int, coverage []float32)) {
	buf := make([]float32, w*h)
	emit := func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}
	return buf, emit
}

func total(buf []float32) float64 {
	var s float64
	for _, c := range buf {
		s += float64(c)
	}
	return s
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal y = x/10, so pixel X
// has coverage (2X+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	buf, emit := collect(10, 1)
	r.FillNonZero(triangle.Iter(), emit)

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(buf[x]-want)) > epsilon {
			t.Errorf("pixel %d: coverage %.4f, want %.4f", x, buf[x], want)
		}
	}
}

func TestFillRectangle(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(pt(2, 3)).
		LineTo(pt(12, 3)).
		LineTo(pt(12, 8)).
		LineTo(pt(2, 8)).
		Close()

	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	buf, emit := collect(16, 16)
	r.FillNonZero(square.Iter(), emit)

	for y := range 16 {
		for x := range 16 {
			want := float32(0)
			if x >= 2 && x < 12 && y >= 3 && y < 8 {
				want = 1
			}
			if got := buf[y*16+x]; math.Abs(float64(got-want)) > 1e-6 {
				t.Errorf("pixel (%d, %d): coverage %g, want %g", x, y, got, want)
			}
		}
	}
}

func TestFillClipped(t *testing.T) {
	// a rectangle sticking out on the left; the visible part is 0 <= x < 4
	shape := (&path.Data{}).
		MoveTo(pt(-20, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(4, 2)).
		LineTo(pt(-20, 2)).
		Close()

	r := NewRasteriser(rect.Rect{URx: 8, URy: 2})
	buf, emit := collect(8, 2)
	r.FillNonZero(shape.Iter(), emit)

	if s := total(buf); math.Abs(s-8) > 1e-4 {
		t.Errorf("total coverage %g, want 8", s)
	}
}

func TestFillCTM(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(1, 0)).
		LineTo(pt(1, 1)).
		LineTo(pt(0, 1)).
		Close()

	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	r.CTM = matrix.Matrix{4, 0, 0, 2, 3, 5}
	buf, emit := collect(20, 20)
	r.FillNonZero(square.Iter(), emit)

	if s := total(buf); math.Abs(s-8) > 1e-4 {
		t.Errorf("total coverage %g, want 8", s)
	}
	if buf[5*20+3] < 0.999 || buf[6*20+6] < 0.999 {
		t.Error("transformed square not at (3,5)-(7,7)")
	}
}

func TestStrokeLine(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(pt(10, 10)).
		LineTo(pt(30, 10))

	cases := []struct {
		cap  graphics.LineCapStyle
		want float64 // covered area
	}{
		{graphics.LineCapButt, 20 * 2},
		{graphics.LineCapSquare, 22 * 2},
		{graphics.LineCapRound, 20*2 + math.Pi},
	}
	for _, tc := range cases {
		r := NewRasteriser(rect.Rect{URx: 40, URy: 20})
		r.Width = 2
		r.Cap = tc.cap
		buf, emit := collect(40, 20)
		r.Stroke(line.Iter(), emit)

		if s := total(buf); math.Abs(s-tc.want) > 0.15 {
			t.Errorf("cap %v: covered area %g, want %g", tc.cap, s, tc.want)
		}
	}
}

func TestStrokeCorner(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(pt(5, 5)).
		LineTo(pt(25, 5)).
		LineTo(pt(25, 25))

	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinRound, graphics.LineJoinBevel} {
		r := NewRasteriser(rect.Rect{URx: 32, URy: 32})
		r.Width = 4
		r.Cap = graphics.LineCapButt
		r.Join = join
		buf, emit := collect(32, 32)
		r.Stroke(corner.Iter(), emit)

		for _, c := range buf {
			if c < 0 || c > 1 {
				t.Fatalf("join %v: coverage %g out of range", join, c)
			}
		}
		// two 20×4 rectangles overlapping in a 2×2 square, plus the join
		s := total(buf)
		if s < 2*20*4-4-0.1 || s > 2*20*4 {
			t.Errorf("join %v: covered area %g", join, s)
		}
		// the inside of the corner is covered
		if buf[6*32+24] < 0.999 {
			t.Errorf("join %v: corner pixel not covered", join)
		}
	}
}

func TestFillDisk(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 40, URy: 40})
	buf, emit := collect(40, 40)
	r.FillDisk(pt(20, 20), 14, emit)

	want := math.Pi * 14 * 14
	if s := total(buf); math.Abs(s-want)/want > 0.01 {
		t.Errorf("disk area %g, want %g", s, want)
	}
	if buf[20*40+20] < 0.999 {
		t.Errorf("disk centre coverage %g", buf[20*40+20])
	}
}

func BenchmarkStrokeCurve(b *testing.B) {
	curve := (&path.Data{}).
		MoveTo(pt(180, 300)).
		CubeTo(pt(900, 180), pt(300, 1020), pt(1020, 900))
	r := NewRasteriser(rect.Rect{URx: 1200, URy: 1200})
	r.Width = 2
	emit := func(y, xMin int, coverage []float32) {}
	for b.Loop() {
		r.Stroke(curve.Iter(), emit)
	}
}

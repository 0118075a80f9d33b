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

// Package curve holds the single cubic Bézier curve which the user edits
// on top of a photograph.
//
// The curve lives in whatever coordinate space its points were given in.
// The preview canvas and the full-resolution image use different spaces;
// [Cubic.Scaled] converts between them.
package curve

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// HitRadius is the default pick distance for control points, in preview
// units. It is large enough to grab a point with a finger.
const HitRadius = 22.0

// Cubic is a cubic Bézier curve. P0 is the start point, P3 the end point,
// and P1 and P2 are the control handles.
type Cubic struct {
	P0, P1, P2, P3 vec.Vec2
}

// Default returns the initial curve layout for a canvas of the given size.
// The points sit at fixed fractions of the canvas, so the result is the
// same S-shaped curve for every image.
func Default(width, height float64) Cubic {
	return Cubic{
		P0: vec.Vec2{X: 0.15 * width, Y: 0.25 * height},
		P1: vec.Vec2{X: 0.75 * width, Y: 0.15 * height},
		P2: vec.Vec2{X: 0.25 * width, Y: 0.85 * height},
		P3: vec.Vec2{X: 0.85 * width, Y: 0.75 * height},
	}
}

// Reset replaces all four points by the default layout for the given
// canvas size.
func (c *Cubic) Reset(width, height float64) {
	*c = Default(width, height)
}

// Points returns the control points in parametrisation order.
func (c Cubic) Points() [4]vec.Vec2 {
	return [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}
}

// Point returns control point i.  The index must be in the range 0-3.
func (c Cubic) Point(i int) vec.Vec2 {
	return c.Points()[i]
}

// HitTest returns the index of the first control point whose distance to p
// is at most radius.  Points are checked in index order, so when several
// points are in range the lowest index wins.
func (c Cubic) HitTest(p vec.Vec2, radius float64) (int, bool) {
	for i, q := range c.Points() {
		if q.Sub(p).Length() <= radius {
			return i, true
		}
	}
	return -1, false
}

// MovePoint replaces control point i by p, clamped to the bounds.
// Out-of-range indices are ignored.
func (c *Cubic) MovePoint(i int, p vec.Vec2, bounds rect.Rect) {
	p.X = min(max(p.X, bounds.LLx), bounds.URx)
	p.Y = min(max(p.Y, bounds.LLy), bounds.URy)

	switch i {
	case 0:
		c.P0 = p
	case 1:
		c.P1 = p
	case 2:
		c.P2 = p
	case 3:
		c.P3 = p
	}
}

// Scaled returns a copy of the curve with all x coordinates multiplied by
// sx and all y coordinates multiplied by sy.
func (c Cubic) Scaled(sx, sy float64) Cubic {
	return c.Transform(matrix.Scale(sx, sy))
}

// Transform applies the affine map M to all four control points.
// Bézier curves are affine invariant, so this transforms the whole curve.
func (c Cubic) Transform(M matrix.Matrix) Cubic {
	apply := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: M[0]*p.X + M[2]*p.Y + M[4],
			Y: M[1]*p.X + M[3]*p.Y + M[5],
		}
	}
	return Cubic{
		P0: apply(c.P0),
		P1: apply(c.P1),
		P2: apply(c.P2),
		P3: apply(c.P3),
	}
}

// Eval returns the point on the curve at parameter t.
// The x and y coordinates are blended independently with the cubic
// Bernstein polynomials.
func (c Cubic) Eval(t float64) vec.Vec2 {
	return vec.Vec2{
		X: bernstein(c.P0.X, c.P1.X, c.P2.X, c.P3.X, t),
		Y: bernstein(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, t),
	}
}

// bernstein evaluates
// B(t) = (1-t)³a + 3(1-t)²tb + 3(1-t)t²c + t³d
// using de Casteljau's algorithm.  Unlike the expanded polynomial, this
// is exact at both end points and when all four coefficients are equal,
// so a vertical curve at x = 50 maps to column 50 and not to 49.
func bernstein(a, b, c, d, t float64) float64 {
	ab := lerp(a, b, t)
	bc := lerp(b, c, t)
	cd := lerp(c, d, t)
	abc := lerp(ab, bc, t)
	bcd := lerp(bc, cd, t)
	return lerp(abc, bcd, t)
}

// lerp interpolates from whichever end is closer, so that t = 0 gives a
// and t = 1 gives b without rounding.  The conversions keep the compiler
// from fusing the multiply and add, so that all platforms agree on the
// scanline maps.
func lerp(a, b, t float64) float64 {
	if t < 0.5 {
		return a + float64(t*(b-a))
	}
	return b - float64((1-t)*(b-a))
}

// Path returns the curve as a single open subpath.
func (c Cubic) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(c.P0).
		CubeTo(c.P1, c.P2, c.P3)
}

// Polygon returns the open control polygon P0-P1-P2-P3.
func (c Cubic) Polygon() *path.Data {
	return (&path.Data{}).
		MoveTo(c.P0).
		LineTo(c.P1).
		LineTo(c.P2).
		LineTo(c.P3)
}

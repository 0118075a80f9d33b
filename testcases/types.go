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

// Package testcases contains named curve scenarios, shared by the tests
// of several packages and by the tools which generate reference data.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stripes/curve"
)

// TestCase defines a single curve scenario.
type TestCase struct {
	Name   string      // lowercase a-z and _ only
	Curve  curve.Cubic // in pixel coordinates, y pointing down
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
	Stroke Stroke      // how the curve is drawn in reference images
}

// Stroke describes how the curve is outlined.
type Stroke struct {
	Width float64                // line width (>0)
	Cap   graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join  graphics.LineJoinStyle // LineJoinRound, LineJoinBevel
}

// guide is the stroke used for the curve in the preview.
var guide = Stroke{
	Width: 2,
	Cap:   graphics.LineCapRound,
	Join:  graphics.LineJoinRound,
}

// Path returns the outline of the test case.  For degenerate curves,
// where all control points coincide, the path has no extent.
func (tc TestCase) Path() *path.Data {
	return tc.Curve.Path()
}

// cubic is a helper to create a curve from eight coordinates.
func cubic(x0, y0, x1, y1, x2, y2, x3, y3 float64) curve.Cubic {
	return curve.Cubic{
		P0: vec.Vec2{X: x0, Y: y0},
		P1: vec.Vec2{X: x1, Y: y1},
		P2: vec.Vec2{X: x2, Y: y2},
		P3: vec.Vec2{X: x3, Y: y3},
	}
}

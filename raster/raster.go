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

// Package raster converts paths to anti-aliased pixel coverage.
//
// This is used to draw the editing guides (control polygon, curve, handles
// and sample markers) on top of the preview image.  The stripes themselves
// are never anti-aliased and do not go through this package.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device coordinates, stored with y0 < y1.
type edge struct {
	x0, y0 float64 // top end point
	x1, y1 float64 // bottom end point
	dxdy   float64 // (x1-x0)/(y1-y0)
	sign   float32 // +1 if the original segment pointed down, -1 if up
}

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts paths to pixel coverage values: the fraction of each
// pixel covered by the filled or stroked path, between 0 and 1.
// Create one instance and reuse it; internal buffers grow as needed but
// never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output in device coordinates.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	// Must be positive.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style for the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the style for corners.  Miter joins are drawn as bevels.
	Join graphics.LineJoinStyle

	edges     []edge
	activeIdx []int
	cover     []float32 // signed vertical extent of edges per pixel; reused as output
	area      []float32 // cover weighted by the horizontal position in the pixel

	// stroke construction
	subpaths [][]vec.Vec2 // flattened subpaths in user space
	closed   []bool       // whether each subpath is closed
	poly     []vec.Vec2   // scratch polygon
}

// NewRasteriser returns a Rasteriser for the given clip rectangle with an
// identity CTM and a 1-unit stroke with round caps and joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapRound,
		Join:     graphics.LineJoinRound,
	}
}

// FillNonZero fills p using the nonzero winding rule.  Open subpaths are
// closed implicitly.  The emit callback receives the coverage of one row
// at a time, starting at column xMin; the slice is only valid during the
// call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.scan(emit)
}

// device maps a point from user space to device space.
func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// deviceScale returns the geometric mean of the CTM's scale factors.
// This is used to choose tessellation density for round shapes.
func (r *Rasteriser) deviceScale() float64 {
	return math.Sqrt(math.Abs(r.CTM[0]*r.CTM[3] - r.CTM[1]*r.CTM[2]))
}

// addEdge adds the segment a-b, given in user space, to the edge list.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	r.addDeviceEdge(r.device(a), r.device(b))
}

func (r *Rasteriser) addDeviceEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	var sign float32 = 1
	if dy < 0 {
		a, b = b, a
		sign = -1
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		sign: sign,
	})
}

// flattenQuadratic approximates a quadratic Bézier by line segments and
// calls emit for each of them.  All points are in user space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// deviation from the chord: (P0 - 2P1 + P2) / 4
	dev := r.device(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Sub(r.device(vec.Vec2{}))

	n := 1
	if l := dev.Length(); l > r.Flatness {
		n = int(math.Ceil(math.Sqrt(l / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		q := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier by line segments and calls emit
// for each of them.  The number of segments is given by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	origin := r.device(vec.Vec2{})
	d1 := r.device(p0.Sub(p1.Mul(2)).Add(p2)).Sub(origin)
	d2 := r.device(p1.Sub(p2.Mul(2)).Add(p3)).Sub(origin)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		q := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, q)
		prev = q
	}
}

// scan rasterises the current edge list with an active edge list and
// calls emit for every row with non-zero coverage.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := int(r.Clip.LLx)
	xMax := int(r.Clip.URx)
	yMin := int(r.Clip.LLy)
	yMax := int(r.Clip.URy)

	top, bottom := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		top = min(top, r.edges[i].y0)
		bottom = max(bottom, r.edges[i].y1)
	}
	yMin = max(yMin, int(math.Floor(top)))
	yMax = min(yMax, int(math.Floor(bottom))+1)
	width := xMax - xMin
	if width <= 0 || yMin >= yMax {
		return
	}

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.activeIdx = r.activeIdx[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].y0 < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.y1 <= yf {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Coverage accumulation:
//
// Every edge piece crossing a pixel adds
//
//	cover = sign * dy
//	area  = cover * (1 - xFrac)
//
// where xFrac is the horizontal position of the piece inside the pixel.
// Integrating from left to right, a pixel's signed coverage is the cover
// accumulated from all pixels to its left plus its own area value.

// accumulate adds the part of e inside row y to the cover and area
// buffers.  Pieces left of the clip region are folded into the first
// column, pieces to the right are dropped.  The return value reports
// whether anything was added.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.y0)
	yBot := min(float64(y+1), e.y1)
	if yBot <= yTop {
		return false
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	left, right := min(xa, xb), max(xa, xb)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	if pixLeft >= xMax {
		return false
	}
	if pixLeft == pixRight {
		r.addPiece(pixLeft, e.sign*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	// the edge crosses several pixel columns
	dydx := 1 / e.dxdy
	pix := pixLeft
	if pixLeft < xMin {
		// fold the part left of the clip region into one piece
		yc := e.y0 + dydx*(float64(xMin)-e.x0)
		lo, hi := yTop, min(yc, yBot)
		if xa > xb {
			lo, hi = max(yc, yTop), yBot
		}
		if hi > lo {
			r.addPiece(xMin-1, e.sign*float32(hi-lo), 0, xMin, xMax)
		}
		pix = xMin
	}
	for ; pix <= pixRight && pix < xMax; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.addPiece(pix, e.sign*float32(hi-lo), e.xAt((lo+hi)/2), xMin, xMax)
	}
	return true
}

func (r *Rasteriser) addPiece(pix int, cover float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += cover
		r.area[0] += cover
	case pix < xMax:
		i := pix - xMin
		xFrac := float32(xMid - float64(pix))
		r.cover[i] += cover
		r.area[i] += cover * (1 - xFrac)
	}
}

// integrateNonZero turns accumulated cover and area values into coverage
// using the nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil
// if everything is zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)

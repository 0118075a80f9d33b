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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap and Join.
// The emit callback is used as for [Rasteriser.FillNonZero].
//
// The outline is built as a union of simple polygons: one rectangle per
// flattened segment, plus disks or bevel triangles at the corners and the
// caps at the ends.  All polygons are oriented the same way, so that the
// nonzero rule merges overlapping pieces without seams.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.flattenSubpaths(p)
	r.edges = r.edges[:0]

	hw := r.Width / 2
	for i, pts := range r.subpaths {
		closed := r.closed[i]

		if len(pts) == 1 {
			// a subpath without extent only shows up with round caps
			if r.Cap == graphics.LineCapRound {
				r.addDisk(pts[0], hw)
			}
			continue
		}

		for j := 1; j < len(pts); j++ {
			a, b := pts[j-1], pts[j]
			t := b.Sub(a).Mul(1 / b.Sub(a).Length())
			if r.Cap == graphics.LineCapSquare && !closed {
				if j == 1 {
					a = a.Sub(t.Mul(hw))
				}
				if j == len(pts)-1 {
					b = b.Add(t.Mul(hw))
				}
			}
			n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
			r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
		}

		// corners
		last := len(pts) - 1
		for j := 1; j < last; j++ {
			r.addJoin(pts[j-1], pts[j], pts[j+1], hw)
		}
		if closed && len(pts) > 2 {
			r.addJoin(pts[last-1], pts[last], pts[1], hw)
		}

		if !closed && r.Cap == graphics.LineCapRound {
			r.addDisk(pts[0], hw)
			r.addDisk(pts[last], hw)
		}
	}

	r.scan(emit)
}

// FillDisk fills a circle of radius rad around center, both in user space.
func (r *Rasteriser) FillDisk(center vec.Vec2, rad float64, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.addDisk(center, rad)
	r.scan(emit)
}

// flattenSubpaths splits p into polylines in user space.
// Consecutive duplicate points are dropped; a closed subpath ends with a
// copy of its start point.
func (r *Rasteriser) flattenSubpaths(p path.Path) {
	r.subpaths = r.subpaths[:0]
	r.closed = r.closed[:0]

	var cur []vec.Vec2
	inSubpath := false
	add := func(_, b vec.Vec2) {
		if b.Sub(cur[len(cur)-1]).Length() >= zeroLengthThreshold {
			cur = append(cur, b)
		}
	}
	finish := func(closed bool) {
		if inSubpath {
			r.subpaths = append(r.subpaths, cur)
			r.closed = append(r.closed, closed)
		}
		cur = nil
		inSubpath = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = []vec.Vec2{pts[0]}
			inSubpath = true
		case path.CmdLineTo:
			if inSubpath {
				add(vec.Vec2{}, pts[0])
			}
		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(cur[len(cur)-1], pts[0], pts[1], add)
			}
		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(cur[len(cur)-1], pts[0], pts[1], pts[2], add)
			}
		case path.CmdClose:
			if inSubpath {
				add(vec.Vec2{}, cur[0])
				finish(true)
			}
		}
	}
	finish(false)
}

// addJoin adds the corner geometry at b, between segments a-b and b-c.
func (r *Rasteriser) addJoin(a, b, c vec.Vec2, hw float64) {
	if r.Join == graphics.LineJoinRound {
		r.addDisk(b, hw)
		return
	}

	t1 := b.Sub(a).Mul(1 / b.Sub(a).Length())
	t2 := c.Sub(b).Mul(1 / c.Sub(b).Length())
	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(hw)
	n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(hw)
	// Only the outer side of the corner matters; the inner triangle is
	// covered by the segment rectangles anyway.
	r.addPolygon(b, b.Add(n1), b.Add(n2))
	r.addPolygon(b, b.Sub(n1), b.Sub(n2))
}

// addDisk adds a polygonal approximation of a circle, with enough corners
// to stay within the flatness tolerance in device space.
func (r *Rasteriser) addDisk(center vec.Vec2, rad float64) {
	devRad := rad * r.deviceScale()
	if devRad <= 0 {
		return
	}

	// The polygon is inscribed, so the area error is one-sided.  Use a
	// quarter of the flatness for the sagitta to keep disks round.
	n := 16
	if tol := r.Flatness / 4; devRad > tol {
		step := 2 * math.Acos(1-tol/devRad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: center.X + rad*math.Cos(phi),
			Y: center.Y + rad*math.Sin(phi),
		})
	}
	r.addPolygon(r.poly...)
}

// addPolygon adds the closed polygon through pts, given in user space.
// The polygon is reversed if necessary, so that all polygons added by
// Stroke have positive orientation in device space.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	if len(pts) < 3 {
		return
	}

	// shoelace formula, in device space
	var area2 float64
	prev := r.device(pts[len(pts)-1])
	for _, p := range pts {
		q := r.device(p)
		area2 += prev.X*q.Y - q.X*prev.Y
		prev = q
	}
	if area2 == 0 {
		return
	}

	n := len(pts)
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		if area2 < 0 {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}

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

// Package overlay draws the editing guides on top of the preview image:
// the sampling marker of every valid row, the control polygon, the curve,
// and a round handle for each control point.
package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stripes/curve"
	"seehuhn.de/go/stripes/raster"
	"seehuhn.de/go/stripes/scanline"
)

// Style describes the look of the guides.  Sizes are in preview pixels.
type Style struct {
	PolygonWidth float64
	PolygonColor color.NRGBA

	CurveWidth float64
	CurveColor color.NRGBA

	HandleRadius float64
	HandleColor  color.NRGBA

	// MarkerRadius is the radius of the dot drawn at each row's sampling
	// position.  Zero disables the markers.
	MarkerRadius float64
	MarkerColor  color.NRGBA
}

// DefaultStyle uses white guides which stay visible on most photographs.
var DefaultStyle = Style{
	PolygonWidth: 1,
	PolygonColor: color.NRGBA{R: 255, G: 255, B: 255, A: 90},
	CurveWidth:   2,
	CurveColor:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	HandleRadius: 14,
	HandleColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 220},
	MarkerRadius: 1.5,
	MarkerColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
}

// Painter draws guides.  It keeps a rasteriser and a coverage mask
// between calls, so that redrawing on every pointer move does not
// allocate.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	Style Style

	r     *raster.Rasteriser
	mask  *image.Alpha
	dirty image.Rectangle
}

// NewPainter returns a Painter using [DefaultStyle].
func NewPainter() *Painter {
	return &Painter{
		Style: DefaultStyle,
		r:     raster.NewRasteriser(rect.Rect{}),
	}
}

// Draw paints the guides for c and m onto dst.
// The map m must be the scanline map of c for the height of dst.
func (p *Painter) Draw(dst *image.NRGBA, c curve.Cubic, m scanline.Map) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	p.prepare(b)
	s := &p.Style

	if s.MarkerRadius > 0 {
		markers := &path.Data{}
		for y, e := range m {
			if e.Valid {
				addCircle(markers, vec.Vec2{X: float64(e.X), Y: float64(y)}, s.MarkerRadius)
			}
		}
		p.r.FillNonZero(markers.Iter(), p.emit)
		p.flush(dst, s.MarkerColor)
	}

	if s.PolygonWidth > 0 {
		p.r.Width = s.PolygonWidth
		p.r.Cap = graphics.LineCapButt
		p.r.Join = graphics.LineJoinBevel
		p.r.Stroke(c.Polygon().Iter(), p.emit)
		p.flush(dst, s.PolygonColor)
	}

	if s.CurveWidth > 0 {
		p.r.Width = s.CurveWidth
		p.r.Cap = graphics.LineCapRound
		p.r.Join = graphics.LineJoinRound
		p.r.Stroke(c.Path().Iter(), p.emit)
		p.flush(dst, s.CurveColor)
	}

	if s.HandleRadius > 0 {
		// overlapping handles are blended twice, so they stay
		// distinguishable
		for _, q := range c.Points() {
			p.r.FillDisk(q, s.HandleRadius, p.emit)
			p.flush(dst, s.HandleColor)
		}
	}
}

// prepare sizes the mask and the clip region for an image with bounds b.
func (p *Painter) prepare(b image.Rectangle) {
	if p.r == nil {
		p.r = raster.NewRasteriser(rect.Rect{})
	}
	if p.mask == nil || p.mask.Bounds().Size() != b.Size() {
		p.mask = image.NewAlpha(image.Rectangle{Max: b.Size()})
	}
	p.r.Clip = rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
	p.dirty = image.Rectangle{}
}

// emit stores one row of coverage in the mask.
func (p *Painter) emit(y, xMin int, coverage []float32) {
	i := p.mask.PixOffset(xMin, y)
	row := p.mask.Pix[i : i+len(coverage)]
	for j, c := range coverage {
		row[j] = uint8(c*255 + 0.5)
	}
	p.dirty = p.dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
}

// flush composites col through the mask onto dst and clears the mask.
func (p *Painter) flush(dst *image.NRGBA, col color.NRGBA) {
	if p.dirty.Empty() {
		return
	}
	origin := dst.Bounds().Min
	draw.DrawMask(dst, p.dirty.Add(origin), image.NewUniform(col), image.Point{},
		p.mask, p.dirty.Min, draw.Over)

	for y := p.dirty.Min.Y; y < p.dirty.Max.Y; y++ {
		i := p.mask.PixOffset(p.dirty.Min.X, y)
		clear(p.mask.Pix[i : i+p.dirty.Dx()])
	}
	p.dirty = image.Rectangle{}
}

// kappa is the control point distance for a cubic Bézier approximation
// of a quarter circle.
const kappa = 0.5522847498307936

// addCircle appends a closed circle to d.
func addCircle(d *path.Data, c vec.Vec2, r float64) {
	k := r * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	d.MoveTo(pt(r, 0)).
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)).
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).
		Close()
}

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

// Package stripe paints the stripe effect: every row for which a scanline
// map has a valid entry is replaced by a single solid color, taken from
// the source image at the mapped x position.
package stripe

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"seehuhn.de/go/stripes/scanline"
)

// Apply returns a copy of src with the stripe effect applied.
// Rows without a valid map entry are copied unchanged.
// The result always has its origin at (0, 0).
func Apply(src image.Image, m scanline.Map) *image.NRGBA {
	dst := imaging.Clone(src)
	Render(dst, src, m)
	return dst
}

// Render paints the stripes for m into dst.  The destination must have
// the same size as src; row y of the map refers to row y of both images,
// counted from the top edge of their bounds.
//
// Rows whose map entry is invalid are left as they are in dst.  For valid
// rows, the x position is clamped to the width of src and the whole row
// of dst is filled with the color of src at that position.
func Render(dst draw.Image, src image.Image, m scanline.Map) {
	sb := src.Bounds()
	db := dst.Bounds()
	width := min(sb.Dx(), db.Dx())
	height := min(sb.Dy(), db.Dy(), len(m))
	if width <= 0 {
		return
	}

	dstN, dstIsNRGBA := dst.(*image.NRGBA)
	srcN, srcIsNRGBA := src.(*image.NRGBA)
	fast := dstIsNRGBA && srcIsNRGBA

	for y := range height {
		e := m[y]
		if !e.Valid {
			continue
		}
		x := min(max(e.X, 0), sb.Dx()-1)

		if fast {
			fillRowNRGBA(dstN, srcN, x, y, width)
			continue
		}

		c := src.At(sb.Min.X+x, sb.Min.Y+y)
		for i := range width {
			dst.Set(db.Min.X+i, db.Min.Y+y, c)
		}
	}
}

// fillRowNRGBA is the fast path of Render for NRGBA images.
// It copies the four bytes of the sample pixel across the row.
func fillRowNRGBA(dst, src *image.NRGBA, x, y, width int) {
	sb := src.Bounds()
	db := dst.Bounds()

	si := src.PixOffset(sb.Min.X+x, sb.Min.Y+y)
	var px [4]uint8
	copy(px[:], src.Pix[si:si+4])

	di := dst.PixOffset(db.Min.X, db.Min.Y+y)
	row := dst.Pix[di : di+4*width]
	for i := 0; i < len(row); i += 4 {
		copy(row[i:i+4], px[:])
	}
}

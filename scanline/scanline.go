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

// Package scanline maps a cubic Bézier curve to one horizontal sampling
// position per pixel row.
//
// The curve is not inverted analytically.  Instead it is evaluated at
// uniformly spaced parameter values and each sample is assigned to the row
// it falls into.  When several samples fall into the same row, the one
// closest to the top edge of the row wins.  A single pass then closes
// isolated one-row gaps.  The error of this approximation is bounded by
// the spacing of the samples along the curve divided by the local dy/dt.
package scanline

import (
	"math"
	"slices"

	"seehuhn.de/go/stripes/curve"
)

// Sample counts used by the two rendering paths.  The preview only needs
// to look smooth while dragging; the export oversamples heavily because
// the full-resolution image can be much taller than the preview.
const (
	PreviewSamples = 3500
	ExportSamples  = 6000
)

// Entry is the mapping result for a single row.
// If Valid is false, the curve does not cross the row and X is meaningless.
type Entry struct {
	X     int
	Valid bool
}

// Map holds one entry per row, indexed by the row's y coordinate.
type Map []Entry

// ValidCount returns the number of rows with a valid sampling position.
func (m Map) ValidCount() int {
	n := 0
	for _, e := range m {
		if e.Valid {
			n++
		}
	}
	return n
}

// Mapper builds scanline maps.  The zero value is ready to use.
// The internal distance buffer grows as needed but never shrinks, so
// repeated builds of same-sized maps do not allocate apart from the
// returned map.
//
// A Mapper is not safe for concurrent use.
type Mapper struct {
	bestDist []float64 // per-row distance of the winning sample
}

// Build returns the scanline map of c for a raster with the given number
// of rows, using samples+1 evenly spaced parameter values in [0, 1].
// A sample count below 1 is treated as 1.
func Build(c curve.Cubic, height, samples int) Map {
	var mm Mapper
	return mm.Build(c, height, samples)
}

// Build is like the package-level [Build], but reuses the Mapper's
// internal buffers.
func (mm *Mapper) Build(c curve.Cubic, height, samples int) Map {
	if height <= 0 {
		return Map{}
	}
	samples = max(samples, 1)

	m := make(Map, height)
	mm.bestDist = slices.Grow(mm.bestDist[:0], height)[:height]
	for i := range mm.bestDist {
		mm.bestDist[i] = math.Inf(1)
	}

	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		p := c.Eval(t)

		yy := math.Floor(p.Y)
		if !(yy >= 0 && yy < float64(height)) {
			continue
		}
		row := int(yy)

		d := math.Abs(p.Y - yy)
		if d < mm.bestDist[row] {
			mm.bestDist[row] = d
			m[row] = Entry{X: int(math.Floor(p.X)), Valid: true}
		}
	}

	FillGaps(m)
	return m
}

// FillGaps makes a single pass over the interior rows of m.  Every invalid
// row whose two direct neighbours are both valid gets the mean of the
// neighbours' x values, rounded down.
//
// The pass is not repeated: in a gap of two or more rows, the rows are
// examined against the neighbours as they are at that moment, so wider
// gaps stay at least partly invalid.
func FillGaps(m Map) {
	for y := 1; y < len(m)-1; y++ {
		if m[y].Valid || !m[y-1].Valid || !m[y+1].Valid {
			continue
		}
		sum := m[y-1].X + m[y+1].X
		m[y] = Entry{X: int(math.Floor(float64(sum) * 0.5)), Valid: true}
	}
}

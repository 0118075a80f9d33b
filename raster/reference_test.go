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
	"errors"
	"fmt"
	"image"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/stripes/testcases"
)

// TestAgainstReference compares the curve outlines with images rendered
// by Ghostscript.  The reference images are created by testcases/genpdf;
// cases without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				ref, err := loadReference(filepath.Join("testdata", "reference", name+".png"))
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf to create one")
				} else if err != nil {
					t.Fatal(err)
				}

				got := strokeCase(tc)
				if ref.Rect != got.Rect {
					t.Fatalf("reference is %v, want %v", ref.Rect, got.Rect)
				}
				if err := checkCoverage(ref, got); err != nil {
					t.Error(err)
					if err := saveDiff(filepath.Join("debug", name+".png"), ref, got); err != nil {
						t.Log(err)
					}
				}
			})
		}
	}
}

// strokeCase strokes the curve of a test case.  Gray levels give the
// coverage of each pixel.
func strokeCase(tc testcases.TestCase) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	r := NewRasteriser(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	r.Width = tc.Stroke.Width
	r.Cap = tc.Stroke.Cap
	r.Join = tc.Stroke.Join
	r.Stroke(tc.Path().Iter(), func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(max(0, min(255, int(c*256))))
		}
	})
	return img
}

func loadReference(path string) (*image.Gray, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	img := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Rect, src, b.Min, draw.Src)
	return img, nil
}

// checkCoverage allows differences along the edges, where the reference
// is supersampled instead of using exact coverage.  Away from the edges
// both images must agree.
func checkCoverage(want, got *image.Gray) error {
	diffs := make([]int, len(want.Pix))
	for i, w := range want.Pix {
		diffs[i] = absDiff(w, got.Pix[i])
	}
	slices.Sort(diffs)
	quantile := func(q float64) int {
		return diffs[int(q*float64(len(diffs)-1)+0.5)]
	}

	limits := []struct {
		q   float64
		max int
	}{
		{0.80, 0},
		{0.95, 63},
		{0.99, 127},
	}
	var errs []error
	for _, l := range limits {
		if d := quantile(l.q); d > l.max {
			errs = append(errs, fmt.Errorf("%.0f%% quantile of the difference is %d > %d",
				100*l.q, d, l.max))
		}
	}
	return errors.Join(errs...)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// saveDiff stores got, the difference and want next to each other.
// In the middle panel, missing coverage is green and excess coverage red.
func saveDiff(path string, want, got *image.Gray) error {
	w, h := want.Rect.Dx(), want.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, 3*w, h))
	for y := range h {
		row := out.Pix[y*out.Stride:]
		for x := range w {
			g, e := got.GrayAt(x, y).Y, want.GrayAt(x, y).Y
			var diff [3]uint8
			if e > g {
				diff[1] = e - g
			} else {
				diff[0] = g - e
			}
			copy(row[4*x:], []uint8{g, g, g, 255})
			copy(row[4*(w+x):], []uint8{diff[0], diff[1], 0, 255})
			copy(row[4*(2*w+x):], []uint8{e, e, e, 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return imaging.Save(out, path)
}

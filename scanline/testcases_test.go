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

package scanline

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/stripes/testcases"
)

// TestHull checks that every column lies within the x range of the control
// points, since the curve stays inside their convex hull.
func TestHull(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				xMin, xMax := math.Inf(1), math.Inf(-1)
				for _, p := range tc.Curve.Points() {
					xMin = min(xMin, p.X)
					xMax = max(xMax, p.X)
				}
				lo, hi := int(math.Floor(xMin)), int(math.Floor(xMax))

				for _, samples := range []int{PreviewSamples, ExportSamples} {
					m := Build(tc.Curve, tc.Height, samples)
					if len(m) != tc.Height {
						t.Fatalf("%d samples: len = %d, want %d", samples, len(m), tc.Height)
					}
					for y, e := range m {
						if e.Valid && (e.X < lo || e.X > hi) {
							t.Errorf("%d samples: row %d: x = %d outside [%d, %d]",
								samples, y, e.X, lo, hi)
						}
					}
				}
			})
		}
	}
}

func TestOutsideCase(t *testing.T) {
	for _, tc := range testcases.All["bounds"] {
		if tc.Name != "outside" {
			continue
		}
		if n := Build(tc.Curve, tc.Height, ExportSamples).ValidCount(); n != 0 {
			t.Errorf("%d valid rows for a curve above the image", n)
		}
	}
}

// TestGolden compares against the maps written by testcases/export.
func TestGolden(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "testcases.json"))
	if err != nil {
		t.Fatal(err)
	}

	var golden struct {
		TestCases []struct {
			Name    string       `json:"name"`
			Height  int          `json:"height"`
			Points  [][2]float64 `json:"points"`
			Preview []*int       `json:"preview"`
			Export  []*int       `json:"export"`
		} `json:"testcases"`
	}
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatal(err)
	}
	type entry struct {
		height int
		points [][2]float64
		maps   [2][]*int
	}
	want := make(map[string]entry)
	for _, g := range golden.TestCases {
		want[g.Name] = entry{g.Height, g.Points, [2][]*int{g.Preview, g.Export}}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, ok := want[name]
				if !ok {
					t.Fatal("missing from testdata/testcases.json, run testcases/export")
				}
				var points [][2]float64
				for _, p := range tc.Curve.Points() {
					points = append(points, [2]float64{p.X, p.Y})
				}
				if w.height != tc.Height || !cmp.Equal(w.points, points) {
					t.Fatal("test case changed, run testcases/export")
				}

				got := [2][]*int{
					columns(Build(tc.Curve, tc.Height, PreviewSamples)),
					columns(Build(tc.Curve, tc.Height, ExportSamples)),
				}
				if d := cmp.Diff(w.maps, got); d != "" {
					t.Errorf("map differs (-want +got):\n%s", d)
				}
			})
		}
	}
}

func columns(m Map) []*int {
	res := make([]*int, len(m))
	for y, e := range m {
		if e.Valid {
			res[y] = &e.X
		}
	}
	return res
}

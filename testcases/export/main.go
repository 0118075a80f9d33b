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

// Command export writes the test cases, together with their scanline maps,
// to JSON.  The scanline tests compare against this file, so it must only
// be regenerated after intentional changes to the mapping.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/stripes/scanline"
	"seehuhn.de/go/stripes/testcases"
)

const outFile = "scanline/testdata/testcases.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("scanline/testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Points  [][2]float64 `json:"points"`
	Preview []*int       `json:"preview"`
	Export  []*int       `json:"export"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, p := range tc.Curve.Points() {
		jtc.Points = append(jtc.Points, [2]float64{p.X, p.Y})
	}
	jtc.Preview = mapToJSON(scanline.Build(tc.Curve, tc.Height, scanline.PreviewSamples))
	jtc.Export = mapToJSON(scanline.Build(tc.Curve, tc.Height, scanline.ExportSamples))
	return jtc
}

// mapToJSON lists the column of every row, using null for invalid rows.
func mapToJSON(m scanline.Map) []*int {
	res := make([]*int, len(m))
	for y, e := range m {
		if e.Valid {
			res[y] = &e.X
		}
	}
	return res
}

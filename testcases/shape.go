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

package testcases

import "seehuhn.de/go/stripes/curve"

var shapeCases = []TestCase{
	{
		Name:   "default",
		Curve:  curve.Default(96, 64),
		Width:  96,
		Height: 64,
		Stroke: guide,
	},
	{
		Name:   "default_portrait",
		Curve:  curve.Default(64, 96),
		Width:  64,
		Height: 96,
		Stroke: guide,
	},
	{
		Name:   "vertical",
		Curve:  cubic(32, 0, 32, 0, 32, 64, 32, 64),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		Name:   "diagonal",
		Curve:  cubic(4, 4, 24, 24, 40, 40, 60, 60),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// the y coordinate turns back twice, rows are hit three times
		Name:   "s_curve",
		Curve:  cubic(8, 8, 56, 80, 8, -16, 56, 56),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		Name:   "loop",
		Curve:  cubic(8, 48, 72, 0, -8, 0, 56, 48),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		Name:   "cusp",
		Curve:  cubic(8, 56, 56, 8, 8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// nearly horizontal: only a few rows are valid
		Name:   "flat",
		Curve:  cubic(4, 30, 24, 33, 40, 29, 60, 32),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// steep and fast: consecutive samples skip rows at low sample
		// counts
		Name:   "steep",
		Curve:  cubic(10, 0, 30, 1000, 30, -900, 50, 100),
		Width:  64,
		Height: 100,
		Stroke: guide,
	},
}

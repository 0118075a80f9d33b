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

var boundsCases = []TestCase{
	{
		Name:   "outside",
		Curve:  cubic(8, -40, 24, -30, 40, -20, 56, -10),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// enters at the top, leaves through the bottom
		Name:   "crossing",
		Curve:  cubic(16, -20, 48, 20, 16, 44, 48, 84),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// x runs past both sides of the image, which clamps the sample
		Name:   "wide",
		Curve:  cubic(-40, 4, 100, 20, -40, 40, 104, 60),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// a single point; only a round cap is visible
		Name:   "point",
		Curve:  cubic(20.5, 20.5, 20.5, 20.5, 20.5, 20.5, 20.5, 20.5),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
	{
		// the bottom edge, y = Height, is outside the image
		Name:   "bottom_edge",
		Curve:  cubic(0, 40, 20, 64, 44, 64, 64, 64),
		Width:  64,
		Height: 64,
		Stroke: guide,
	},
}

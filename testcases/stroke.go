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

import "seehuhn.de/go/pdf/graphics"

// strokeCases vary the outline of one curve.
var strokeCases = []TestCase{
	{
		Name:   "thin_butt",
		Curve:  cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: Stroke{Width: 1, Cap: graphics.LineCapButt, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "wide_butt",
		Curve:  cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: Stroke{Width: 8, Cap: graphics.LineCapButt, Join: graphics.LineJoinRound},
	},
	{
		Name:   "wide_round",
		Curve:  cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: Stroke{Width: 8, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
	},
	{
		Name:   "wide_square",
		Curve:  cubic(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Stroke: Stroke{Width: 8, Cap: graphics.LineCapSquare, Join: graphics.LineJoinBevel},
	},
	{
		Name:   "tight_loop",
		Curve:  cubic(12, 40, 60, 4, 4, 4, 52, 40),
		Width:  64,
		Height: 64,
		Stroke: Stroke{Width: 6, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound},
	},
}

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

// Package stripes turns a photograph into horizontal stripes.
//
// The user places a single cubic Bézier curve over the image.  Every row
// the curve crosses is filled with the one color found where the curve
// meets that row; all other rows keep their original pixels.
//
// A [Session] holds the full resolution image together with a smaller
// preview.  Edits happen in preview coordinates and update the preview
// immediately.  [Session.Export] scales the curve to the full image and
// renders it there with a denser sampling of the curve, so that preview
// and export agree on the shape of the stripes.
//
// The sub-packages contain the building blocks:
//   - [seehuhn.de/go/stripes/curve] holds the control points,
//   - [seehuhn.de/go/stripes/scanline] maps the curve to one column per row,
//   - [seehuhn.de/go/stripes/stripe] fills the rows,
//   - [seehuhn.de/go/stripes/overlay] draws the editing guides.
package stripes

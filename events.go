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

package stripes

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Event is an edit command for [Session.Dispatch].
type Event interface {
	isEvent()
}

// PointerDownEvent corresponds to [Session.PointerDown].
type PointerDownEvent struct{ At vec.Vec2 }

// PointerMoveEvent corresponds to [Session.PointerMove].
type PointerMoveEvent struct{ At vec.Vec2 }

// PointerUpEvent corresponds to [Session.PointerUp].
type PointerUpEvent struct{}

// ResetCurveEvent corresponds to [Session.ResetCurve].
type ResetCurveEvent struct{}

// ToggleGuidesEvent corresponds to [Session.ToggleGuides].
type ToggleGuidesEvent struct{}

func (PointerDownEvent) isEvent()  {}
func (PointerMoveEvent) isEvent()  {}
func (PointerUpEvent) isEvent()    {}
func (ResetCurveEvent) isEvent()   {}
func (ToggleGuidesEvent) isEvent() {}

// Dispatch applies ev to the session.
func (s *Session) Dispatch(ev Event) error {
	switch ev := ev.(type) {
	case PointerDownEvent:
		return s.PointerDown(ev.At)
	case PointerMoveEvent:
		return s.PointerMove(ev.At)
	case PointerUpEvent:
		return s.PointerUp()
	case ResetCurveEvent:
		return s.ResetCurve()
	case ToggleGuidesEvent:
		return s.ToggleGuides()
	default:
		return fmt.Errorf("stripes: unsupported event %T", ev)
	}
}

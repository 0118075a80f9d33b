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

import "errors"

var (
	// ErrNoImage is returned by operations on a session without an image.
	ErrNoImage = errors.New("stripes: no image loaded")

	// ErrBusy is returned for edits and exports while an export is running.
	ErrBusy = errors.New("stripes: export in progress")
)

// InputError reports an image which could not be used as a source.
type InputError struct {
	Op  string
	Err error
}

func (e *InputError) Error() string {
	return "stripes: " + e.Op + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// EncodingError reports a failure to encode or store an exported image.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Name == "" {
		return "stripes: saving: " + e.Err.Error()
	}
	return "stripes: saving " + e.Name + ": " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

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
	"context"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

// A Saver stores an exported image under the given name.
type Saver interface {
	Save(ctx context.Context, name string, img image.Image) error
}

// SaverFunc adapts a function to the [Saver] interface.
type SaverFunc func(ctx context.Context, name string, img image.Image) error

// Save calls f.
func (f SaverFunc) Save(ctx context.Context, name string, img image.Image) error {
	return f(ctx, name, img)
}

// FileSaver writes images into the directory Dir.
// The image format is chosen by the file name extension; JPEG files are
// written with quality 95.
type FileSaver struct {
	Dir string
}

// Save implements the [Saver] interface.
// A partially written file is removed.
func (fs FileSaver) Save(ctx context.Context, name string, img image.Image) error {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return &EncodingError{Name: name, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fname := filepath.Join(fs.Dir, name)
	f, err := os.Create(fname)
	if err != nil {
		return &EncodingError{Name: name, Err: err}
	}
	err = imaging.Encode(f, img, format, imaging.JPEGQuality(95))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fname)
		return &EncodingError{Name: name, Err: err}
	}
	return nil
}

// FileName returns the name used for an image exported at time t,
// for example "bezier_stripes_2026-03-01_14-05-09.png".
func FileName(t time.Time) string {
	return "bezier_stripes_" + t.Format("2006-01-02_15-04-05") + ".png"
}

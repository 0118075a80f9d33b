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
	"errors"
	"image"
	"io"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/stripes/curve"
	"seehuhn.de/go/stripes/overlay"
	"seehuhn.de/go/stripes/scanline"
)

// PreviewMax is the maximal length of the longer side of the preview.
const PreviewMax = 1200

var errEmptyImage = errors.New("image has no pixels")

// Load decodes an image from r and starts a new session for it.
// PNG, JPEG, GIF, WebP, BMP and TIFF images are supported.  The EXIF
// orientation of JPEG files is applied.
func Load(r io.Reader) (*Session, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &InputError{Op: "decode", Err: err}
	}
	return NewSession(img)
}

// NewSession starts a session for img.  The image is copied, so that
// the caller may modify img afterwards.
//
// The preview is a copy of img, scaled down so that its longer side is at
// most [PreviewMax] pixels.  The curve starts in its default position.
func NewSession(img image.Image) (*Session, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, &InputError{Op: "load", Err: errEmptyImage}
	}

	full := imaging.Clone(img)
	fw, fh := full.Bounds().Dx(), full.Bounds().Dy()

	pw, ph := previewSize(fw, fh, PreviewMax)
	src := full
	if pw != fw || ph != fh {
		src = imaging.Resize(full, pw, ph, imaging.Lanczos)
	}

	s := &Session{
		PreviewSamples: scanline.PreviewSamples,
		ExportSamples:  scanline.ExportSamples,
		HitRadius:      curve.HitRadius,

		full:     full,
		src:      src,
		preview:  image.NewNRGBA(src.Bounds()),
		sx:       float64(fw) / float64(pw),
		sy:       float64(fh) / float64(ph),
		curve:    curve.Default(float64(pw), float64(ph)),
		dragging: -1,
		guides:   true,
		painter:  overlay.NewPainter(),
	}
	s.update()

	Logger().Info("image loaded", "width", fw, "height", fh,
		"previewWidth", pw, "previewHeight", ph)
	return s, nil
}

// previewSize returns the size of the preview for a w×h image.  Images
// which fit are not scaled.  Otherwise the longer side becomes maxSide and
// the other side is rounded to the nearest integer, but at least 1.
func previewSize(w, h, maxSide int) (int, int) {
	long := max(w, h)
	if long <= maxSide {
		return w, h
	}
	s := float64(maxSide) / float64(long)
	pw := max(int(math.Floor(float64(w)*s+0.5)), 1)
	ph := max(int(math.Floor(float64(h)*s+0.5)), 1)
	return pw, ph
}

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
	"errors"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stripes/curve"
	"seehuhn.de/go/stripes/overlay"
	"seehuhn.de/go/stripes/scanline"
	"seehuhn.de/go/stripes/stripe"
)

// Session holds one loaded image together with its preview and the curve.
//
// Edits and preview rendering must happen on a single goroutine.  Exports
// may run concurrently with this goroutine, see [Session.StartExport].
type Session struct {
	// PreviewSamples is the number of curve samples used for the preview
	// map.  Changes take effect at the next edit.
	PreviewSamples int

	// ExportSamples is the number of curve samples used for exports.
	// The value is read when an export starts.
	ExportSamples int

	// HitRadius is the distance, in preview pixels, within which a pointer
	// press picks up a control point.
	HitRadius float64

	full    *image.NRGBA // full resolution source
	src     *image.NRGBA // preview sized source, never modified
	preview *image.NRGBA // rendered preview
	sx, sy  float64      // full size divided by preview size

	curve    curve.Cubic // in preview coordinates
	dragging int         // index of the dragged point, or -1
	guides   bool

	mapper  scanline.Mapper
	m       scanline.Map
	painter *overlay.Painter

	busy atomic.Bool
}

// ExportResult is the outcome of an export started by [Session.StartExport].
type ExportResult struct {
	Name string
	Err  error
}

// now is replaced in tests.
var now = time.Now

var errNoSaver = errors.New("no saver")

// check returns an error if the session cannot be edited.
func (s *Session) check() error {
	if s == nil || s.full == nil {
		return ErrNoImage
	}
	if s.busy.Load() {
		return ErrBusy
	}
	return nil
}

// PointerDown picks up the first control point within HitRadius of p.
// If no point is close enough, later moves have no effect.
func (s *Session) PointerDown(p vec.Vec2) error {
	if err := s.check(); err != nil {
		return err
	}
	s.dragging = -1
	if i, ok := s.curve.HitTest(p, s.HitRadius); ok {
		s.dragging = i
	}
	return nil
}

// PointerMove moves the picked up control point to p.  The point is
// clamped to the preview area.
func (s *Session) PointerMove(p vec.Vec2) error {
	if err := s.check(); err != nil {
		return err
	}
	if s.dragging < 0 {
		return nil
	}
	b := s.src.Bounds()
	bounds := rect.Rect{URx: float64(b.Dx()), URy: float64(b.Dy())}
	s.curve.MovePoint(s.dragging, p, bounds)
	s.update()
	return nil
}

// PointerUp releases the control point.  This is allowed during an
// export, since it does not change the curve.
func (s *Session) PointerUp() error {
	if s == nil || s.full == nil {
		return ErrNoImage
	}
	s.dragging = -1
	return nil
}

// ResetCurve moves the curve back to its default position.
func (s *Session) ResetCurve() error {
	if err := s.check(); err != nil {
		return err
	}
	b := s.src.Bounds()
	s.curve.Reset(float64(b.Dx()), float64(b.Dy()))
	s.dragging = -1
	s.update()
	return nil
}

// ToggleGuides shows or hides the guides in the preview.
// The guides never appear in exported images.
func (s *Session) ToggleGuides() error {
	if err := s.check(); err != nil {
		return err
	}
	s.guides = !s.guides
	s.render()
	return nil
}

// Guides reports whether the guides are shown in the preview.
func (s *Session) Guides() bool {
	return s != nil && s.guides
}

// Curve returns the curve in preview coordinates.
func (s *Session) Curve() curve.Cubic {
	if s == nil {
		return curve.Cubic{}
	}
	return s.curve
}

// Map returns the scanline map of the preview.
// The map is owned by the session and changes with the next edit.
func (s *Session) Map() scanline.Map {
	if s == nil {
		return nil
	}
	return s.m
}

// Preview returns the rendered preview, or nil if no image is loaded.
// The image is owned by the session and is overwritten by the next edit.
func (s *Session) Preview() *image.NRGBA {
	if s == nil {
		return nil
	}
	return s.preview
}

// Scale returns the factors from preview coordinates to full image
// coordinates.
func (s *Session) Scale() (sx, sy float64) {
	if s == nil {
		return 0, 0
	}
	return s.sx, s.sy
}

// Busy reports whether an export is running.
func (s *Session) Busy() bool {
	return s != nil && s.busy.Load()
}

// Info describes the preview and export sizes.
func (s *Session) Info() string {
	if s == nil || s.full == nil {
		return ""
	}
	pb, fb := s.src.Bounds(), s.full.Bounds()
	return fmt.Sprintf("Preview: %d×%d | Export: %d×%d", pb.Dx(), pb.Dy(), fb.Dx(), fb.Dy())
}

// update rebuilds the preview map and renders the preview.
func (s *Session) update() {
	h := s.src.Bounds().Dy()
	s.m = s.mapper.Build(s.curve, h, s.PreviewSamples)
	Logger().Debug("preview map rebuilt", "rows", h, "valid", s.m.ValidCount())
	s.render()
}

// render draws the stripes for the current map, and the guides if enabled.
func (s *Session) render() {
	copy(s.preview.Pix, s.src.Pix)
	stripe.Render(s.preview, s.src, s.m)
	if s.guides {
		s.painter.Draw(s.preview, s.curve, s.m)
	}
}

// Export renders the curve at full resolution and passes the result to
// saver.  The file name is derived from the current time, see [FileName].
// It returns the name used.
//
// While the export runs, edits and other exports fail with [ErrBusy].
// The preview is not changed.
func (s *Session) Export(ctx context.Context, saver Saver) (string, error) {
	job, err := s.beginExport(saver)
	if err != nil {
		return "", err
	}
	defer s.busy.Store(false)
	return s.export(ctx, saver, job)
}

// StartExport is like [Session.Export], but runs the export on a new
// goroutine.  The session is marked busy before StartExport returns.
// The returned channel receives exactly one result and is then closed.
func (s *Session) StartExport(ctx context.Context, saver Saver) <-chan ExportResult {
	res := make(chan ExportResult, 1)

	job, err := s.beginExport(saver)
	if err != nil {
		res <- ExportResult{Err: err}
		close(res)
		return res
	}

	go func() {
		name, err := s.export(ctx, saver, job)
		s.busy.Store(false)
		res <- ExportResult{Name: name, Err: err}
		close(res)
	}()
	return res
}

// exportJob holds the settings an export works with.  They are copied
// when the export starts, so that the caller may change the session
// fields while the export runs.
type exportJob struct {
	curve   curve.Cubic
	samples int
}

// beginExport marks the session busy and takes a snapshot of the settings.
func (s *Session) beginExport(saver Saver) (exportJob, error) {
	if s == nil || s.full == nil {
		return exportJob{}, ErrNoImage
	}
	if saver == nil {
		return exportJob{}, &EncodingError{Err: errNoSaver}
	}
	if !s.busy.CompareAndSwap(false, true) {
		return exportJob{}, ErrBusy
	}
	return exportJob{curve: s.curve, samples: s.ExportSamples}, nil
}

// export renders the curve of job, given in preview coordinates, at full
// resolution.  Apart from job, only immutable session fields are used.
func (s *Session) export(ctx context.Context, saver Saver, job exportJob) (string, error) {
	start := now()
	h := s.full.Bounds().Dy()

	m := scanline.Build(job.curve.Scaled(s.sx, s.sy), h, job.samples)
	out := stripe.Apply(s.full, m)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := FileName(start)
	err := saver.Save(ctx, name, out)
	if err != nil {
		var encErr *EncodingError
		if !errors.As(err, &encErr) && !errors.Is(err, context.Canceled) &&
			!errors.Is(err, context.DeadlineExceeded) {
			err = &EncodingError{Name: name, Err: err}
		}
		Logger().Warn("export failed", "name", name, "error", err)
		return "", err
	}

	Logger().Info("image exported", "name", name, "rows", h,
		"valid", m.ValidCount(), "duration", now().Sub(start))
	return name, nil
}

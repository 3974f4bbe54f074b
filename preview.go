// Copyright 2026 The tform Authors. All rights reserved.
//
// Rasterizes scenes: polygon shapes through their composed transforms,
// then pixel-space labels.
package tform

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// MatrixAdder applies M to every path point before forwarding it on.
type MatrixAdder struct {
	rasterx.Adder
	M Matrix2D
}

func (t *MatrixAdder) Start(a fixed.Point26_6) {
	t.Adder.Start(t.M.TFixed(a))
}

// Line adds a linear segment to the current curve.
func (t *MatrixAdder) Line(b fixed.Point26_6) {
	t.Adder.Line(t.M.TFixed(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (t *MatrixAdder) QuadBezier(b, c fixed.Point26_6) {
	t.Adder.QuadBezier(t.M.TFixed(b), t.M.TFixed(c))
}

// CubeBezier adds a cubic segment to the current curve.
func (t *MatrixAdder) CubeBezier(b, c, d fixed.Point26_6) {
	t.Adder.CubeBezier(t.M.TFixed(b), t.M.TFixed(c), t.M.TFixed(d))
}

func toFixed(p Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * 64),
		Y: fixed.Int26_6(p.Y * 64)}
}

// Render rasterizes the scene into a new RGBA image of the scene's
// pixel size. Shapes draw in document order under a viewport covering
// the whole image, labels draw last on top.
func (s *Scene) Render() (*image.RGBA, error) {
	w, h := int(s.Width), int(s.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if s.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	}

	view := Viewport(0, 0, s.Width, s.Height)
	scannerGV := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scannerGV)
	for i := range s.Shapes {
		s.Shapes[i].draw(raster, view)
	}

	for i := range s.Labels {
		if err := s.Labels[i].Draw(img); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// draw rasterizes one shape. Fill and stroke run as separate raster
// passes, like SVG paint order.
func (sh *Shape) draw(r *rasterx.Dasher, view Matrix2D) {
	if len(sh.Points) < 2 {
		return
	}
	m := view.Mult(sh.Transform)

	if sh.Fill != nil {
		r.Clear()
		rf := &r.Filler
		adder := &MatrixAdder{Adder: rf, M: m}
		addPolygon(adder, sh.Points)
		rf.SetColor(sh.Fill)
		rf.Draw()
	}
	if sh.Stroke != nil {
		r.Clear()
		width := sh.StrokeWidth
		if width == 0 {
			width = 1
		}
		r.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
			rasterx.ButtCap, rasterx.ButtCap, nil, rasterx.Bevel, nil, 0)
		adder := &MatrixAdder{Adder: r, M: m}
		addPolygon(adder, sh.Points)
		r.SetColor(sh.Stroke)
		r.Draw()
	}
}

func addPolygon(a *MatrixAdder, pts []Point) {
	a.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		a.Line(toFixed(p))
	}
	a.Stop(true)
}

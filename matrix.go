// Copyright 2026 The tform Authors. All rights reserved.
//
// Implements the six-coefficient 2D affine matrix the rest of the
// package composes and applies.
package tform

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D holds the six coefficients of a 2D affine map:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Points are column vectors, so a.Mult(b) is the transform that applies
// b to a point first and a second.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral element of Mult.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TFixed transforms a fixed.Point26_6 by the matrix
func (m Matrix2D) TFixed(a fixed.Point26_6) (b fixed.Point26_6) {
	b.X = fixed.Int26_6((float64(a.X)*m.A + float64(a.Y)*m.C) + m.E*64)
	b.Y = fixed.Int26_6((float64(a.X)*m.B + float64(a.Y)*m.D) + m.F*64)
	return
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{
		A: x,
		B: 0,
		C: 0,
		D: y,
		E: 0,
		F: 0})
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return Matrix2D{
		A: a.A,
		B: a.B,
		C: a.C,
		D: a.D,
		E: a.E + x,
		F: a.F + y}
}

// Rotate post-multiplies a counterclockwise rotation about the origin.
// theta is in radians; Rotate(math.Pi/2) maps (1,0) to (0,1).
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{
		A: cos,
		B: sin,
		C: -sin,
		D: cos,
		E: 0,
		F: 0})
}

// Invert returns the inverse transform. A singular matrix inverts to
// Identity.
func (m Matrix2D) Invert() Matrix2D {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity
	}
	idet := 1 / det
	return Matrix2D{
		A: m.D * idet,
		B: -m.B * idet,
		C: -m.C * idet,
		D: m.A * idet,
		E: (m.C*m.F - m.D*m.E) * idet,
		F: (m.B*m.E - m.A*m.F) * idet}
}

package tform

import (
	"fmt"
	"math"
)

// Op is one elementary operation of a transform expression. The
// concrete types are exactly Scale, Translate and Rotate.
type Op interface {
	// Matrix builds the elementary affine transform for the operation.
	Matrix() Matrix2D
}

// Scale scales by Sx along x and Sy along y.
type Scale struct {
	Sx, Sy float64
}

// Translate moves by (Tx, Ty).
type Translate struct {
	Tx, Ty float64
}

// Rotate turns counterclockwise about the origin. The angle stays in
// degrees; conversion to radians happens only when the matrix is built.
type Rotate struct {
	Degrees float64
}

func (s Scale) Matrix() Matrix2D {
	return Matrix2D{A: s.Sx, D: s.Sy}
}

func (t Translate) Matrix() Matrix2D {
	return Matrix2D{A: 1, D: 1, E: t.Tx, F: t.Ty}
}

func (r Rotate) Matrix() Matrix2D {
	sin, cos := math.Sincos(r.Degrees * math.Pi / 180)
	return Matrix2D{A: cos, B: sin, C: -sin, D: cos}
}

func (s Scale) String() string     { return fmt.Sprintf("S(%g,%g)", s.Sx, s.Sy) }
func (t Translate) String() string { return fmt.Sprintf("T(%g,%g)", t.Tx, t.Ty) }
func (r Rotate) String() string    { return fmt.Sprintf("R(%g)", r.Degrees) }

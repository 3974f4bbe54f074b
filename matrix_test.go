package tform

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestIdentityNeutral(t *testing.T) {
	a := Matrix2D{A: 2, B: 0.5, C: -1, D: 3, E: 4, F: -2}
	if got := a.Mult(Identity); got != a {
		t.Errorf("a*I = %+v, want %+v", got, a)
	}
	if got := Identity.Mult(a); got != a {
		t.Errorf("I*a = %+v, want %+v", got, a)
	}
}

// a.Mult(b) applies b first: scaling after a translation keeps the
// offset unscaled only when the translation is on the left.
func TestMultConvention(t *testing.T) {
	scale := Scale{Sx: 2, Sy: 2}.Matrix()
	trans := Translate{Tx: 1, Ty: 0}.Matrix()

	x, y := scale.Mult(trans).Transform(0, 0)
	if x != 2 || y != 0 {
		t.Errorf("S*T at origin = (%g,%g), want (2,0)", x, y)
	}
	x, y = trans.Mult(scale).Transform(0, 0)
	if x != 1 || y != 0 {
		t.Errorf("T*S at origin = (%g,%g), want (1,0)", x, y)
	}
}

func TestMultAssociative(t *testing.T) {
	a := Rotate{Degrees: 30}.Matrix()
	b := Translate{Tx: 0.5, Ty: -1}.Matrix()
	c := Scale{Sx: 2, Sy: 3}.Matrix()
	left := a.Mult(b).Mult(c)
	right := a.Mult(b.Mult(c))
	for _, d := range []float64{
		left.A - right.A, left.B - right.B, left.C - right.C,
		left.D - right.D, left.E - right.E, left.F - right.F,
	} {
		if !near(d, 0) {
			t.Fatalf("(a*b)*c = %+v, a*(b*c) = %+v", left, right)
		}
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m, err := Parse("R(30)*T(0.5,0)*S(2,1)")
	if err != nil {
		t.Fatal(err)
	}
	inv := m.Invert()
	x, y := inv.Mult(m).Transform(0.3, -0.7)
	if !near(x, 0.3) || !near(y, -0.7) {
		t.Errorf("inv*m maps (0.3,-0.7) to (%g,%g)", x, y)
	}
}

func TestInvertSingular(t *testing.T) {
	if got := (Matrix2D{}).Invert(); got != Identity {
		t.Errorf("singular inverse = %+v, want identity", got)
	}
}

func TestTFixedMatchesTransform(t *testing.T) {
	m := Translate{Tx: 3, Ty: -2}.Matrix()
	got := m.TFixed(fixed.Point26_6{X: 64, Y: 128})
	if got.X != 4*64 || got.Y != 0 {
		t.Errorf("TFixed = %v, want (256, 0)", got)
	}
}

func TestViewportCorners(t *testing.T) {
	v := Viewport(0, 0, 200, 100)
	tests := []struct {
		x, y   float64
		wx, wy float64
	}{
		{-1, -1, 0, 100},
		{1, 1, 200, 0},
		{0, 0, 100, 50},
		{-1, 1, 0, 0},
	}
	for _, test := range tests {
		gx, gy := v.Transform(test.x, test.y)
		if !near(gx, test.wx) || !near(gy, test.wy) {
			t.Errorf("Viewport maps (%g,%g) to (%g,%g), want (%g,%g)",
				test.x, test.y, gx, gy, test.wx, test.wy)
		}
	}
}

// The viewport composes with parsed transforms through the same Mult.
func TestViewportComposesWithParse(t *testing.T) {
	m, err := Parse("T(1,0)")
	if err != nil {
		t.Fatal(err)
	}
	v := Viewport(0, 0, 100, 100)
	// the normalized origin translated to (1,0) lands on the right edge
	gx, gy := v.Mult(m).Transform(0, 0)
	if !near(gx, 100) || !near(gy, 50) {
		t.Errorf("got (%g,%g), want (100,50)", gx, gy)
	}
}

func TestTransformPoints(t *testing.T) {
	src := []Point{{0, 0}, {1, 0}, {0, 1}}
	got := TransformPoints(Translate{Tx: 2, Ty: 3}.Matrix(), src)
	want := []Point{{2, 3}, {3, 3}, {2, 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if src[0] != (Point{0, 0}) {
		t.Error("TransformPoints mutated its input")
	}
}

package tform_test

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	. "tform"
)

const testScene = `<?xml version="1.0" encoding="UTF-8"?>
<scene width="256" height="128" background="white">
  <shape name="square" fill="steelblue" stroke="#202020" stroke-width="2"
         transform="R(30)*T(0.25,0)*S(1.5,1)"/>
  <shape points="-0.8,-0.8 0.8,-0.8 0,0.9" fill="none" stroke="rgb(255,99,71)"/>
  <label x="16" y="24" font="bold 14px Go" fill="black">R(30)*T(0.25,0)*S(1.5,1)</label>
</scene>`

func TestReadSceneStream(t *testing.T) {
	s, err := ReadSceneStream(strings.NewReader(testScene))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 256 || s.Height != 128 {
		t.Errorf("size = %gx%g, want 256x128", s.Width, s.Height)
	}
	if s.Background == nil {
		t.Error("background not set")
	}
	if len(s.Shapes) != 2 || len(s.Labels) != 1 {
		t.Fatalf("got %d shapes, %d labels", len(s.Shapes), len(s.Labels))
	}

	sq := s.Shapes[0]
	if sq.Name != "square" || len(sq.Points) != 4 {
		t.Errorf("first shape = %q with %d points", sq.Name, len(sq.Points))
	}
	if sq.Fill == nil || sq.Stroke == nil || sq.StrokeWidth != 2 {
		t.Error("square style not decoded")
	}
	want, err := Parse("R(30)*T(0.25,0)*S(1.5,1)")
	if err != nil {
		t.Fatal(err)
	}
	if sq.Transform != want {
		t.Errorf("transform = %+v, want %+v", sq.Transform, want)
	}

	tri := s.Shapes[1]
	if tri.Fill != nil {
		t.Error(`fill="none" should disable filling`)
	}
	if tri.Stroke != (color.NRGBA{255, 99, 71, 255}) {
		t.Errorf("stroke = %v", tri.Stroke)
	}
	if tri.Transform != Identity {
		t.Errorf("missing transform should default to identity, got %+v", tri.Transform)
	}
	if tri.Points[2] != (Point{0, 0.9}) {
		t.Errorf("points = %v", tri.Points)
	}

	lab := s.Labels[0]
	if lab.X != 16 || lab.Y != 24 || lab.Text != "R(30)*T(0.25,0)*S(1.5,1)" {
		t.Errorf("label = %+v", lab)
	}
}

func TestReadSceneDefaults(t *testing.T) {
	s, err := ReadSceneStream(strings.NewReader(`<scene><shape name="diamond"/></scene>`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 512 || s.Height != 512 {
		t.Errorf("size = %gx%g, want 512x512", s.Width, s.Height)
	}
	if s.Background != nil {
		t.Error("background should default to nil")
	}
	// unstyled shapes fill black
	if s.Shapes[0].Fill != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("fill = %v", s.Shapes[0].Fill)
	}
}

func TestReadSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad transform", `<scene><shape name="square" transform="Q(1)"/></scene>`},
		{"bad fill", `<scene><shape name="square" fill="notacolor"/></scene>`},
		{"bad background", `<scene background="##"><shape name="square"/></scene>`},
		{"odd points", `<scene><shape points="1,2 3"/></scene>`},
		{"bad point value", `<scene><shape points="1,2 x,4"/></scene>`},
		{"unknown name", `<scene><shape name="dodecahedron"/></scene>`},
		{"empty shape", `<scene><shape fill="red"/></scene>`},
	}
	for _, test := range tests {
		if _, err := ReadSceneStream(strings.NewReader(test.doc)); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

// Transform errors surface with their parser kind intact.
func TestSceneTransformErrorKind(t *testing.T) {
	_, err := ReadSceneStream(strings.NewReader(
		`<scene><shape name="square" transform="S(1,2,3)"/></scene>`))
	if !errors.Is(err, ErrArgumentCount) {
		t.Errorf("err = %v, want ErrArgumentCount", err)
	}
}

func TestNamedShapes(t *testing.T) {
	for _, name := range ShapeNames() {
		pts, ok := NamedShape(name)
		if !ok || len(pts) < 3 {
			t.Errorf("NamedShape(%q) = %v, %v", name, pts, ok)
		}
	}
	if _, ok := NamedShape("nope"); ok {
		t.Error("unknown name should not resolve")
	}
}

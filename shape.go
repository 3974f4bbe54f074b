package tform

import "image/color"

// Point is a 2D coordinate. Scene shapes use the normalized
// [-1,1]x[-1,1] space with y pointing up.
type Point struct {
	X, Y float64
}

// TransformPoints applies m to an ordered point list and returns the
// transformed list. The input is left untouched.
func TransformPoints(m Matrix2D, pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		x, y := m.Transform(p.X, p.Y)
		out[i] = Point{X: x, Y: y}
	}
	return out
}

// Shape is a closed polygon in normalized coordinates with solid
// paints. Transform is the model transform applied before the scene
// viewport; the zero Shape draws nothing.
type Shape struct {
	Name        string
	Points      []Point
	Fill        color.Color // nil disables filling
	Stroke      color.Color // nil disables stroking
	StrokeWidth float64     // pixels; 0 means 1
	Transform   Matrix2D
}

var namedShapes = map[string][]Point{
	"square": {
		{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}},
	"triangle": {
		{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}},
	"diamond": {
		{0, -0.5}, {0.5, 0}, {0, 0.5}, {-0.5, 0}},
	"arrow": {
		{-0.5, -0.15}, {0.1, -0.15}, {0.1, -0.4}, {0.5, 0},
		{0.1, 0.4}, {0.1, 0.15}, {-0.5, 0.15}},
}

// NamedShape returns the outline of a built-in shape. The second result
// reports whether the name is known.
func NamedShape(name string) ([]Point, bool) {
	pts, ok := namedShapes[name]
	if !ok {
		return nil, false
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out, true
}

// ShapeNames lists the built-in shape names in no particular order.
func ShapeNames() []string {
	names := make([]string, 0, len(namedShapes))
	for n := range namedShapes {
		names = append(names, n)
	}
	return names
}

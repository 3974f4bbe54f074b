package tform

// Viewport returns the transform mapping the normalized [-1,1]x[-1,1]
// square onto the pixel rectangle at (x, y) with size (w, h).
// Normalized y points up while image y grows down, so the map flips y:
// (-1,-1) lands on the bottom-left pixel corner and (1,1) on the
// top-right. Compose model transforms into it with Mult.
func Viewport(x, y, w, h float64) Matrix2D {
	return Identity.Translate(x+w/2, y+h/2).Scale(w/2, -h/2)
}

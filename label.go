package tform

import (
	"image"
	"image/color"
	"regexp"
	"strconv"

	"github.com/golang/freetype/truetype"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/math/fixed"

	cfp "github.com/raykov/css-font-parser"
)

// Label is a short piece of text drawn in pixel coordinates, typically
// echoing the transform expression below the rendered shapes.
type Label struct {
	X, Y   float64
	Text   string
	Font   string      // CSS font shorthand, e.g. "italic bold 14px Go"
	Fill   color.Color // nil paints black
	Anchor string      // "left" (default) or "middle"
}

var fontSizeRegexp = regexp.MustCompile(`[^0-9.]+`)

// Draw renders the label into img. The Font shorthand selects size,
// style, weight and variant; the face always comes from the embedded Go
// fonts, so the family part is ignored.
func (l *Label) Draw(img *image.RGBA) error {
	fontSize := 10.0
	fontStyle, fontWeight, fontVariant := "", "", ""
	if l.Font != "" {
		eFont := cfp.Parse(l.Font)
		if size, err := strconv.ParseFloat(fontSizeRegexp.ReplaceAllString(eFont.Size, ""), 64); err == nil && size > 0 {
			fontSize = size
		}
		fontStyle, fontWeight, fontVariant = eFont.Style, eFont.Weight, eFont.Variant
	}

	var rawTTF []byte
	switch {
	case fontVariant == "small-caps" && fontStyle == "italic":
		rawTTF = gosmallcapsitalic.TTF
	case fontVariant == "small-caps":
		rawTTF = gosmallcaps.TTF
	case fontStyle == "italic" && fontWeight == "bold":
		rawTTF = gobolditalic.TTF
	case fontStyle == "italic":
		rawTTF = goitalic.TTF
	case fontWeight == "bold":
		rawTTF = gobold.TTF
	default:
		rawTTF = goregular.TTF
	}

	ff, err := truetype.Parse(rawTTF)
	if err != nil {
		return err
	}
	ttf := truetype.NewFace(ff, &truetype.Options{Size: fontSize})

	col := l.Fill
	if col == nil {
		col = color.Black
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: ttf,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(l.X * 64), Y: fixed.Int26_6(l.Y * 64)},
	}

	if l.Anchor == "middle" {
		w := d.MeasureString(l.Text)
		d.Dot.X = fixed.Int26_6(l.X*64) - w/2
	}

	d.DrawString(l.Text)
	return nil
}

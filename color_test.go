package tform

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"none", nil},
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"WHITE", color.NRGBA{255, 255, 255, 255}},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"rgb(12, 34, 56)", color.NRGBA{12, 34, 56, 255}},
		{"rgb(100%, 0%, 0%)", color.NRGBA{255, 0, 0, 255}},
		{"rgb(999,0,0)", color.NRGBA{255, 0, 0, 255}},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#zzzzzz", "rgb(1,2)", "rgb(a,b,c)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected an error", in)
		}
	}
}

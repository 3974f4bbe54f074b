// Copyright 2026 The tform Authors. All rights reserved.
//
// Implements the XML scene description consumed by the preview
// renderer and the render command.
package tform

import (
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html/charset"
)

var (
	errOddPointList = errors.New("point list needs an even number of values")
	errEmptyShape   = errors.New("shape needs a name or a point list")
	errUnknownShape = errors.New("unknown shape name")
)

const defaultSceneSize = 512

// Scene is a set of shapes in the normalized square plus pixel-space
// labels, ready to be rendered at Width x Height pixels.
type Scene struct {
	Width, Height float64
	Background    color.Color // nil leaves the canvas transparent
	Shapes        []Shape
	Labels        []Label
}

type (
	sceneXML struct {
		XMLName    xml.Name   `xml:"scene"`
		Width      float64    `xml:"width,attr"`
		Height     float64    `xml:"height,attr"`
		Background string     `xml:"background,attr"`
		Shapes     []shapeXML `xml:"shape"`
		Labels     []labelXML `xml:"label"`
	}

	shapeXML struct {
		Name        string  `xml:"name,attr"`
		Points      string  `xml:"points,attr"`
		Fill        string  `xml:"fill,attr"`
		Stroke      string  `xml:"stroke,attr"`
		StrokeWidth float64 `xml:"stroke-width,attr"`
		Transform   string  `xml:"transform,attr"`
	}

	labelXML struct {
		X      float64 `xml:"x,attr"`
		Y      float64 `xml:"y,attr"`
		Font   string  `xml:"font,attr"`
		Fill   string  `xml:"fill,attr"`
		Anchor string  `xml:"text-anchor,attr"`
		Text   string  `xml:",chardata"`
	}
)

// ReadScene reads a scene description from the named file.
func ReadScene(path string) (*Scene, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadSceneStream(fin)
}

// ReadSceneStream decodes a scene from stream. The decoder accepts any
// charset the document declares.
func ReadSceneStream(stream io.Reader) (*Scene, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var raw sceneXML
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	return buildScene(&raw)
}

func buildScene(raw *sceneXML) (*Scene, error) {
	s := &Scene{Width: raw.Width, Height: raw.Height}
	if s.Width <= 0 {
		s.Width = defaultSceneSize
	}
	if s.Height <= 0 {
		s.Height = defaultSceneSize
	}
	if raw.Background != "" {
		bg, err := ParseColor(raw.Background)
		if err != nil {
			return nil, fmt.Errorf("scene background: %w", err)
		}
		s.Background = bg
	}
	for i := range raw.Shapes {
		sh, err := buildShape(&raw.Shapes[i])
		if err != nil {
			return nil, err
		}
		s.Shapes = append(s.Shapes, sh)
	}
	for _, l := range raw.Labels {
		lab := Label{
			X:      l.X,
			Y:      l.Y,
			Text:   strings.TrimSpace(l.Text),
			Font:   l.Font,
			Anchor: l.Anchor,
		}
		if l.Fill != "" {
			col, err := ParseColor(l.Fill)
			if err != nil {
				return nil, fmt.Errorf("label %q: %w", lab.Text, err)
			}
			lab.Fill = col
		}
		s.Labels = append(s.Labels, lab)
	}
	return s, nil
}

func buildShape(raw *shapeXML) (Shape, error) {
	sh := Shape{
		Name:        raw.Name,
		StrokeWidth: raw.StrokeWidth,
		Transform:   Identity,
	}
	switch {
	case raw.Points != "":
		pts, err := readPoints(raw.Points)
		if err != nil {
			return sh, fmt.Errorf("shape %q: %w", raw.Name, err)
		}
		sh.Points = pts
	case raw.Name != "":
		pts, ok := NamedShape(raw.Name)
		if !ok {
			return sh, fmt.Errorf("%q: %w", raw.Name, errUnknownShape)
		}
		sh.Points = pts
	default:
		return sh, errEmptyShape
	}
	if raw.Transform != "" {
		m, err := Parse(raw.Transform)
		if err != nil {
			return sh, fmt.Errorf("shape %q: %w", raw.Name, err)
		}
		sh.Transform = m
	}
	var err error
	if raw.Fill != "" {
		if sh.Fill, err = ParseColor(raw.Fill); err != nil {
			return sh, fmt.Errorf("shape %q fill: %w", raw.Name, err)
		}
	}
	if raw.Stroke != "" {
		if sh.Stroke, err = ParseColor(raw.Stroke); err != nil {
			return sh, fmt.Errorf("shape %q stroke: %w", raw.Name, err)
		}
	}
	if raw.Fill == "" && raw.Stroke == "" {
		// unstyled shapes fill black, like unstyled SVG paths
		sh.Fill = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	}
	return sh, nil
}

// readPoints scans a whitespace or comma separated list of coordinate
// values into points. The count must be even.
func readPoints(list string) ([]Point, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields)%2 != 0 {
		return nil, errOddPointList
	}
	pts := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseFloat(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseFloat(fields[i+1])
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotANumber)
	}
	return f, nil
}

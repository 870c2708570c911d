package screen

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Label is a single line of text. X is the left edge of the text and Y the
// vertical centre of the line.
type Label struct {
	Text string
	X, Y int
	Face font.Face
}

// Render draws the label onto dst with the "on" pixel colour.
func (l Label) Render(dst draw.Image) {
	face := l.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	// Centre the ascent+descent box on Y.
	baseline := fixed.I(l.Y) + (m.Ascent-m.Descent)/2

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(image1bit.On),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(l.X), Y: baseline},
	}
	d.DrawString(l.Text)
}

// Bounds is the area the label covers once rendered.
func (l Label) Bounds() image.Rectangle {
	face := l.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	baseline := fixed.I(l.Y) + (m.Ascent-m.Descent)/2
	b, _ := font.BoundString(face, l.Text)
	return image.Rect(
		l.X+b.Min.X.Floor(), (baseline + b.Min.Y).Floor(),
		l.X+b.Max.X.Ceil(), (baseline + b.Max.Y).Ceil(),
	)
}

// LoadFace opens an OpenType or TrueType font at the given point size. An
// empty path selects the built-in 7x13 bitmap face.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if size <= 0 {
		size = 12
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return face, nil
}

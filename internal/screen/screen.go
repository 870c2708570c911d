// Package screen renders a single text label on a monochrome OLED.
package screen

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Screen shows one label at a fixed position, replacing the previous one on every Show.
type Screen struct {
	drawer display.Drawer
	bus    i2c.BusCloser
	face   font.Face
	x, y   int
	shown  string
}

func New(d display.Drawer, face font.Face, x, y int) *Screen {
	return &Screen{drawer: d, face: face, x: x, y: y}
}

// OpenI2C opens the named bus ("" for the first one) and an SSD1306 of w x h
// pixels on it. 128x32 panels wire their COM pins sequentially.
func OpenI2C(bus string, w, h int, sequential bool, face font.Face, x, y int) (*Screen, error) {
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", bus, err)
	}
	opts := ssd1306.DefaultOpts
	opts.W = w
	opts.H = h
	opts.Sequential = sequential
	d, err := ssd1306.NewI2C(b, &opts)
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("ssd1306: %w", err)
	}
	s := New(d, face, x, y)
	s.bus = b
	return s, nil
}

// Show renders text in a fresh frame and sends it to the display.
func (s *Screen) Show(text string) error {
	img := image1bit.NewVerticalLSB(s.drawer.Bounds())
	Label{Text: text, X: s.x, Y: s.y, Face: s.face}.Render(img)
	if err := s.drawer.Draw(s.drawer.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("draw %s: %w", s.drawer, err)
	}
	s.shown = text
	return nil
}

// Text is what the display currently shows.
func (s *Screen) Text() string {
	return s.shown
}

// Halt blanks the display and releases the bus.
func (s *Screen) Halt() error {
	err := s.drawer.Halt()
	if s.bus != nil {
		if cerr := s.bus.Close(); err == nil {
			err = cerr
		}
		s.bus = nil
	}
	return err
}

func (s *Screen) String() string {
	return s.drawer.String()
}

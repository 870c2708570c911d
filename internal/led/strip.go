package led

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/devices/v3/screen1d"

	"github.com/coreman2200/funtimes-colorpicker/internal/model"
)

// SPIFreq is the SPI clock nrzled needs to produce the 800kHz WS2812 bit stream.
const SPIFreq = 2500 * physic.KiloHertz

// Strip is a row of addressable LEDs that all show the same colour.
// Fill only updates the frame buffer; nothing reaches the LEDs until Show.
type Strip struct {
	drawer display.Drawer
	port   spi.PortCloser
	frame  *image.NRGBA
	Spi    bool

	console bool
}

// New wraps any drawer whose bounds are one pixel high.
func New(d display.Drawer) *Strip {
	b := d.Bounds()
	return &Strip{
		drawer: d,
		frame:  image.NewNRGBA(image.Rect(0, 0, b.Dx(), 1)),
	}
}

// OpenSPI drives WS2812 LEDs from the named SPI port ("" for the first one).
func OpenSPI(port string, pixels int) (*Strip, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", pixels)
	}
	p, err := spireg.Open(port)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", port, err)
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      SPIFreq,
	})
	if err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	s := New(d)
	s.port = p
	s.Spi = true
	return s, nil
}

// NewConsole prints the strip to the terminal instead of driving LEDs.
func NewConsole(pixels int) *Strip {
	s := New(screen1d.New(&screen1d.Opts{X: pixels}))
	s.console = true
	return s
}

func (s *Strip) Len() int {
	return s.frame.Rect.Dx()
}

// Fill sets every pixel of the frame buffer to c.
func (s *Strip) Fill(c model.Color) {
	col := c.NRGBA()
	for x := 0; x < s.frame.Rect.Max.X; x++ {
		s.frame.SetNRGBA(x, 0, col)
	}
}

// Show flushes the frame buffer to the LEDs.
func (s *Strip) Show() error {
	if err := s.drawer.Draw(s.drawer.Bounds(), s.frame, image.Point{}); err != nil {
		return fmt.Errorf("draw %s: %w", s.drawer, err)
	}
	if s.console {
		fmt.Printf("\n")
	}
	return nil
}

// Halt turns the LEDs off and releases the port.
func (s *Strip) Halt() error {
	err := s.drawer.Halt()
	if s.port != nil {
		if cerr := s.port.Close(); err == nil {
			err = cerr
		}
		s.port = nil
	}
	return err
}

func (s *Strip) String() string {
	return s.drawer.String()
}

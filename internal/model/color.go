package model

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinChannel = 0
	MaxChannel = 255
)

// Step multipliers applied to encoder deltas: coarse while the button is
// released, fine while it is held.
const (
	DFLT_COARSE_STEP = 17
	DFLT_FINE_STEP   = 1
)

const (
	RED_OFFSET   uint8 = 0x10
	GREEN_OFFSET uint8 = 0x08
	BLUE_OFFSET  uint8 = 0x0
)

// Channel indexes into Color and Positions.
const (
	Red = iota
	Green
	Blue
	ChannelCount
)

// Color is the picked colour. Channels are kept within [MinChannel, MaxChannel].
type Color struct {
	R, G, B uint8
}

// Clamp adds diff*mul to value and saturates the result to [MinChannel, MaxChannel].
// Large operands are limited first so the product cannot overflow.
func Clamp(value, diff, mul int) int {
	diff = limit(diff)
	mul = limit(mul)

	v := value + diff*mul
	if v > MaxChannel {
		return MaxChannel
	}
	if v < MinChannel {
		return MinChannel
	}
	return v
}

// limit keeps the sign of n but caps its magnitude at 2*MaxChannel, which is
// still large enough to saturate any channel.
func limit(n int) int {
	const bound = 2 * MaxChannel
	if n > bound {
		return bound
	}
	if n < -bound {
		return -bound
	}
	return n
}

// Apply returns c with every channel moved by delta*mul, each channel saturating on its own.
func (c Color) Apply(delta Positions, mul int) Color {
	return Color{
		R: uint8(Clamp(int(c.R), clip(delta[Red]), mul)),
		G: uint8(Clamp(int(c.G), clip(delta[Green]), mul)),
		B: uint8(Clamp(int(c.B), clip(delta[Blue]), mul)),
	}
}

func clip(d int64) int {
	const bound = 2 * MaxChannel
	if d > bound {
		return bound
	}
	if d < -bound {
		return -bound
	}
	return int(d)
}

// Channel returns the value of channel i (Red, Green or Blue).
func (c Color) Channel(i int) uint8 {
	switch i {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	}
	return 0
}

// Hex formats the colour as six upper-case hex digits, e.g. "0A00FF".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// Packed returns the colour as 0xRRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<RED_OFFSET | uint32(c.G)<<GREEN_OFFSET | uint32(c.B)<<BLUE_OFFSET
}

func FromPacked(v uint32) Color {
	return Color{
		R: getcolor(v, RED_OFFSET),
		G: getcolor(v, GREEN_OFFSET),
		B: getcolor(v, BLUE_OFFSET),
	}
}

func getcolor(c uint32, off uint8) uint8 {
	var mask uint32 = 0xFF << off
	return uint8((c & mask) >> off)
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ParseColor accepts "RRGGBB", "#RRGGBB", "#RGB" or a note name from DefaultPalette.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty colour")
	}
	if nc, ok := DefaultPalette.Lookup(s); ok {
		return nc.Color, nil
	}

	h := s
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	cf, err := colorful.Hex(h)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

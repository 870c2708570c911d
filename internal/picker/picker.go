// Package picker turns encoder and button input into a colour and pushes it to
// the LED strip and the display.
package picker

import (
	"errors"
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-colorpicker/internal/model"
	"github.com/rs/zerolog"
)

type PositionReader interface {
	Position() int64
}

// ValueReader reports the button line; true is the released (pulled up) state.
type ValueReader interface {
	Value() bool
}

type Strip interface {
	Fill(c model.Color)
	Show() error
}

type Display interface {
	Show(text string) error
}

type Opts struct {
	Coarse   int // multiplier while the button reads true
	Fine     int // multiplier while the button reads false
	Interval time.Duration
	Initial  model.Color
	Logger   zerolog.Logger
}

var DefaultOpts = Opts{
	Coarse:   model.DFLT_COARSE_STEP,
	Fine:     model.DFLT_FINE_STEP,
	Interval: time.Millisecond,
	Logger:   zerolog.Nop(),
}

type Picker struct {
	encoders [model.ChannelCount]PositionReader
	button   ValueReader
	strip    Strip
	display  Display

	color model.Color
	last  model.Positions
	opts  Opts
	log   zerolog.Logger
}

// New takes the red, green and blue encoders in that order.
func New(encoders [model.ChannelCount]PositionReader, button ValueReader, strip Strip, display Display, opts *Opts) (*Picker, error) {
	for i, e := range encoders {
		if e == nil {
			return nil, fmt.Errorf("encoder %d is missing", i)
		}
	}
	if button == nil {
		return nil, errors.New("button is missing")
	}
	if strip == nil || display == nil {
		return nil, errors.New("an LED strip and a display are required")
	}
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Coarse <= 0 || o.Fine <= 0 {
		return nil, fmt.Errorf("step multipliers must be positive, got %d/%d", o.Coarse, o.Fine)
	}
	return &Picker{
		encoders: encoders,
		button:   button,
		strip:    strip,
		display:  display,
		color:    o.Initial,
		opts:     o,
		log:      o.Logger,
	}, nil
}

// Init takes the current encoder positions as the starting point and shows
// the initial colour.
func (p *Picker) Init() error {
	p.last = p.positions()
	p.log.Debug().
		Ints64("positions", p.last.Slice()).
		Str("hex", p.color.Hex()).
		Msg("start")
	return p.render()
}

// Step samples the inputs once. When no encoder moved it returns false without
// touching either output.
func (p *Picker) Step() (bool, error) {
	current := p.positions()
	if current == p.last {
		return false, nil
	}
	delta := current.Sub(p.last)

	mul := p.opts.Fine
	if p.button.Value() {
		mul = p.opts.Coarse
	}

	p.color = p.color.Apply(delta, mul)
	p.last = current

	p.log.Info().
		Ints64("positions", current.Slice()).
		Ints64("delta", delta.Slice()).
		Int("mul", mul).
		Str("hex", p.color.Hex()).
		Msg("update")

	return true, p.render()
}

func (p *Picker) Color() model.Color {
	return p.color
}

func (p *Picker) positions() model.Positions {
	var pos model.Positions
	for i, e := range p.encoders {
		pos[i] = e.Position()
	}
	return pos
}

func (p *Picker) render() error {
	p.strip.Fill(p.color)
	if err := p.strip.Show(); err != nil {
		return fmt.Errorf("led strip: %w", err)
	}
	if err := p.display.Show(p.color.Hex()); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

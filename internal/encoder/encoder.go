// Package encoder reads incremental rotary encoders wired to two GPIO inputs.
//
// Encoders are sampled by the caller: every call to Position reads both pins and
// advances the quadrature decoder, so a tight polling loop sees every transition
// without background goroutines.
package encoder

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

type Opts struct {
	Divisor  int
	Inverted bool
}

// Encoder is one rotary encoder on pins A and B, both pulled up.
type Encoder struct {
	name string
	a    gpio.PinIn
	b    gpio.PinIn
	dec  *Decoder
}

func New(name string, a, b gpio.PinIn, opts Opts) (*Encoder, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("encoder %s: missing pin", name)
	}
	for _, p := range []gpio.PinIn{a, b} {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("encoder %s: configure %s: %w", name, p, err)
		}
	}
	e := &Encoder{
		name: name,
		a:    a,
		b:    b,
		dec:  NewDecoder(opts.Divisor, opts.Inverted),
	}
	e.dec.Reset(e.levels())
	return e, nil
}

// Sample reads both pins once and advances the decoder.
func (e *Encoder) Sample() int {
	return e.dec.Update(e.levels())
}

// Position samples the pins and returns the cumulative detent count.
func (e *Encoder) Position() int64 {
	e.Sample()
	return e.dec.Position()
}

func (e *Encoder) String() string {
	return fmt.Sprintf("encoder{%s: %s,%s}", e.name, e.a, e.b)
}

func (e *Encoder) levels() (bool, bool) {
	return e.a.Read() == gpio.High, e.b.Read() == gpio.High
}

// Package button reads a momentary push button wired between a GPIO input and
// ground, with the input pulled up.
package button

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Button reads high while released and low while pressed.
type Button struct {
	pin gpio.PinIn
}

func New(pin gpio.PinIn) (*Button, error) {
	if pin == nil {
		return nil, fmt.Errorf("button: missing pin")
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("button: configure %s: %w", pin, err)
	}
	return &Button{pin: pin}, nil
}

// Value is the electrical level of the input: true (high) means released.
func (b *Button) Value() bool {
	return b.pin.Read() == gpio.High
}

func (b *Button) Pressed() bool {
	return !b.Value()
}

func (b *Button) String() string {
	return fmt.Sprintf("button{%s}", b.pin)
}

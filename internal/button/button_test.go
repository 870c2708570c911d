package button

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestReleasedReadsHigh(t *testing.T) {
	p := &gpiotest.Pin{N: "BTN", Num: 5, L: gpio.High}
	b, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, gpio.PullUp, p.Pull())
	assert.True(t, b.Value())
	assert.False(t, b.Pressed())
}

func TestPressedReadsLow(t *testing.T) {
	p := &gpiotest.Pin{N: "BTN", Num: 5}
	b, err := New(p)
	require.NoError(t, err)

	require.NoError(t, p.Out(gpio.Low))
	assert.False(t, b.Value())
	assert.True(t, b.Pressed())

	require.NoError(t, p.Out(gpio.High))
	assert.False(t, b.Pressed())
}

func TestNewRejectsMissingPin(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// clockwise is one detent from rest with A leading B. Levels are {A, B}.
var clockwise = [][2]gpio.Level{
	{gpio.Low, gpio.High},
	{gpio.Low, gpio.Low},
	{gpio.High, gpio.Low},
	{gpio.High, gpio.High},
}

var counterClockwise = [][2]gpio.Level{
	{gpio.High, gpio.Low},
	{gpio.Low, gpio.Low},
	{gpio.Low, gpio.High},
	{gpio.High, gpio.High},
}

func newPins() (*gpiotest.Pin, *gpiotest.Pin) {
	return &gpiotest.Pin{N: "A", Num: 1, L: gpio.High}, &gpiotest.Pin{N: "B", Num: 2, L: gpio.High}
}

func turn(t *testing.T, e *Encoder, a, b *gpiotest.Pin, steps [][2]gpio.Level) {
	t.Helper()
	for _, s := range steps {
		require.NoError(t, a.Out(s[0]))
		require.NoError(t, b.Out(s[1]))
		e.Sample()
	}
}

func TestNewConfiguresPullUps(t *testing.T) {
	a, b := newPins()
	e, err := New("red", a, b, Opts{})
	require.NoError(t, err)

	assert.Equal(t, gpio.PullUp, a.Pull())
	assert.Equal(t, gpio.PullUp, b.Pull())
	assert.Equal(t, int64(0), e.Position())
}

func TestNewRejectsMissingPin(t *testing.T) {
	a, _ := newPins()
	_, err := New("red", a, nil, Opts{})
	assert.Error(t, err)
}

func TestPositionCountsDetents(t *testing.T) {
	a, b := newPins()
	e, err := New("green", a, b, Opts{})
	require.NoError(t, err)

	turn(t, e, a, b, clockwise)
	assert.Equal(t, int64(1), e.Position())

	turn(t, e, a, b, clockwise)
	turn(t, e, a, b, clockwise)
	assert.Equal(t, int64(3), e.Position())

	turn(t, e, a, b, counterClockwise)
	assert.Equal(t, int64(2), e.Position())
}

func TestInvertedSwapsDirection(t *testing.T) {
	a, b := newPins()
	e, err := New("blue", a, b, Opts{Inverted: true})
	require.NoError(t, err)

	turn(t, e, a, b, clockwise)
	assert.Equal(t, int64(-1), e.Position())
}

func TestPartialTurnDoesNotCount(t *testing.T) {
	a, b := newPins()
	e, err := New("red", a, b, Opts{})
	require.NoError(t, err)

	turn(t, e, a, b, clockwise[:3])
	assert.Equal(t, int64(0), e.Position())

	// back to rest the way it came
	turn(t, e, a, b, [][2]gpio.Level{
		{gpio.Low, gpio.Low},
		{gpio.Low, gpio.High},
		{gpio.High, gpio.High},
	})
	assert.Equal(t, int64(0), e.Position())
}

func TestDecoderIgnoresIllegalTransitions(t *testing.T) {
	d := NewDecoder(0, false)
	assert.Equal(t, DefaultDivisor, d.Divisor)

	d.Reset(true, true)
	assert.Equal(t, 0, d.Update(false, false))
	assert.Equal(t, 0, d.Update(true, true))
	assert.Equal(t, int64(0), d.Position())
}

func TestDecoderDivisor(t *testing.T) {
	d := NewDecoder(1, false)
	d.Reset(true, true)

	assert.Equal(t, 1, d.Update(false, true))
	assert.Equal(t, 1, d.Update(false, false))
	assert.Equal(t, int64(2), d.Position())
}

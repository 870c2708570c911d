package model_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	. "github.com/coreman2200/funtimes-colorpicker/internal/model"
)

var TestClampSaturates = []struct {
	Value  int
	Diff   int
	Mul    int
	Expect int
}{
	{250, 10, 17, 255},
	{5, -1, 17, 0},
	{100, 0, 1, 100},
	{0, -5, 17, 0},
	{0, 1, 17, 17},
	{17, -1, 1, 16},
	{255, 1, 1, 255},
	{128, 1 << 62, 17, 255},
	{128, -(1 << 62), 1 << 62, 0},
}

var TestHexIsExpectedString = []struct {
	Color  Color
	Expect string
}{
	{Color{0, 0, 0}, "000000"},
	{Color{255, 255, 255}, "FFFFFF"},
	{Color{10, 0, 255}, "0A00FF"},
	{Color{0x22, 0x00, 0xFF}, "2200FF"},
}

func TestClamp(t *testing.T) {
	for k, v := range TestClampSaturates {
		t.Run("Given clamp "+strconv.Itoa(k), func(t *testing.T) {
			assert.Equal(t, v.Expect, Clamp(v.Value, v.Diff, v.Mul))
		})
	}
}

func TestClampStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(MinChannel, MaxChannel).Draw(t, "value")
		diff := rapid.Int().Draw(t, "diff")
		mul := rapid.Int().Draw(t, "mul")

		got := Clamp(v, diff, mul)
		if got < MinChannel || got > MaxChannel {
			t.Fatalf("Clamp(%d, %d, %d) = %d, out of range", v, diff, mul, got)
		}
	})
}

func TestClampMovesTowardsDelta(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.IntRange(MinChannel, MaxChannel).Draw(t, "value")
		diff := rapid.IntRange(-1000, 1000).Draw(t, "diff")
		mul := rapid.SampledFrom([]int{1, 17}).Draw(t, "mul")

		got := Clamp(v, diff, mul)
		switch {
		case diff > 0 && got < v:
			t.Fatalf("Clamp(%d, %d, %d) = %d decreased", v, diff, mul, got)
		case diff < 0 && got > v:
			t.Fatalf("Clamp(%d, %d, %d) = %d increased", v, diff, mul, got)
		case diff == 0 && got != v:
			t.Fatalf("Clamp(%d, 0, %d) = %d changed", v, mul, got)
		}
	})
}

func TestHex(t *testing.T) {
	for _, v := range TestHexIsExpectedString {
		t.Run("Given "+v.Expect, func(t *testing.T) {
			assert.Equal(t, v.Expect, v.Color.Hex())
			assert.Len(t, v.Color.Hex(), 6)
		})
	}
}

func TestApplyChannelsIndependently(t *testing.T) {
	c := Color{R: 250, G: 5, B: 100}
	got := c.Apply(Positions{10, -1, 0}, 17)
	assert.Equal(t, Color{R: 255, G: 0, B: 100}, got)

	got = got.Apply(Positions{-1, 2, 3}, 1)
	assert.Equal(t, Color{R: 254, G: 2, B: 103}, got)
}

func TestPackedMatchesChannels(t *testing.T) {
	c := Color{R: 0x12, G: 0x34, B: 0x56}
	assert.Equal(t, uint32(0x123456), c.Packed())
	assert.Equal(t, c, FromPacked(0x123456))
	assert.Equal(t, uint8(0x34), c.Channel(Green))
}

func TestParseColor(t *testing.T) {
	for in, want := range map[string]Color{
		"0A00FF":  {10, 0, 255},
		"#0a00ff": {10, 0, 255},
		"#fff":    {255, 255, 255},
		"C":       {0xFF, 0x00, 0x00},
		"Db":      {0xCC, 0x11, 0x00},
		"g#":      {0x21, 0x61, 0xB0},
		"A#/Bb":   {0x86, 0x0E, 0x90},
	} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseColor("")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestPositionsSub(t *testing.T) {
	last := Positions{3, -2, 10}
	cur := Positions{5, -4, 10}
	assert.Equal(t, Positions{2, -2, 0}, cur.Sub(last))
	assert.True(t, cur.Sub(cur).IsZero())
	assert.Equal(t, []int64{5, -4, 10}, cur.Slice())
}

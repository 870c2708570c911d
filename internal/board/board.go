// Package board brings up the colour picker hardware from a config.
package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-colorpicker/internal/button"
	"github.com/coreman2200/funtimes-colorpicker/internal/config"
	"github.com/coreman2200/funtimes-colorpicker/internal/diagnostics"
	"github.com/coreman2200/funtimes-colorpicker/internal/encoder"
	"github.com/coreman2200/funtimes-colorpicker/internal/led"
	"github.com/coreman2200/funtimes-colorpicker/internal/model"
	"github.com/coreman2200/funtimes-colorpicker/internal/screen"
)

var ErrUnknownPin = errors.New("unknown pin")

// PinLookup resolves a pin name such as "GPIO17" or "17".
type PinLookup func(name string) gpio.PinIO

type Board struct {
	Encoders    [model.ChannelCount]*encoder.Encoder
	Button      *button.Button
	Strip       *led.Strip
	Screen      *screen.Screen
	Diagnostics diagnostics.List
}

// Open initialises the host drivers and every device named in cfg. The LED
// strip falls back to the console when no SPI port can be opened; any other
// failure is returned.
func Open(cfg *config.Config, logger zerolog.Logger) (*Board, error) {
	state, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	for _, f := range state.Failed {
		logger.Debug().Str("driver", f.D.String()).Err(f.Err).Msg("driver failed to load")
	}

	b := &Board{}
	b.Encoders, b.Button, err = Inputs(cfg, gpioreg.ByName)
	if err != nil {
		return nil, err
	}

	b.Strip = b.openStrip(cfg.LED)
	logger.Info().Str("strip", b.Strip.String()).Int("pixels", b.Strip.Len()).Msg("LED strip ready")

	face, err := screen.LoadFace(cfg.Display.Font, cfg.Display.FontSize)
	if err != nil {
		_ = b.Strip.Halt()
		return nil, err
	}
	d := cfg.Display
	b.Screen, err = screen.OpenI2C(d.I2C, d.Width, d.Height, d.Sequential, face, d.LabelX, d.LabelY)
	if err != nil {
		_ = b.Strip.Halt()
		return nil, err
	}
	logger.Info().Str("screen", b.Screen.String()).Msg("display ready")
	return b, nil
}

// Inputs configures the three encoders (red, green, blue) and the button.
func Inputs(cfg *config.Config, lookup PinLookup) ([model.ChannelCount]*encoder.Encoder, *button.Button, error) {
	var encs [model.ChannelCount]*encoder.Encoder
	wiring := [model.ChannelCount]struct {
		name string
		pins config.Encoder
	}{
		{"red", cfg.Encoders.Red},
		{"green", cfg.Encoders.Green},
		{"blue", cfg.Encoders.Blue},
	}
	for i, w := range wiring {
		a, err := pin(lookup, w.pins.A)
		if err != nil {
			return encs, nil, fmt.Errorf("encoder %s: %w", w.name, err)
		}
		b, err := pin(lookup, w.pins.B)
		if err != nil {
			return encs, nil, fmt.Errorf("encoder %s: %w", w.name, err)
		}
		encs[i], err = encoder.New(w.name, a, b, encoder.Opts{
			Divisor:  cfg.Encoders.Divisor,
			Inverted: w.pins.Inverted,
		})
		if err != nil {
			return encs, nil, err
		}
	}

	p, err := pin(lookup, cfg.Button)
	if err != nil {
		return encs, nil, fmt.Errorf("button: %w", err)
	}
	btn, err := button.New(p)
	if err != nil {
		return encs, nil, err
	}
	return encs, btn, nil
}

func pin(lookup PinLookup, name string) (gpio.PinIO, error) {
	p := lookup(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPin, name)
	}
	return p, nil
}

func (b *Board) openStrip(cfg config.LED) *led.Strip {
	if cfg.Sim {
		b.Diagnostics.Add(diagnostics.Diagnostic{
			Severity: diagnostics.Info,
			Code:     "led.sim",
			Summary:  "LED strip simulated on the console",
			Evidence: map[string]any{"pixels": cfg.Pixels},
		})
		return led.NewConsole(cfg.Pixels)
	}
	s, err := led.OpenSPI(cfg.SPI, cfg.Pixels)
	if err == nil {
		return s
	}
	b.Diagnostics.Add(diagnostics.Diagnostic{
		Severity:       diagnostics.Warn,
		Code:           "led.no_spi",
		Summary:        "failed to find a SPI port, printing at the console",
		Detail:         err.Error(),
		LikelyCauses:   []string{"SPI is disabled in the boot config", "the user cannot open /dev/spidev*"},
		SuggestedFixes: []string{"enable dtparam=spi=on", "add the user to the spi group"},
		Evidence:       map[string]any{"port": cfg.SPI, "pixels": cfg.Pixels},
	})
	return led.NewConsole(cfg.Pixels)
}

// Close turns the LEDs and the display off and releases their buses.
func (b *Board) Close() error {
	var errs []error
	if b.Strip != nil {
		errs = append(errs, b.Strip.Halt())
	}
	if b.Screen != nil {
		errs = append(errs, b.Screen.Halt())
	}
	return errors.Join(errs...)
}

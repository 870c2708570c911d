package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-colorpicker/internal/model"
)

type Encoder struct {
	A        string `yaml:"a" env:"A,overwrite"`
	B        string `yaml:"b" env:"B,overwrite"`
	Inverted bool   `yaml:"inverted" env:"INVERTED,overwrite"`
}

type Encoders struct {
	Red     Encoder `yaml:"red" env:",prefix=RED_"`
	Green   Encoder `yaml:"green" env:",prefix=GREEN_"`
	Blue    Encoder `yaml:"blue" env:",prefix=BLUE_"`
	Divisor int     `yaml:"divisor" env:"ENCODER_DIVISOR,overwrite"`
}

type Step struct {
	Coarse int `yaml:"coarse" env:"STEP_COARSE,overwrite"` // button released
	Fine   int `yaml:"fine" env:"STEP_FINE,overwrite"`     // button pressed
}

type LED struct {
	SPI    string `yaml:"spi" env:"LED_SPI,overwrite"` // "" is the first SPI port
	Pixels int    `yaml:"pixels" env:"LED_PIXELS,overwrite"`
	Sim    bool   `yaml:"sim" env:"LED_SIM,overwrite"`
}

type Display struct {
	I2C    string `yaml:"i2c" env:"DISPLAY_I2C,overwrite"` // "" is the first I2C bus
	Width  int    `yaml:"width" env:"DISPLAY_WIDTH,overwrite"`
	Height int    `yaml:"height" env:"DISPLAY_HEIGHT,overwrite"`
	// Sequential COM pin wiring, used by 128x32 panels. 128x64 panels use the
	// alternative layout and need false.
	Sequential bool    `yaml:"sequential" env:"DISPLAY_SEQUENTIAL,overwrite"`
	LabelX     int     `yaml:"label_x" env:"DISPLAY_LABEL_X,overwrite"`
	LabelY     int     `yaml:"label_y" env:"DISPLAY_LABEL_Y,overwrite"`
	Font       string  `yaml:"font" env:"DISPLAY_FONT,overwrite"` // OpenType/TrueType file, "" for built-in
	FontSize   float64 `yaml:"font_size" env:"DISPLAY_FONT_SIZE,overwrite"`
}

type Config struct {
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL,overwrite"`
	PollInterval time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL,overwrite"`
	InitialColor string        `yaml:"initial_color" env:"INITIAL_COLOR,overwrite"` // hex or note name

	Encoders Encoders `yaml:"encoders"`
	Button   string   `yaml:"button" env:"BUTTON,overwrite"`
	Step     Step     `yaml:"step"`
	LED      LED      `yaml:"led"`
	Display  Display  `yaml:"display"`
}

// EnvPrefix is prepended to every environment override, e.g. COLORPICKER_BUTTON.
const EnvPrefix = "COLORPICKER_"

// Default is the wiring of the reference board.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		PollInterval: time.Millisecond,
		InitialColor: "000000",
		Encoders: Encoders{
			Red:     Encoder{A: "GPIO17", B: "GPIO27"},
			Green:   Encoder{A: "GPIO22", B: "GPIO23"},
			Blue:    Encoder{A: "GPIO24", B: "GPIO25"},
			Divisor: 4,
		},
		Button: "GPIO5",
		Step:   Step{Coarse: model.DFLT_COARSE_STEP, Fine: model.DFLT_FINE_STEP},
		LED:    LED{Pixels: 3},
		Display: Display{
			Width:      128,
			Height:     32,
			Sequential: true,
			LabelX:     6,
			LabelY:     16,
			FontSize:   12,
		},
	}
}

// Load reads path over the defaults. A missing file is an error; callers that
// treat the file as optional should check os.IsNotExist.
func Load(path string) (*Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// ApplyEnv overrides fields from COLORPICKER_* environment variables.
func (c *Config) ApplyEnv(ctx context.Context) error {
	return c.applyEnv(ctx, envconfig.OsLookuper())
}

func (c *Config) applyEnv(ctx context.Context, l envconfig.Lookuper) error {
	if err := envconfig.ProcessWith(ctx, c, envconfig.PrefixLookuper(EnvPrefix, l)); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// Validate rejects settings the hardware cannot run with.
func (c *Config) Validate() error {
	for _, e := range []struct {
		name string
		pins Encoder
	}{
		{"red", c.Encoders.Red},
		{"green", c.Encoders.Green},
		{"blue", c.Encoders.Blue},
	} {
		if e.pins.A == "" || e.pins.B == "" {
			return fmt.Errorf("encoder %s: both pins are required", e.name)
		}
	}
	if c.Button == "" {
		return fmt.Errorf("button pin is required")
	}
	if c.Encoders.Divisor <= 0 {
		return fmt.Errorf("encoder divisor must be positive, got %d", c.Encoders.Divisor)
	}
	if c.Step.Coarse <= 0 || c.Step.Fine <= 0 {
		return fmt.Errorf("step multipliers must be positive, got %d/%d", c.Step.Coarse, c.Step.Fine)
	}
	if c.LED.Pixels <= 0 {
		return fmt.Errorf("invalid LED count: %d", c.LED.Pixels)
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative")
	}
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-colorpicker/internal/board"
	"github.com/coreman2200/funtimes-colorpicker/internal/config"
	"github.com/coreman2200/funtimes-colorpicker/internal/model"
	"github.com/coreman2200/funtimes-colorpicker/internal/picker"
)

func main() {
	var (
		configPath = flag.String("config", "colorpicker.yaml", "path to the YAML config (optional)")
		logLevel   = flag.String("log-level", "", "trace | debug | info | warn | error (overrides config)")
		sim        = flag.Bool("sim", false, "print the LED strip at the console instead of driving SPI")
		notes      = flag.Bool("notes", false, "print the note palette and exit")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if *notes {
		for _, nc := range model.DefaultPalette {
			fmt.Printf("%-6s %s\n", nc.Note, nc.Color)
		}
		return
	}

	// ---- Config: defaults < yaml < environment < flags ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		log.Debug().Str("path", *configPath).Msg("no config file; using defaults")
	}
	if err := cfg.ApplyEnv(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *sim {
		cfg.LED.Sim = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("log level")
	}
	zerolog.SetGlobalLevel(level)

	initial, err := model.ParseColor(cfg.InitialColor)
	if err != nil {
		log.Fatal().Err(err).Msg("initial colour")
	}

	// ---- Hardware ----
	b, err := board.Open(cfg, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("board")
	}
	b.Diagnostics.Log(log.Logger)

	p, err := picker.New(
		[model.ChannelCount]picker.PositionReader{b.Encoders[model.Red], b.Encoders[model.Green], b.Encoders[model.Blue]},
		b.Button, b.Strip, b.Screen,
		&picker.Opts{
			Coarse:   cfg.Step.Coarse,
			Fine:     cfg.Step.Fine,
			Interval: cfg.PollInterval,
			Initial:  initial,
			Logger:   log.Logger.With().Str("component", "picker").Logger(),
		})
	if err != nil {
		_ = b.Close()
		log.Fatal().Err(err).Msg("picker")
	}

	// ---- Run until SIGINT/SIGTERM ----
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("color", initial.String()).Dur("poll", cfg.PollInterval).Msg("color picker running")
	err = p.Run(ctx)
	if cerr := b.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("close board")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("picker stopped")
	}
	log.Info().Str("color", p.Color().String()).Msg("shutting down")
}

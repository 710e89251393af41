// cmd/lander/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/opd-ai/go-lander/pkg/config"
	"github.com/opd-ai/go-lander/pkg/engine"
	"github.com/opd-ai/go-lander/pkg/entity"
	"github.com/opd-ai/go-lander/pkg/event"
	"github.com/opd-ai/go-lander/pkg/input"
	"github.com/opd-ai/go-lander/pkg/logging"
	"github.com/opd-ai/go-lander/pkg/render"
	engorender "github.com/opd-ai/go-lander/pkg/render/engo"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	defaults := config.DefaultConfig()
	flags := pflag.NewFlagSet("lander", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "Path to a JSON configuration file")
	writeDefault := flags.Bool("write-config", false, "Write the default configuration to --config and exit")
	backend := flags.StringP("renderer", "r", "engo", "Renderer: engo, terminal or null")
	script := flags.String("script", "", `Scripted input replacing the keyboard, e.g. "up*120,up+right*60,none*30"`)
	flags.String("craft", defaults.Craft.Type, "Craft type: helicopter or rocket")
	flags.Bool("fullscreen", defaults.Display.Fullscreen, "Run the window fullscreen (engo only)")
	flags.String("log-file", defaults.Log.File, "Append logs to this file instead of stdout")
	flags.String("log-level", defaults.Log.Level, "Log level: debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *writeDefault {
		if err := config.SaveConfig(defaults, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			return 1
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return 0
	}

	cfg, err := config.LoadWithFlags(*configPath, flags)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration",
			logging.WrapError(err, "loading %q", *configPath),
		)
		return 1
	}

	logger, closeLog, err := newLogger(cfg, *backend)
	if err != nil {
		logging.NewLogger().Error(ctx, "Failed to open log file", err,
			"log_file", cfg.Log.File,
		)
		return 1
	}
	defer closeLog()

	var keys *input.Script
	if *script != "" {
		if keys, err = input.ParseScript(*script); err != nil {
			logger.Error(ctx, "Failed to parse input script", err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewEventBus()
	summary := watchGame(bus)
	defer summary.Close()

	play := func(ctx context.Context, r entity.Renderer, window entity.InputSource) error {
		src := window
		if keys != nil {
			src = input.Overlay{Keys: keys, Window: window}
		}
		if src == nil {
			return errors.New("the null renderer needs --script")
		}

		game, err := engine.NewGame(cfg, r, src, engine.WithLogger(logger), engine.WithEventBus(bus))
		if err != nil {
			return err
		}
		_, err = game.Run(ctx)
		return err
	}

	logger.Info(ctx, "Starting lander",
		"renderer", *backend,
		"craft", cfg.Craft.Type,
		"scripted", keys != nil,
	)

	switch *backend {
	case "engo":
		b := engorender.NewBackend(cfg, logger)
		err = b.Run(ctx, func(ctx context.Context) error {
			return play(ctx, b.Renderer(), b.Input())
		})
	case "terminal":
		var term *render.TerminalRenderer
		term, err = render.NewTerminal(cfg.ArenaBounds())
		if err != nil {
			break
		}
		err = play(ctx, term, term)
		term.Close()
	case "null":
		err = play(ctx, render.NewNullRenderer(logger), nil)
	default:
		err = fmt.Errorf("unknown renderer %q", *backend)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Lander failed",
			logging.WrapError(err, "%s renderer", *backend),
		)
		return 1
	}

	summary.Log(ctx, logger)
	return 0
}

// newLogger builds the logger from the log settings. The terminal renderer owns
// stdout, so without a log file it logs nowhere.
func newLogger(cfg *config.GameConfig, backend string) (*logging.Logger, func() error, error) {
	level := logging.ResolveLevel(cfg.Log.Level)
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logging.NewLoggerWithWriter(f, level), f.Close, nil
	case backend == "terminal":
		return logging.NewNopLogger(), func() error { return nil }, nil
	default:
		return logging.NewLoggerWithWriter(os.Stdout, level), func() error { return nil }, nil
	}
}

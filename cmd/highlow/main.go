package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/palemoky/high-low/internal/config"
	"github.com/palemoky/high-low/internal/console"
	"github.com/palemoky/high-low/internal/deck"
	"github.com/palemoky/high-low/internal/game"
	"github.com/palemoky/high-low/internal/logger"
	"github.com/palemoky/high-low/internal/sound"
	"github.com/palemoky/high-low/internal/ui"
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err)
		if path := logger.GetLogPath(); path != "" {
			pterm.Info.Printfln("Details in %s", path)
		}
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	mode := flag.String("mode", "", "play mode: manual or auto")
	seed := flag.Uint64("seed", 0, "shuffle seed, 0 for random")
	tui := flag.Bool("tui", false, "use the full-screen terminal UI")
	delay := flag.Duration("delay", 0, "pause between automatic deals")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg, err = config.Default(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	applyFlags(cfg, *mode, *seed, *tui, *delay)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sessionID := uuid.NewString()
	if err := logger.Init(logger.Options{Dir: cfg.Log.Dir, MaxSizeMB: cfg.Log.MaxSizeMB, SessionID: sessionID[:8]}); err != nil {
		logger.Discard()
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()
	logger.LogInfo("session %s starting: mode=%s seed=%d tui=%v", sessionID, cfg.Game.Mode, cfg.Game.Seed, cfg.UI.TUI)

	if !cfg.UI.ColorEnabled() {
		pterm.DisableColor()
	}

	var player sound.Player = sound.Silent{}
	if cfg.Sound.Enabled {
		sm := sound.NewSoundManager(cfg.Sound.Dir)
		if err := sm.Init(); err != nil {
			logger.LogError("sound disabled: %v", err)
		} else {
			defer sm.Close()
			player = sm
		}
	}

	d := deck.New(nil)
	if cfg.Game.Seed != 0 {
		d = deck.NewSeeded(cfg.Game.Seed)
	}
	g := game.New(d)
	auto := cfg.Game.Mode == config.ModeAuto

	if cfg.UI.TUI {
		model := ui.NewModel(g, ui.Options{Auto: auto, AutoDelay: cfg.Game.AutoDelayDuration(), Sound: player})
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run terminal UI: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(g, os.Stdin, os.Stdout,
		console.WithSound(player),
		console.WithDelay(cfg.Game.AutoDelayDuration()))

	if auto {
		err = c.RunAuto(ctx)
	} else {
		err = c.RunManual(ctx)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cfg *config.Config, mode string, seed uint64, tui bool, delay time.Duration) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Game.Mode = mode
		case "seed":
			cfg.Game.Seed = seed
		case "tui":
			cfg.UI.TUI = tui
		case "delay":
			cfg.Game.AutoDelay = int(delay / time.Millisecond)
		}
	})
}

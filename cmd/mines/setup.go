package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/assets"
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
)

// loadSetup reads the configuration and applies the board flags shared by
// play and serve.
func loadSetup(logger *log.Logger, width, height int) (tui.Setup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Setup{}, err
	}

	if flagDifficulty != "" {
		if _, err := cfg.ApplyPreset(flagDifficulty); err != nil {
			return tui.Setup{}, err
		}
	}

	setup := tui.Setup{
		Config: cfg,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}

	if flagLayout != "" {
		layout, err := config.LoadLayout(flagLayout)
		if err != nil {
			return tui.Setup{}, err
		}
		setup.Layout = &layout
	}

	if cfg.Tile.Sheet != "" {
		if err := assets.LoadTileSheet(cfg.Tile.Sheet); err != nil {
			logger.Warn("could not load tile sheet, using built-in tiles", "error", err)
		}
	}

	// Surface config mistakes before the terminal switches screens.
	if _, err := cfg.TileTheme(); err != nil {
		return tui.Setup{}, fmt.Errorf("invalid theme: %w", err)
	}
	if _, _, err := cfg.Colors(); err != nil {
		return tui.Setup{}, fmt.Errorf("invalid theme: %w", err)
	}
	return setup, nil
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mines/internal/assets"
	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/game"
	"github.com/vovakirdan/tui-mines/internal/render"
)

// Setup collects what is needed to start a game from configuration.
// The same Setup serves the local terminal and every SSH session.
type Setup struct {
	Config config.Config
	// Layout, if non-nil, replaces the active preset with a fixed board.
	Layout  *config.Layout
	Sounds  core.SoundPlayer
	Results game.ResultSaver
	Logger  *log.Logger
	Runtime core.RuntimeConfig
}

// Background returns the configured canvas color, or black if invalid.
func (s Setup) Background() core.RGBA {
	bg, _, err := s.Config.Colors()
	if err != nil {
		return core.Black
	}
	return bg
}

// NewGame builds a game from the setup.
func (s Setup) NewGame() (*game.Game, error) {
	theme, err := s.Config.TileTheme()
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	bg, text, err := s.Config.Colors()
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	opts := game.Options{
		TileW:      s.Config.Tile.Width,
		TileH:      s.Config.Tile.Height,
		Theme:      theme,
		Background: bg,
		Text:       text,
		Seed:       s.Runtime.Seed,
		Sounds:     s.Sounds,
		Fonts:      render.NewFonts(s.Config.Tile.Font, text),
		Texture:    assets.Lookup(assets.TilesName),
		Results:    s.Results,
		Logger:     s.Logger,
	}

	if s.Layout != nil {
		opts.Preset = s.Layout.Name
		opts.Layout = s.Layout.Rows
	} else {
		p, err := s.Config.Active()
		if err != nil {
			return nil, err
		}
		opts.Preset = p.Name
		opts.Width, opts.Height, opts.Mines = p.Width, p.Height, p.Mines
	}

	g, err := game.New(opts)
	if err != nil {
		return nil, err
	}
	if s.Runtime.ScreenW > 0 && s.Runtime.ScreenH > 0 {
		g.Resize(s.Runtime.ScreenW, s.Runtime.ScreenH)
	}
	return g, nil
}

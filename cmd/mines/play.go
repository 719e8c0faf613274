package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/audio"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagSound   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a board",
	Long: `Start a game in the terminal. Needs a terminal with mouse support.

Controls:
  Left click   - Reveal
  Right click  - Flag / question mark / clear
  R            - New board
  Enter        - Play again (after the game ends)
  B/Esc        - Hide the result panel
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty is a preset name from the config (beginner, intermediate,
expert) or a custom board written WxH/M.

Examples:
  mines play
  mines play --difficulty expert
  mines play --difficulty 24x14/60 --seed 42
  mines play --layout ./puzzles/corners.yaml
  mines play --config ./my-mines.yaml --sound=false`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Board preset name or WxH/M")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to a fixed board layout YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound cues (default from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closeLog, err := newFileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	setup, err := loadSetup(logger, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sound := setup.Config.Audio.Enabled
	if cmd.Flags().Changed("sound") {
		sound = flagSound
	}
	setup.Sounds = audio.Silent{}
	if sound {
		player := audio.NewPlayer(setup.Config.Audio.Volume)
		if err := player.Start(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		} else {
			defer player.Close()
			setup.Sounds = player
		}
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results will not be saved", "error", err)
	} else {
		setup.Results = store
	}

	g, err := setup.NewGame()
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(g, setup.Runtime, setup.Background())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newFileLogger logs to path at debug level, or discards everything when
// path is empty. The terminal belongs to the game while it runs.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long: `Shows the board presets from the active configuration.

Use --dump-config to print the default config file as a starting point for
~/.mines/config.yaml.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

var flagDumpConfig bool

func init() {
	presetsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	presetsCmd.Flags().BoolVar(&flagDumpConfig, "dump-config", false, "Print the default config file and exit")
}

func runPresets(_ *cobra.Command, _ []string) {
	if flagDumpConfig {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(cfg.Board.Presets) == 0 {
		fmt.Println("No presets configured.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	maxLen := len("Name")
	for _, p := range cfg.Board.Presets {
		maxLen = max(maxLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxLen, "Name", "Size", "Mines")
	fmt.Printf("  %-*s  %-7s  %s\n", maxLen, "----", "----", "-----")
	for _, p := range cfg.Board.Presets {
		marker := ""
		if p.Name == cfg.Board.Preset {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-7s  %d%s\n", maxLen, p.Name, fmt.Sprintf("%dx%d", p.Width, p.Height), p.Mines, marker)
	}

	fmt.Println()
	fmt.Println("Run 'mines play --difficulty <name>' to play, or pass WxH/M for a custom board.")
}

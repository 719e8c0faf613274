// mines is a minesweeper for the terminal, played with the mouse.
//
// Usage:
//
//	mines play               - Play a board
//	mines presets            - List board presets
//	mines serve              - Start SSH server for remote play
//	mines scores [preset]    - Show best times
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.mines/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper for the terminal. Left click reveals a cell, right click
cycles flag and question mark. The first click is never a mine.

Available commands:
  play     - Play a board
  presets  - Show board presets
  serve    - Start SSH server for remote play
  scores   - View best times

Examples:
  mines play
  mines play --difficulty expert
  mines play --difficulty 20x12/45
  mines serve --ssh :2222
  mines scores beginner`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mines/results.db", "Path to results database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

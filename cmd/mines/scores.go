package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagPlain bool
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show best times",
	Long: `Display best times and win rates.

Without arguments an interactive scoreboard opens with one tab per preset.
With --plain the results are printed instead: a summary of every preset,
or the top 10 times of one preset. --reset deletes a preset's results.

Examples:
  mines scores
  mines scores --plain
  mines scores expert --plain
  mines scores custom-20x12/45 --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all results of the given preset")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Error: --reset needs a preset")
			os.Exit(1)
		}
		if err := store.ClearResults(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results for %s deleted.\n", args[0])
		return
	}

	if !flagPlain {
		cfg, err := config.Load("")
		if err != nil {
			cfg = config.DefaultConfig()
		}
		presets := cfg.PresetNames()
		if len(args) == 1 {
			presets = append([]string{args[0]}, without(presets, args[0])...)
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, presets, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 1 {
		printBestTimes(store, args[0])
		return
	}
	printSummary(store)
}

func printBestTimes(store *storage.Store, preset string) {
	results, err := store.BestTimes(preset, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", preset)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play --difficulty %s' to set the first time!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-9s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-9s  %-9s  %s\n", "----", "----", "-----", "----")
	for i, r := range results {
		board := fmt.Sprintf("%dx%d/%d", r.Width, r.Height, r.Mines)
		fmt.Printf("  %-4d  %-9s  %-9s  %s\n", i+1, tui.FormatDuration(r.Duration), board, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.PresetStats(preset); err == nil {
		fmt.Println()
		fmt.Println(tui.StatsLine(st))
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	maxLen := len("Preset")
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	fmt.Printf("  %-*s  %6s  %4s  %5s  %s\n", maxLen, "Preset", "Played", "Won", "Rate", "Best")
	fmt.Printf("  %-*s  %6s  %4s  %5s  %s\n", maxLen, "------", "------", "---", "----", "----")
	for _, n := range names {
		st := all[n]
		best := "-"
		if st.BestTime > 0 {
			best = tui.FormatDuration(st.BestTime)
		}
		fmt.Printf("  %-*s  %6d  %4d  %4.0f%%  %s\n", maxLen, n, st.Played, st.Won, st.WinRate()*100, best)
	}
}

func without(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

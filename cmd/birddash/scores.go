package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/birddash/birddash/internal/platform/tui"
	"github.com/birddash/birddash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the recorded runs.

Opens an interactive scoreboard when attached to a terminal; use
--plain for script-friendly text output.

Examples:
  birddash scores
  birddash scores --plain --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many runs to show (plain output)")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain text table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History - Birddash")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'birddash play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %s\n", "Rank", "Score", "Outcome", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %s\n", "----", "-----", "-------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-9s  %-7.1fs  %s\n",
			i+1, r.Score, r.Outcome, r.DurationMs/1000, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

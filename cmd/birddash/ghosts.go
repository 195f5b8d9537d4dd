package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/birddash/birddash/internal/storage"
)

var ghostsCmd = &cobra.Command{
	Use:   "ghosts",
	Short: "List stored ghost recordings",
	Long: `List the recorded ghost paths, one per finished run.

The best run's ghost is the one 'birddash play --ghost' races against.

Examples:
  birddash ghosts`,
	Run: runGhosts,
}

func runGhosts(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(maxGhostListing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No ghost recordings yet. Finish a run first.")
		return
	}

	fmt.Printf("  %-6s  %-8s  %-9s  %-7s  %s\n", "Run", "Score", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-6s  %-8s  %-9s  %-7s  %s\n", "---", "-----", "-------", "-----", "----")

	for _, r := range runs {
		path, pathErr := store.GhostPath(r.ID)
		if pathErr != nil {
			continue
		}
		fmt.Printf("  #%-5d  %-8d  %-9s  %-7d  %s\n",
			r.ID, r.Score, r.Outcome, len(path), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

const maxGhostListing = 50

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/birddash/birddash/internal/config"
	"github.com/birddash/birddash/internal/schedule"
)

var checkCmd = &cobra.Command{
	Use:   "check <schedule>",
	Short: "Validate an obstacle schedule file",
	Long: `Parse a schedule file and report what the game would see.

The parser never rejects a record: malformed numeric fields become NaN
and the resulting pipe is inert (it never collides and never scores).
This command surfaces such records so course authors can fix them.

Examples:
  birddash check ./course.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	entries, err := schedule.LoadFile(args[0], cfg.Engine())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	degenerate := schedule.Degenerate(entries)

	fmt.Printf("%s: %d obstacle(s)\n", args[0], len(entries))
	if len(entries) == 0 {
		fmt.Println("Empty schedule: no pipes will ever spawn and the game never auto-ends.")
		return
	}
	if degenerate > 0 {
		fmt.Printf("Warning: %d record(s) have malformed numeric fields and will spawn inert pipes.\n", degenerate)
	}

	// Degenerate entries sort last; report the last well-formed spawn.
	last := len(entries) - 1
	for last > 0 && math.IsNaN(entries[last].AtMs) {
		last--
	}
	if math.IsNaN(entries[0].AtMs) {
		return
	}
	fmt.Printf("First spawn at %.1fs, last at %.1fs.\n", entries[0].AtMs/1000, entries[last].AtMs/1000)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/birddash/birddash/internal/config"
	"github.com/birddash/birddash/internal/core"
	"github.com/birddash/birddash/internal/platform/tui"
	"github.com/birddash/birddash/internal/schedule"
	"github.com/birddash/birddash/internal/storage"
)

var (
	flagConfig   string
	flagSchedule string
	flagSeed     int64
	flagGhost    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the course",
	Long: `Start a run.

Controls:
  Mouse click  - Start the session
  Space/Up/W   - Flap
  R            - Restart (after the run ends)
  Q/Ctrl+C     - Quit

Examples:
  birddash play
  birddash play --ghost
  birddash play --schedule ./course.csv
  birddash play --config ./my-world.yaml --seed 99`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().StringVar(&flagSchedule, "schedule", "", "Path to obstacle schedule file (default: embedded course)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Knockback seed override (0 = use config seed)")
	playCmd.Flags().BoolVar(&flagGhost, "ghost", false, "Overlay the ghost of the best stored run")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	world := cfg.Engine()
	if flagSeed != 0 {
		world.Seed = flagSeed
	}

	entries := schedule.Default(world)
	if flagSchedule != "" {
		entries, err = schedule.LoadFile(flagSchedule, world)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schedule: %v\n", err)
			os.Exit(1)
		}
	}

	// Get terminal size for the projection
	rc := core.DefaultRuntimeConfig()
	rc.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Load the ghost path before the session starts
	var ghostPath []float64
	if flagGhost && store != nil {
		if best, bestErr := store.BestRun(); bestErr == nil && best != nil {
			ghostPath, _ = store.GhostPath(best.ID)
		}
	}

	runErr := tui.Run(world, entries, store, rc, ghostPath)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// birddash is a terminal side-scroller: steer a bird through a scheduled
// course of pipes, racing the ghost of your best run.
//
// Usage:
//
//	birddash play              - Play the course
//	birddash scores            - Show run history
//	birddash ghosts            - List stored ghost recordings
//	birddash check <schedule>  - Validate an obstacle schedule file
//	birddash serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - UI refresh rate (default: 60)
//	--db <path>     - Database path (default: ~/.birddash/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birddash",
	Short: "Birddash - dodge the pipes, beat your ghost",
	Long: `Birddash is a terminal game: a bird falls under gravity, flaps on
spacebar, and has to thread the gaps of a scheduled pipe course. Every
finished run is recorded and can be replayed as a ghost next to the
live bird.

Available commands:
  play     - Play the course
  scores   - View run history
  ghosts   - List stored ghost recordings
  check    - Validate an obstacle schedule file
  serve    - Start SSH server for remote play

Examples:
  birddash play
  birddash play --ghost
  birddash play --schedule ./course.csv
  birddash check ./course.csv
  birddash serve --ssh :2222
  birddash scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "UI refresh rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.birddash/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(ghostsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

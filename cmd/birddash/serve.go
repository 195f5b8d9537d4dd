package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/birddash/birddash/internal/config"
	"github.com/birddash/birddash/internal/platform/tui"
	"github.com/birddash/birddash/internal/schedule"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagServeSchedule string
	flagServeConfig   string
	flagIdleTimeout   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the birddash SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session on the same obstacle course.
Runs are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.birddash/host_key

Examples:
  birddash serve                           # Listen on :23234 with auto-generated key
  birddash serve --ssh :2222               # Listen on port 2222
  birddash serve --schedule ./course.csv   # Serve a custom course
  birddash serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeSchedule, "schedule", "", "Path to obstacle schedule file (default: embedded course)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom world config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	world := cfg.Engine()
	entries := schedule.Default(world)
	if flagServeSchedule != "" {
		entries, err = schedule.LoadFile(flagServeSchedule, world)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading schedule: %v\n", err)
			os.Exit(1)
		}
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		World:       world,
		Entries:     entries,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting birddash SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

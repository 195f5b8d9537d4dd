// Package schedule converts a flat timed-obstacle description into the
// spawn events a session feeds through its dispatcher.
//
// The file format is text: one header line (ignored) followed by
// comma-separated records `gapYFraction,gapHeightFraction,spawnSeconds`.
// The parser does not validate: a malformed numeric token becomes NaN,
// and a NaN-valued pipe is inert downstream (it never collides and never
// scores) rather than an error. Degenerate reports how many records are
// affected so the CLI can surface them.
package schedule

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	_ "embed"

	"github.com/birddash/birddash/internal/engine"
)

//go:embed default_schedule.csv
var defaultSchedule []byte

// Entry is one scheduled spawn: the pipe to insert and the session-relative
// time at which its spawn event fires.
type Entry struct {
	AtMs float64
	Pipe engine.Pipe
}

// Parse reads a schedule and returns its entries sorted by spawn time.
// Entries with a NaN spawn time sort last and, since no tick instant ever
// compares against NaN as due, never fire.
func Parse(r io.Reader, cfg engine.Config) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var entries []Entry
	line := 0
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		line++
		if line == 1 || text == "" {
			// Header, or trailing blank line.
			continue
		}

		fields := strings.Split(text, ",")
		gapYFrac := field(fields, 0)
		gapHFrac := field(fields, 1)
		spawnSec := field(fields, 2)

		entries = append(entries, Entry{
			AtMs: spawnSec * 1000,
			Pipe: engine.Pipe{
				X:             cfg.ViewportW,
				GapY:          gapYFrac * cfg.ViewportH,
				GapHeight:     gapHFrac * cfg.ViewportH,
				SpawnOffsetMs: spawnSec * 1000,
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("schedule: read failed: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].AtMs, entries[j].AtMs
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a < b
	})

	return entries, nil
}

// field extracts record field i as a float64. Missing or malformed tokens
// yield NaN, never an error.
func field(fields []string, i int) float64 {
	if i >= len(fields) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Degenerate counts entries carrying at least one NaN field.
func Degenerate(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if math.IsNaN(e.Pipe.GapY) || math.IsNaN(e.Pipe.GapHeight) || math.IsNaN(e.AtMs) {
			n++
		}
	}
	return n
}

// LoadFile parses the schedule at path.
func LoadFile(path string, cfg engine.Config) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, cfg)
}

// Default returns the embedded stock schedule.
func Default(cfg engine.Config) []Entry {
	entries, err := Parse(strings.NewReader(string(defaultSchedule)), cfg)
	if err != nil {
		// The embedded file cannot fail to scan; keep the signature simple.
		return nil
	}
	return entries
}

package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/birddash/birddash/internal/core"
	"github.com/birddash/birddash/internal/engine"
	"github.com/birddash/birddash/internal/ghost"
	"github.com/birddash/birddash/internal/schedule"
	"github.com/birddash/birddash/internal/session"
	"github.com/birddash/birddash/internal/storage"
)

// Model is the Bubble Tea model driving one birddash terminal session.
// The model owns the screen buffer and the session manager; all state
// transitions happen inside Update, which is the single goroutine the
// session layer requires.
type Model struct {
	mgr     *session.Manager
	sess    *session.Session
	store   *storage.Store
	world   engine.Config
	entries []schedule.Entry
	rc      core.RuntimeConfig
	screen  *core.Screen
	input   core.InputFrame

	state engine.State

	ghostSrc     []float64 // recorded path to replay, nil for none
	ghostRun     *ghost.Replay
	ghostY       float64
	ghostVisible bool

	runSaved bool
	quitting bool
}

// NewModel creates a model for the given world and schedule. ghostPath,
// when non-nil, is overlaid as a ghost on every session the model starts.
func NewModel(world engine.Config, entries []schedule.Entry, store *storage.Store, rc core.RuntimeConfig, ghostPath []float64) Model {
	// The manager's log output would tear the alternate screen, so the
	// in-TUI manager logs nowhere; the serve path logs connections itself.
	return Model{
		mgr:      session.NewManager(log.New(io.Discard)),
		store:    store,
		world:    world,
		entries:  entries,
		rc:       rc,
		screen:   core.NewScreen(rc.ScreenW, rc.ScreenH),
		input:    core.NewInputFrame(),
		state:    engine.NewState(world),
		ghostSrc: ghostPath,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rc.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.rc.ScreenW = msg.Width
		m.rc.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input onto semantic actions. Quit takes effect
// immediately; everything else lands in the input frame and is consumed
// on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ", "up", "w":
		m.input.Set(core.ActionFlap)
	case "r":
		m.input.Set(core.ActionRestart)
	}
	return m, nil
}

// handleMouse treats any pointer press as the session-start trigger.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		m.input.Set(core.ActionStart)
	}
	return m, nil
}

// consumeInput applies the actions collected since the previous tick.
// Start presses while a session is active are rejected by admission
// control and silently ignored; restart only works after the run ends.
func (m *Model) consumeInput() {
	if m.input.Has(core.ActionStart) {
		m.startSession()
	}
	if m.input.Has(core.ActionRestart) && m.sess != nil && m.sess.Done() {
		m.startSession()
	}
	if m.input.Has(core.ActionFlap) && m.sess != nil {
		m.sess.Jump()
	}
	m.input.Clear()
}

// startSession asks the manager for a new session. A fresh ghost replay
// instance is constructed per session; replays are not restartable.
func (m *Model) startSession() {
	sess, err := m.mgr.Start(m.world, m.entries)
	if err != nil {
		return // a session is already active
	}
	m.sess = sess
	m.state = sess.State()
	m.runSaved = false
	m.ghostRun = nil
	m.ghostVisible = false
	if m.ghostSrc != nil {
		m.ghostRun = ghost.New(m.ghostSrc)
	}
}

// handleTick consumes the input frame, then advances the active session
// and the ghost by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.consumeInput()

	if m.sess == nil || m.sess.Done() {
		return m, tickCmd(m.rc.TickRate)
	}

	m.state = m.sess.Advance()

	// The ghost runs on the same clock and stops on whichever fires
	// first: recording exhausted or game end.
	if m.ghostRun != nil {
		y, ok := m.ghostRun.Next()
		m.ghostY = y
		m.ghostVisible = ok && !m.state.Ended
	}

	if m.state.Ended && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.rc.TickRate)
}

// saveRun persists the finished run and its recorded path, best effort.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	outcome := storage.OutcomeCrashed
	if m.state.Lives > 0 {
		outcome = storage.OutcomeCleared
	}
	//nolint:errcheck // Best-effort save, the session result stays on screen regardless
	m.store.SaveRun(m.state.Score, m.state.Time, m.state.Lives, outcome, m.sess.Path())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.screen, m.state, m.world, m.ghostY, m.ghostVisible)

	switch {
	case m.sess == nil:
		drawCenteredMessage(m.screen, "BIRDDASH", "Click to start  |  Space to flap  |  Q to quit")
	case m.sess.Done():
		outcome := "CRASHED"
		if m.state.Lives > 0 {
			outcome = "COURSE CLEARED"
		}
		drawCenteredMessage(m.screen, outcome, fmt.Sprintf("Score: %d  |  R to restart, Q to quit", m.state.Score))
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(world engine.Config, entries []schedule.Entry, store *storage.Store, rc core.RuntimeConfig, ghostPath []float64) error {
	model := NewModel(world, entries, store, rc, ghostPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer press is the start trigger
	)

	_, err := p.Run()
	return err
}

package session

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/birddash/birddash/internal/engine"
	"github.com/birddash/birddash/internal/schedule"
)

// ErrActiveSession is returned by Start while a session is still running.
var ErrActiveSession = errors.New("session: another session is active")

// Manager enforces at-most-one-concurrent-session admission control:
// a start trigger is rejected while a session is active, and a new one may
// begin only after the previous session's terminal state has been produced.
type Manager struct {
	mu      sync.Mutex
	current *Session
	logger  *log.Logger
}

// NewManager creates a manager. A nil logger falls back to the default.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{logger: logger}
}

// Start admits a new session, or returns ErrActiveSession while one runs.
func (m *Manager) Start(cfg engine.Config, entries []schedule.Entry) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil && !m.current.Done() {
		return nil, ErrActiveSession
	}

	m.current = New(cfg, entries)
	m.logger.Info("session started", "scheduled_pipes", len(entries), "lives", cfg.StartLives)
	return m.current, nil
}

// Current returns the most recently admitted session, which may be done
// or nil if none was ever started.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

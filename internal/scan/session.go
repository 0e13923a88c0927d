// Package scan manages visual-code scan sessions. The actual scanner
// (camera plus decoder) is a black box behind the Source interface; this
// package only enforces the exclusive-resource discipline around it: at most
// one session is active, and starting a new one stops the prior one first.
package scan

import (
	"context"
	"fmt"
	"sync"

	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/logging"
)

// Source produces decoded visual-code text. Start must not block: it starts
// delivery in the background and calls emit once per decoded code until the
// context is done or Stop is called. A Start error means the source never
// became active (camera missing, permission denied).
type Source interface {
	Start(ctx context.Context, emit func(code string)) error
	Stop() error
}

// Manager owns the single active scan session.
type Manager struct {
	mu     sync.Mutex
	active *Session
	log    logging.Logger
}

// Session is one running scan. It is handed out so callers can wait on or
// stop the session they started.
type Session struct {
	src    Source
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Done is closed when the session has stopped.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) stop() {
	s.once.Do(func() {
		s.cancel()
		_ = s.src.Stop()
		close(s.done)
	})
}

func NewManager(log logging.Logger) *Manager {
	return &Manager{log: log}
}

// Start begins a scan session delivering decoded codes to handler. If a
// session is already active it is stopped first. On source failure no
// session is considered active and the error is returned to the caller.
func (m *Manager) Start(ctx context.Context, src Source, handler func(code string)) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		m.log.Debug(ctx, "stopping previous scan session")
		m.active.stop()
		m.active = nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{src: src, cancel: cancel, done: make(chan struct{})}

	if err := src.Start(ctx, handler); err != nil {
		cancel()
		return nil, fmt.Errorf("start scan source: %w", err)
	}

	m.active = s
	return s, nil
}

// Stop ends the active session. Returns common.ErrNoActiveScan if there is
// none.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil {
		return common.ErrNoActiveScan
	}
	m.active.stop()
	m.active = nil
	return nil
}

// Active reports whether a scan session is currently running.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil
}

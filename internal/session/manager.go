package session

import "sync"

// Manager owns the process-wide conversation session. It starts unbound,
// binds lazily on the first Get, and returns to unbound only on Reset.
type Manager struct {
	mu      sync.Mutex
	current *Session
}

// NewManager returns an unbound Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Get returns the current session, creating it if none exists. Repeated
// calls return the same session until Reset.
func (m *Manager) Get() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		m.current = newSession()
	}
	return m.current
}

// Reset discards the current session. The next Get starts a fresh one.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
}

// Bound reports whether a session currently exists.
func (m *Manager) Bound() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

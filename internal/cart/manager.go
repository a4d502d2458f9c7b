package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager keeps one cart per client session. Carts are created
// lazily and, like the repository, live only for the process
// lifetime.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager creates an empty session cart registry.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// NewSessionID mints a fresh session identifier.
func (m *Manager) NewSessionID() string {
	return uuid.New().String()
}

// Get returns the cart for a session, creating it on first use.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}

// Drop discards a session's cart entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
}

package ws

import (
	"sync"

	"chargecalc/backend/services/calculator-service/internal/metrics"
)

// Manager tracks live connections.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*Connection
}

// NewManager builds connection manager.
func NewManager() *Manager {
	return &Manager{
		connections: make(map[string]*Connection),
	}
}

// Add registers new connection.
func (m *Manager) Add(conn *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.connections[conn.ID()]; !exists {
		metrics.LiveConnections.Inc()
	}
	m.connections[conn.ID()] = conn
}

// Remove removes connection.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.connections[id]; exists {
		metrics.LiveConnections.Dec()
		delete(m.connections, id)
	}
}

// Count returns the number of open connections.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

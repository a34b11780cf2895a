package cart

import (
	"fmt"
	"sync"
)

// Manager hands out one engine per user, each persisting under its own storage
// key. Engines are cached so a user's cart is rehydrated once per process.
type Manager struct {
	storage Storage

	mu      sync.Mutex
	engines map[uint]*Engine
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		engines: make(map[uint]*Engine),
	}
}

func (m *Manager) Engine(userID uint) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if engine, ok := m.engines[userID]; ok {
		return engine
	}
	engine := NewEngine(m.storage, fmt.Sprintf("cart-%d", userID))
	m.engines[userID] = engine
	return engine
}

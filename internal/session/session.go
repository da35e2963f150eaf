package session

import "sync"

// Manager remembers which chats were given a prompt and are waiting for
// the response that completes their entry.
type Manager struct {
	mu      sync.RWMutex
	pending map[int64]string
}

func NewManager() *Manager {
	return &Manager{pending: make(map[int64]string)}
}

// Begin starts waiting for a response to prompt, replacing any earlier one.
func (m *Manager) Begin(chatID int64, prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[chatID] = prompt
}

func (m *Manager) Pending(chatID int64) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pending[chatID]
	return p, ok
}

// Complete returns the pending prompt and stops waiting.
func (m *Manager) Complete(chatID int64) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pending[chatID]
	delete(m.pending, chatID)
	return p, ok
}

func (m *Manager) Reset(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, chatID)
}

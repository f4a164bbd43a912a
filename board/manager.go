package board

import "sync"

// Manager hands out one State per session ID. State lives in memory
// only; a gateway restart starts every session from an empty board.
type Manager struct {
	mu      sync.Mutex
	fetcher Fetcher
	states  map[string]*State
}

func NewManager(fetcher Fetcher) *Manager {
	return &Manager{
		fetcher: fetcher,
		states:  map[string]*State{},
	}
}

func (m *Manager) Get(sessionID string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[sessionID]
	if !ok {
		state = New(m.fetcher)
		m.states[sessionID] = state
	}
	return state
}

// Drop discards a session's state. Login and logout call this so the
// next view rebuilds from a fresh fetch instead of a stale snapshot.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
}

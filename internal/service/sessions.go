package service

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager holds one evaluator per caller session. Evaluators share
// the route cache, gateway and enhancer, so single-flight de-duplication
// holds across sessions while each session keeps its own observable state.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Evaluator
	factory  func() *Evaluator
}

// NewSessionManager creates a session manager using factory to construct
// per-session evaluators.
func NewSessionManager(factory func() *Evaluator) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Evaluator),
		factory:  factory,
	}
}

// Create starts a new session and returns its id and evaluator.
func (m *SessionManager) Create() (string, *Evaluator) {
	id := uuid.New().String()
	evaluator := m.factory()

	m.mu.Lock()
	m.sessions[id] = evaluator
	m.mu.Unlock()

	return id, evaluator
}

// Get returns the evaluator for a session.
func (m *SessionManager) Get(id string) (*Evaluator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	evaluator, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return evaluator, nil
}

// Delete removes a session.
func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

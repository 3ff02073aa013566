package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"calmroute/internal/domain"
	"calmroute/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK DIRECTIONS GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of directions.Gateway.
type MockGateway struct {
	// FetchFunc is invoked for every FetchRoutes call. Tests that need to
	// control timing can block inside it.
	FetchFunc func(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error)

	// Counter for verification
	CallCount int32
}

func (m *MockGateway) FetchRoutes(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error) {
	atomic.AddInt32(&m.CallCount, 1)
	return m.FetchFunc(ctx, req)
}

// Calls returns the number of FetchRoutes invocations so far.
func (m *MockGateway) Calls() int32 {
	return atomic.LoadInt32(&m.CallCount)
}

// ──────────────────────────────────────────────
// MOCK SAVED ROUTE REPOSITORY
// ──────────────────────────────────────────────

// MockSavedRouteRepository is a mock implementation of SavedRouteRepository.
type MockSavedRouteRepository struct {
	mu     sync.RWMutex
	routes map[string]*domain.SavedRoute

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockSavedRouteRepository creates a new mock saved route repository.
func NewMockSavedRouteRepository() *MockSavedRouteRepository {
	return &MockSavedRouteRepository{
		routes: make(map[string]*domain.SavedRoute),
	}
}

func (m *MockSavedRouteRepository) Create(ctx context.Context, route *domain.SavedRoute) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route.ID] = route
	return nil
}

func (m *MockSavedRouteRepository) GetByID(ctx context.Context, id string) (*domain.SavedRoute, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	route, ok := m.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *route
	return &copy, nil
}

func (m *MockSavedRouteRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.SavedRoute, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.SavedRoute
	for _, r := range m.routes {
		if r.UserID == userID {
			copy := *r
			out = append(out, &copy)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK PREFERENCE REPOSITORY
// ──────────────────────────────────────────────

// MockPreferenceRepository is a mock implementation of PreferenceRepository.
type MockPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]*domain.Preferences

	// Error injection
	UpsertError error
}

// NewMockPreferenceRepository creates a new mock preference repository.
func NewMockPreferenceRepository() *MockPreferenceRepository {
	return &MockPreferenceRepository{
		prefs: make(map[string]*domain.Preferences),
	}
}

func (m *MockPreferenceRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefs, ok := m.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *prefs
	return &copy, nil
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *prefs
	m.prefs[prefs.UserID] = &copy
	return nil
}

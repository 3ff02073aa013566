package repository

import (
	"context"

	"calmroute/internal/domain"
)

// SavedRouteRepository defines the persistence operations for saved routes.
type SavedRouteRepository interface {
	// Create persists a new saved route.
	Create(ctx context.Context, route *domain.SavedRoute) error

	// GetByID retrieves a saved route by ID.
	GetByID(ctx context.Context, id string) (*domain.SavedRoute, error)

	// GetByUserID retrieves all routes saved by a user.
	GetByUserID(ctx context.Context, userID string) ([]*domain.SavedRoute, error)
}

package repository

import (
	"context"

	"calmroute/internal/domain"
)

// PreferenceRepository defines the persistence operations for preferences.
type PreferenceRepository interface {
	// GetByUserID retrieves the preferences for a user.
	GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error)

	// Upsert creates or replaces the preferences for a user.
	Upsert(ctx context.Context, prefs *domain.Preferences) error
}

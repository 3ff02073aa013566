package postgres

import (
	"context"
	"database/sql"
	"errors"

	"calmroute/internal/domain"
	"calmroute/internal/repository"
)

// PreferenceRepository is a PostgreSQL implementation of repository.PreferenceRepository.
type PreferenceRepository struct {
	q Querier
}

// NewPreferenceRepository creates a new PostgreSQL preference repository.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{q: db}
}

// GetByUserID retrieves the preferences for a user.
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID string) (*domain.Preferences, error) {
	query := `
		SELECT user_id, default_mode, avoid_highways, avoid_tolls, units, preferred_therapy, updated_at
		FROM preferences WHERE user_id = $1
	`

	var prefs domain.Preferences
	var preferredTherapy sql.NullString

	err := r.q.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID,
		&prefs.DefaultMode,
		&prefs.AvoidHighways,
		&prefs.AvoidTolls,
		&prefs.Units,
		&preferredTherapy,
		&prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if preferredTherapy.Valid {
		prefs.PreferredTherapy = domain.TherapyType(preferredTherapy.String)
	}
	return &prefs, nil
}

// Upsert creates or replaces the preferences for a user.
func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *domain.Preferences) error {
	query := `
		INSERT INTO preferences (user_id, default_mode, avoid_highways, avoid_tolls, units, preferred_therapy, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			default_mode = EXCLUDED.default_mode,
			avoid_highways = EXCLUDED.avoid_highways,
			avoid_tolls = EXCLUDED.avoid_tolls,
			units = EXCLUDED.units,
			preferred_therapy = EXCLUDED.preferred_therapy,
			updated_at = EXCLUDED.updated_at
	`

	var preferredTherapy sql.NullString
	if prefs.PreferredTherapy != "" {
		preferredTherapy = sql.NullString{String: string(prefs.PreferredTherapy), Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		prefs.UserID,
		prefs.DefaultMode,
		prefs.AvoidHighways,
		prefs.AvoidTolls,
		prefs.Units,
		preferredTherapy,
		prefs.UpdatedAt,
	)

	return err
}

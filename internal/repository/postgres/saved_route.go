package postgres

import (
	"context"
	"database/sql"
	"errors"

	"calmroute/internal/domain"
	"calmroute/internal/repository"
)

// SavedRouteRepository is a PostgreSQL implementation of repository.SavedRouteRepository.
type SavedRouteRepository struct {
	q Querier
}

// NewSavedRouteRepository creates a new PostgreSQL saved route repository.
func NewSavedRouteRepository(db *sql.DB) *SavedRouteRepository {
	return &SavedRouteRepository{q: db}
}

// NewSavedRouteRepositoryWithTx creates a saved route repository using a transaction.
func NewSavedRouteRepositoryWithTx(tx *sql.Tx) *SavedRouteRepository {
	return &SavedRouteRepository{q: tx}
}

// Create persists a new saved route.
func (r *SavedRouteRepository) Create(ctx context.Context, route *domain.SavedRoute) error {
	query := `
		INSERT INTO saved_routes (id, user_id, name, origin_lat, origin_lng, destination_lat, destination_lng, stress_level, therapy_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	var therapyType sql.NullString
	if route.TherapyType != "" {
		therapyType = sql.NullString{String: string(route.TherapyType), Valid: true}
	}

	// Default stress level to low if not set
	stressLevel := route.StressLevel
	if stressLevel == "" {
		stressLevel = domain.StressLow
	}

	_, err := r.q.ExecContext(ctx, query,
		route.ID,
		route.UserID,
		route.Name,
		route.Origin.Lat,
		route.Origin.Lng,
		route.Destination.Lat,
		route.Destination.Lng,
		stressLevel,
		therapyType,
		route.CreatedAt,
	)

	return err
}

// GetByID retrieves a saved route by ID.
func (r *SavedRouteRepository) GetByID(ctx context.Context, id string) (*domain.SavedRoute, error) {
	query := `
		SELECT id, user_id, name, origin_lat, origin_lng, destination_lat, destination_lng, stress_level, therapy_type, created_at
		FROM saved_routes WHERE id = $1
	`

	route, err := scanSavedRoute(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return route, nil
}

// GetByUserID retrieves all routes saved by a user, newest first.
func (r *SavedRouteRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.SavedRoute, error) {
	query := `
		SELECT id, user_id, name, origin_lat, origin_lng, destination_lat, destination_lng, stress_level, therapy_type, created_at
		FROM saved_routes WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*domain.SavedRoute
	for rows.Next() {
		route, err := scanSavedRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedRoute(row rowScanner) (*domain.SavedRoute, error) {
	var route domain.SavedRoute
	var therapyType sql.NullString

	err := row.Scan(
		&route.ID,
		&route.UserID,
		&route.Name,
		&route.Origin.Lat,
		&route.Origin.Lng,
		&route.Destination.Lat,
		&route.Destination.Lng,
		&route.StressLevel,
		&therapyType,
		&route.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if therapyType.Valid {
		route.TherapyType = domain.TherapyType(therapyType.String)
	}
	return &route, nil
}

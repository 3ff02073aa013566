package service

import (
	"context"
	"errors"
	"time"

	"calmroute/internal/domain"
	"calmroute/internal/redis"
	"calmroute/internal/repository"
)

// PreferenceService handles user route preferences.
type PreferenceService struct {
	preferenceRepo repository.PreferenceRepository
	cacheStore     *redis.CacheStore
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(
	preferenceRepo repository.PreferenceRepository,
	cacheStore *redis.CacheStore,
) *PreferenceService {
	return &PreferenceService{
		preferenceRepo: preferenceRepo,
		cacheStore:     cacheStore,
	}
}

// Get returns the preferences for a user, falling back to defaults when the
// user has never saved any.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetPreferences(ctx, userID)
		if err == nil && cached != nil {
			return fromCachedPreferences(cached), nil
		}
	}

	prefs, err := s.preferenceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return defaultPreferences(userID), nil
		}
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetPreferences(ctx, toCachedPreferences(prefs))
	}

	return prefs, nil
}

// UpsertPreferencesRequest contains the parameters for updating preferences.
type UpsertPreferencesRequest struct {
	UserID           string
	DefaultMode      domain.TravelMode
	AvoidHighways    bool
	AvoidTolls       bool
	Units            domain.Units
	PreferredTherapy domain.TherapyType
}

// Upsert creates or replaces the preferences for a user.
func (s *PreferenceService) Upsert(ctx context.Context, req UpsertPreferencesRequest) (*domain.Preferences, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	mode, err := ValidateTravelMode(string(req.DefaultMode))
	if err != nil {
		return nil, err
	}
	units, err := ValidateUnits(string(req.Units))
	if err != nil {
		return nil, err
	}

	prefs := &domain.Preferences{
		UserID:           req.UserID,
		DefaultMode:      mode,
		AvoidHighways:    req.AvoidHighways,
		AvoidTolls:       req.AvoidTolls,
		Units:            units,
		PreferredTherapy: req.PreferredTherapy,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := s.preferenceRepo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidatePreferences(ctx, req.UserID)
	}

	return prefs, nil
}

func defaultPreferences(userID string) *domain.Preferences {
	return &domain.Preferences{
		UserID:      userID,
		DefaultMode: domain.ModeDriving,
		Units:       domain.UnitsMetric,
	}
}

func toCachedPreferences(prefs *domain.Preferences) *redis.CachedPreferences {
	return &redis.CachedPreferences{
		UserID:           prefs.UserID,
		DefaultMode:      string(prefs.DefaultMode),
		AvoidHighways:    prefs.AvoidHighways,
		AvoidTolls:       prefs.AvoidTolls,
		Units:            string(prefs.Units),
		PreferredTherapy: string(prefs.PreferredTherapy),
		UpdatedAt:        prefs.UpdatedAt,
	}
}

func fromCachedPreferences(cached *redis.CachedPreferences) *domain.Preferences {
	return &domain.Preferences{
		UserID:           cached.UserID,
		DefaultMode:      domain.TravelMode(cached.DefaultMode),
		AvoidHighways:    cached.AvoidHighways,
		AvoidTolls:       cached.AvoidTolls,
		Units:            domain.Units(cached.Units),
		PreferredTherapy: domain.TherapyType(cached.PreferredTherapy),
		UpdatedAt:        cached.UpdatedAt,
	}
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"calmroute/internal/domain"
	"calmroute/internal/redis"
	"calmroute/internal/repository"
)

// SavedRouteService handles saved route operations: plain create/read calls
// over the repository with a short-lived Redis read cache in front.
type SavedRouteService struct {
	savedRouteRepo repository.SavedRouteRepository
	cacheStore     *redis.CacheStore
}

// NewSavedRouteService creates a new SavedRouteService.
func NewSavedRouteService(
	savedRouteRepo repository.SavedRouteRepository,
	cacheStore *redis.CacheStore,
) *SavedRouteService {
	return &SavedRouteService{
		savedRouteRepo: savedRouteRepo,
		cacheStore:     cacheStore,
	}
}

// SaveRouteRequest contains the parameters for saving a route.
type SaveRouteRequest struct {
	UserID      string
	Name        string
	Origin      domain.LatLng
	Destination domain.LatLng
	StressLevel domain.StressLevel
	TherapyType domain.TherapyType
}

// Save persists a new saved route.
func (s *SavedRouteService) Save(ctx context.Context, req SaveRouteRequest) (*domain.SavedRoute, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.Name == "" {
		return nil, ErrInvalidRouteName
	}
	if !domain.IsValidLatitude(req.Origin.Lat) || !domain.IsValidLongitude(req.Origin.Lng) {
		return nil, ErrInvalidOrigin
	}
	if !domain.IsValidLatitude(req.Destination.Lat) || !domain.IsValidLongitude(req.Destination.Lng) {
		return nil, ErrInvalidDestination
	}

	route := &domain.SavedRoute{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		StressLevel: req.StressLevel,
		TherapyType: req.TherapyType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.savedRouteRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetSavedRoute(ctx, toCachedSavedRoute(route))
	}

	return route, nil
}

// GetByID retrieves a saved route, consulting the cache first.
func (s *SavedRouteService) GetByID(ctx context.Context, id string) (*domain.SavedRoute, error) {
	if id == "" {
		return nil, ErrInvalidRouteID
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetSavedRoute(ctx, id)
		if err == nil && cached != nil {
			return fromCachedSavedRoute(cached), nil
		}
	}

	route, err := s.savedRouteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		_ = s.cacheStore.SetSavedRoute(ctx, toCachedSavedRoute(route))
	}

	return route, nil
}

// ListByUser retrieves all routes saved by a user.
func (s *SavedRouteService) ListByUser(ctx context.Context, userID string) ([]*domain.SavedRoute, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.savedRouteRepo.GetByUserID(ctx, userID)
}

func toCachedSavedRoute(route *domain.SavedRoute) *redis.CachedSavedRoute {
	return &redis.CachedSavedRoute{
		ID:             route.ID,
		UserID:         route.UserID,
		Name:           route.Name,
		OriginLat:      route.Origin.Lat,
		OriginLng:      route.Origin.Lng,
		DestinationLat: route.Destination.Lat,
		DestinationLng: route.Destination.Lng,
		StressLevel:    string(route.StressLevel),
		TherapyType:    string(route.TherapyType),
		CreatedAt:      route.CreatedAt,
	}
}

func fromCachedSavedRoute(cached *redis.CachedSavedRoute) *domain.SavedRoute {
	return &domain.SavedRoute{
		ID:          cached.ID,
		UserID:      cached.UserID,
		Name:        cached.Name,
		Origin:      domain.LatLng{Lat: cached.OriginLat, Lng: cached.OriginLng},
		Destination: domain.LatLng{Lat: cached.DestinationLat, Lng: cached.DestinationLng},
		StressLevel: domain.StressLevel(cached.StressLevel),
		TherapyType: domain.TherapyType(cached.TherapyType),
		CreatedAt:   cached.CreatedAt,
	}
}

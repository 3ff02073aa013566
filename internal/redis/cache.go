package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	SavedRouteCacheTTL  = 5 * time.Minute  // Saved routes change rarely
	PreferencesCacheTTL = 10 * time.Minute // Preferences change even less
)

// Key prefixes
const (
	savedRouteCachePrefix  = "cache:savedroute:"
	preferencesCachePrefix = "cache:preferences:"
)

// CachedSavedRoute represents a cached saved route entity.
type CachedSavedRoute struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	OriginLat      float64   `json:"origin_lat"`
	OriginLng      float64   `json:"origin_lng"`
	DestinationLat float64   `json:"destination_lat"`
	DestinationLng float64   `json:"destination_lng"`
	StressLevel    string    `json:"stress_level"`
	TherapyType    string    `json:"therapy_type"`
	CreatedAt      time.Time `json:"created_at"`
}

// CachedPreferences represents cached user preferences.
type CachedPreferences struct {
	UserID           string    `json:"user_id"`
	DefaultMode      string    `json:"default_mode"`
	AvoidHighways    bool      `json:"avoid_highways"`
	AvoidTolls       bool      `json:"avoid_tolls"`
	Units            string    `json:"units"`
	PreferredTherapy string    `json:"preferred_therapy"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GetSavedRoute retrieves a saved route from cache.
func (s *CacheStore) GetSavedRoute(ctx context.Context, routeID string) (*CachedSavedRoute, error) {
	key := savedRouteCachePrefix + routeID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var route CachedSavedRoute
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// SetSavedRoute stores a saved route in cache.
func (s *CacheStore) SetSavedRoute(ctx context.Context, route *CachedSavedRoute) error {
	key := savedRouteCachePrefix + route.ID
	data, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, SavedRouteCacheTTL).Err()
}

// InvalidateSavedRoute removes a saved route from cache.
func (s *CacheStore) InvalidateSavedRoute(ctx context.Context, routeID string) error {
	key := savedRouteCachePrefix + routeID
	return s.client.Del(ctx, key).Err()
}

// GetPreferences retrieves user preferences from cache.
func (s *CacheStore) GetPreferences(ctx context.Context, userID string) (*CachedPreferences, error) {
	key := preferencesCachePrefix + userID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var prefs CachedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// SetPreferences stores user preferences in cache.
func (s *CacheStore) SetPreferences(ctx context.Context, prefs *CachedPreferences) error {
	key := preferencesCachePrefix + prefs.UserID
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, PreferencesCacheTTL).Err()
}

// InvalidatePreferences removes user preferences from cache.
func (s *CacheStore) InvalidatePreferences(ctx context.Context, userID string) error {
	key := preferencesCachePrefix + userID
	return s.client.Del(ctx, key).Err()
}

package tests

import (
	"context"
	"errors"
	"testing"

	"calmroute/internal/domain"
	"calmroute/internal/repository"
	"calmroute/internal/service"
)

// ──────────────────────────────────────────────
// SAVED ROUTES
// ──────────────────────────────────────────────

func TestSaveRoute_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	repo := NewMockSavedRouteRepository()
	svc := service.NewSavedRouteService(repo, nil)

	route, err := svc.Save(context.Background(), service.SaveRouteRequest{
		UserID:      "user-1",
		Name:        "Morning commute",
		Origin:      domain.LatLng{Lat: 52.5180, Lng: 13.3761},
		Destination: domain.LatLng{Lat: 52.5075, Lng: 13.3903},
		StressLevel: domain.StressLow,
		TherapyType: domain.TherapyNatureSounds,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if route.ID == "" {
		t.Error("expected route ID to be set")
	}
	if route.CreatedAt.IsZero() {
		t.Error("expected creation time to be set")
	}

	stored, err := svc.GetByID(context.Background(), route.ID)
	if err != nil {
		t.Fatalf("expected saved route to be retrievable, got: %v", err)
	}
	if stored.Name != "Morning commute" {
		t.Errorf("expected stored name to match, got %s", stored.Name)
	}
}

func TestSaveRoute_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	valid := service.SaveRouteRequest{
		UserID:      "user-1",
		Name:        "Morning commute",
		Origin:      domain.LatLng{Lat: 52.5180, Lng: 13.3761},
		Destination: domain.LatLng{Lat: 52.5075, Lng: 13.3903},
	}

	testCases := []struct {
		name    string
		mutate  func(*service.SaveRouteRequest)
		wantErr error
	}{
		{
			name:    "missing user id",
			mutate:  func(r *service.SaveRouteRequest) { r.UserID = "" },
			wantErr: service.ErrInvalidUserID,
		},
		{
			name:    "missing name",
			mutate:  func(r *service.SaveRouteRequest) { r.Name = "" },
			wantErr: service.ErrInvalidRouteName,
		},
		{
			name:    "origin latitude out of range",
			mutate:  func(r *service.SaveRouteRequest) { r.Origin.Lat = 91 },
			wantErr: service.ErrInvalidOrigin,
		},
		{
			name:    "destination longitude out of range",
			mutate:  func(r *service.SaveRouteRequest) { r.Destination.Lng = -181 },
			wantErr: service.ErrInvalidDestination,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewMockSavedRouteRepository()
			svc := service.NewSavedRouteService(repo, nil)

			req := valid
			tc.mutate(&req)

			_, err := svc.Save(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
			if repo.CreateCallCount != 0 {
				t.Error("expected no repository write on validation failure")
			}
		})
	}
}

func TestSavedRoute_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := service.NewSavedRouteService(NewMockSavedRouteRepository(), nil)

	_, err := svc.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSavedRoute_ListByUser_FiltersOwner(t *testing.T) {
	t.Parallel()

	repo := NewMockSavedRouteRepository()
	svc := service.NewSavedRouteService(repo, nil)

	for _, userID := range []string{"user-1", "user-1", "user-2"} {
		_, err := svc.Save(context.Background(), service.SaveRouteRequest{
			UserID:      userID,
			Name:        "Route for " + userID,
			Origin:      domain.LatLng{Lat: 52.5180, Lng: 13.3761},
			Destination: domain.LatLng{Lat: 52.5075, Lng: 13.3903},
		})
		if err != nil {
			t.Fatalf("expected save to succeed, got: %v", err)
		}
	}

	routes, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(routes) != 2 {
		t.Errorf("expected 2 routes for user-1, got %d", len(routes))
	}

	if _, err := svc.ListByUser(context.Background(), ""); !errors.Is(err, service.ErrInvalidUserID) {
		t.Errorf("expected ErrInvalidUserID for empty user, got %v", err)
	}
}

// ──────────────────────────────────────────────
// PREFERENCES
// ──────────────────────────────────────────────

func TestPreferences_MissingUser_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	svc := service.NewPreferenceService(NewMockPreferenceRepository(), nil)

	prefs, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected defaults for unknown user, got: %v", err)
	}
	if prefs.DefaultMode != domain.ModeDriving {
		t.Errorf("expected driving default, got %s", prefs.DefaultMode)
	}
	if prefs.Units != domain.UnitsMetric {
		t.Errorf("expected metric default, got %s", prefs.Units)
	}
}

func TestPreferences_Upsert_RoundTrips(t *testing.T) {
	t.Parallel()

	svc := service.NewPreferenceService(NewMockPreferenceRepository(), nil)

	_, err := svc.Upsert(context.Background(), service.UpsertPreferencesRequest{
		UserID:           "user-1",
		DefaultMode:      domain.ModeBicycling,
		AvoidHighways:    true,
		Units:            domain.UnitsImperial,
		PreferredTherapy: domain.TherapyBreathingExercise,
	})
	if err != nil {
		t.Fatalf("expected upsert to succeed, got: %v", err)
	}

	prefs, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if prefs.DefaultMode != domain.ModeBicycling {
		t.Errorf("expected bicycling mode, got %s", prefs.DefaultMode)
	}
	if !prefs.AvoidHighways {
		t.Error("expected avoid highways to persist")
	}
	if prefs.PreferredTherapy != domain.TherapyBreathingExercise {
		t.Errorf("expected preferred therapy to persist, got %s", prefs.PreferredTherapy)
	}
}

func TestPreferences_Upsert_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	svc := service.NewPreferenceService(NewMockPreferenceRepository(), nil)

	_, err := svc.Upsert(context.Background(), service.UpsertPreferencesRequest{
		UserID:      "user-1",
		DefaultMode: domain.TravelMode("teleport"),
	})
	if !errors.Is(err, service.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}

	_, err = svc.Upsert(context.Background(), service.UpsertPreferencesRequest{
		UserID: "user-1",
		Units:  domain.Units("furlongs"),
	})
	if !errors.Is(err, service.ErrInvalidUnits) {
		t.Errorf("expected ErrInvalidUnits, got %v", err)
	}
}

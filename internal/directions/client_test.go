package directions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"calmroute/internal/config"
	"calmroute/internal/domain"
)

func testClient(baseURL string) *Client {
	return NewClient(config.DirectionsConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func testRequest() domain.RouteRequest {
	return domain.RouteRequest{
		Origin:      domain.LatLng{Lat: 52.5180, Lng: 13.3761},
		Destination: domain.LatLng{Lat: 52.5075, Lng: 13.3903},
		Options:     domain.RouteOptions{Alternatives: true},
	}
}

func assertKind(t *testing.T, err error, want Kind) *Error {
	t.Helper()
	var gErr *Error
	if !errors.As(err, &gErr) {
		t.Fatalf("expected a classified error, got %v", err)
	}
	if gErr.Kind != want {
		t.Fatalf("expected kind %s, got %s (message %q)", want, gErr.Kind, gErr.Message)
	}
	return gErr
}

func TestFetchRoutes_ParsesProviderResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("expected api key in query, got %q", got)
		}
		if got := r.URL.Query().Get("alternatives"); got != "true" {
			t.Errorf("expected alternatives=true, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"routes": [
				{
					"summary": "Riverside Parkway",
					"legs": [
						{
							"distance": {"text": "8.4 km", "value": 8400},
							"duration": {"text": "14 min", "value": 840},
							"duration_in_traffic": {"text": "15 min", "value": 900},
							"start_address": "12 Harbor St",
							"end_address": "200 Riverside Dr",
							"start_location": {"lat": 52.5180, "lng": 13.3761},
							"end_location": {"lat": 52.5432, "lng": 13.4127}
						}
					],
					"overview_polyline": {"points": "abc123"},
					"warnings": ["Construction ahead"]
				}
			]
		}`))
	}))
	defer server.Close()

	routes, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}

	route := routes[0]
	if route.Summary != "Riverside Parkway" {
		t.Errorf("unexpected summary: %q", route.Summary)
	}
	if route.Distance.Value != 8400 || route.Distance.Text != "8.4 km" {
		t.Errorf("unexpected distance: %+v", route.Distance)
	}
	if route.Duration.Value != 840 {
		t.Errorf("unexpected duration: %+v", route.Duration)
	}
	if route.DurationInTraffic == nil || route.DurationInTraffic.Value != 900 {
		t.Errorf("unexpected duration in traffic: %+v", route.DurationInTraffic)
	}
	if route.OverviewPolyline != "abc123" {
		t.Errorf("unexpected polyline: %q", route.OverviewPolyline)
	}
	if len(route.Warnings) != 1 || route.Warnings[0] != "Construction ahead" {
		t.Errorf("unexpected warnings: %v", route.Warnings)
	}
	if len(route.Legs) != 1 || route.Legs[0].StartAddress != "12 Harbor St" {
		t.Errorf("unexpected legs: %+v", route.Legs)
	}
}

func TestFetchRoutes_AggregatesMultiLegTotals(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"routes": [
				{
					"summary": "Two stops",
					"legs": [
						{"distance": {"text": "3.0 km", "value": 3000}, "duration": {"text": "6 min", "value": 360}},
						{"distance": {"text": "2.0 km", "value": 2000}, "duration": {"text": "4 min", "value": 240}}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	routes, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	route := routes[0]
	if route.Distance.Value != 5000 {
		t.Errorf("expected summed distance 5000, got %d", route.Distance.Value)
	}
	if route.Duration.Value != 600 {
		t.Errorf("expected summed duration 600, got %d", route.Duration.Value)
	}
	// No leg reported traffic, so the route must not claim any.
	if route.DurationInTraffic != nil {
		t.Errorf("expected no traffic duration, got %+v", route.DurationInTraffic)
	}
}

func TestFetchRoutes_MissingAPIKey_NoRequestMade(t *testing.T) {
	t.Parallel()

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client := NewClient(config.DirectionsConfig{BaseURL: server.URL})
	_, err := client.FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindConfiguration)
	if !gErr.Recoverable() {
		t.Error("expected configuration errors to be recoverable")
	}
	if atomic.LoadInt32(&requests) != 0 {
		t.Error("expected no HTTP request without an api key")
	}
}

func TestFetchRoutes_ServerError_IsNetworkKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindNetwork)
	if !gErr.Recoverable() {
		t.Error("expected network errors to be recoverable")
	}
}

func TestFetchRoutes_UnreachableHost_IsNetworkKind(t *testing.T) {
	t.Parallel()

	// A closed server guarantees a transport-level failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())
	assertKind(t, err, KindNetwork)
}

func TestFetchRoutes_ZeroResults_IsFatalProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindProvider)
	if gErr.Recoverable() {
		t.Error("expected provider errors to be fatal")
	}
	if gErr.Message != "ZERO_RESULTS" {
		t.Errorf("expected provider status as message, got %q", gErr.Message)
	}
}

func TestFetchRoutes_RequestDenied_IsConfigurationKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindConfiguration)
	if gErr.Message != "The provided API key is invalid." {
		t.Errorf("expected provider message to be preserved, got %q", gErr.Message)
	}
}

func TestFetchRoutes_MalformedBody_IsMalformedKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": [`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindMalformedResponse)
	if gErr.Recoverable() {
		t.Error("expected malformed responses to be fatal")
	}
}

func TestFetchRoutes_ClientError_IsProviderKind(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())
	assertKind(t, err, KindProvider)
}

func TestFetchRoutes_EmptyRouteList_IsZeroResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "routes": []}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchRoutes(context.Background(), testRequest())

	gErr := assertKind(t, err, KindProvider)
	if gErr.Message != "ZERO_RESULTS" {
		t.Errorf("expected ZERO_RESULTS message, got %q", gErr.Message)
	}
}

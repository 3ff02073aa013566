package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"calmroute/internal/config"
	"calmroute/internal/domain"
)

// Client is the HTTP implementation of Gateway. Authentication is a simple
// API key managed by configuration; the client performs no retries — retry
// policy belongs to the caller.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// NewClient creates a directions client from configuration.
func NewClient(cfg config.DirectionsConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		session: &http.Client{Timeout: timeout},
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

// FetchRoutes retrieves candidate routes for the request. Every failure is
// returned as a *Error carrying a classification kind.
func (c *Client) FetchRoutes(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error) {
	if c.apiKey == "" {
		return nil, newConfigurationError("directions api key is not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(req), nil)
	if err != nil {
		return nil, newNetworkError("create request", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(httpReq)
	if err != nil {
		return nil, newNetworkError("directions provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, newNetworkError(fmt.Sprintf("directions provider unavailable: HTTP %d", resp.StatusCode), nil)
	}
	if resp.StatusCode >= 400 {
		return nil, newProviderError(fmt.Sprintf("directions request rejected: HTTP %d", resp.StatusCode))
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newMalformedResponseError("decode directions response", err)
	}

	if payload.Status != statusOK {
		message := payload.Status
		if payload.ErrorMessage != "" {
			message = payload.ErrorMessage
		}
		if payload.Status == statusRequestDenied {
			return nil, newConfigurationError(message)
		}
		return nil, newProviderError(message)
	}

	if len(payload.Routes) == 0 {
		return nil, newProviderError(statusZeroResults)
	}

	routes := make([]domain.RawRoute, 0, len(payload.Routes))
	for _, r := range payload.Routes {
		routes = append(routes, toRawRoute(r))
	}
	return routes, nil
}

// requestURL builds the provider query for the request.
func (c *Client) requestURL(req domain.RouteRequest) string {
	mode := req.Options.Mode
	if mode == "" {
		mode = domain.ModeDriving
	}
	units := req.Options.Units
	if units == "" {
		units = domain.UnitsMetric
	}

	q := url.Values{}
	q.Set("origin", fmt.Sprintf("%f,%f", req.Origin.Lat, req.Origin.Lng))
	q.Set("destination", fmt.Sprintf("%f,%f", req.Destination.Lat, req.Destination.Lng))
	q.Set("mode", string(mode))
	q.Set("units", string(units))
	q.Set("alternatives", strconv.FormatBool(req.Options.Alternatives))

	avoid := ""
	if req.Options.AvoidHighways {
		avoid = "highways"
	}
	if req.Options.AvoidTolls {
		if avoid != "" {
			avoid += "|"
		}
		avoid += "tolls"
	}
	if avoid != "" {
		q.Set("avoid", avoid)
	}

	if req.Options.DepartureTime > 0 {
		q.Set("departure_time", strconv.FormatInt(req.Options.DepartureTime, 10))
	}
	q.Set("key", c.apiKey)

	return c.baseURL + "?" + q.Encode()
}

// toRawRoute aggregates a wire route's legs into the internal representation.
func toRawRoute(r wireRoute) domain.RawRoute {
	var (
		distanceMeters  int
		durationSeconds int
		trafficSeconds  int
		hasTraffic      bool
	)

	legs := make([]domain.RouteLeg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		distanceMeters += leg.Distance.Value
		durationSeconds += leg.Duration.Value
		if leg.DurationInTraffic != nil {
			trafficSeconds += leg.DurationInTraffic.Value
			hasTraffic = true
		} else {
			trafficSeconds += leg.Duration.Value
		}

		legs = append(legs, domain.RouteLeg{
			Distance:      domain.TextValue{Text: leg.Distance.Text, Value: leg.Distance.Value},
			Duration:      domain.TextValue{Text: leg.Duration.Text, Value: leg.Duration.Value},
			StartAddress:  leg.StartAddress,
			EndAddress:    leg.EndAddress,
			StartLocation: domain.LatLng{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			EndLocation:   domain.LatLng{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		})
	}

	raw := domain.RawRoute{
		Summary:          r.Summary,
		Distance:         domain.TextValue{Text: formatDistance(distanceMeters), Value: distanceMeters},
		Duration:         domain.TextValue{Text: formatDuration(durationSeconds), Value: durationSeconds},
		Legs:             legs,
		OverviewPolyline: r.OverviewPolyline.Points,
		Warnings:         r.Warnings,
	}
	if len(r.Legs) == 1 {
		raw.Distance.Text = r.Legs[0].Distance.Text
		raw.Duration.Text = r.Legs[0].Duration.Text
	}
	if hasTraffic {
		raw.DurationInTraffic = &domain.TextValue{
			Text:  formatDuration(trafficSeconds),
			Value: trafficSeconds,
		}
	}
	return raw
}

func formatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

func formatDuration(seconds int) string {
	minutes := (seconds + 30) / 60
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}

package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"calmroute/internal/domain"
	"calmroute/internal/service"
)

// EvaluationHandler handles HTTP requests for route evaluation sessions.
type EvaluationHandler struct {
	sessions *service.SessionManager
}

// NewEvaluationHandler creates a new EvaluationHandler.
func NewEvaluationHandler(sessions *service.SessionManager) *EvaluationHandler {
	return &EvaluationHandler{sessions: sessions}
}

// EvaluateRequest is the HTTP request body for evaluating routes.
type EvaluateRequest struct {
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
	Mode           string  `json:"mode,omitempty"`           // driving, walking, bicycling, transit
	Alternatives   bool    `json:"alternatives,omitempty"`   // Request alternative routes
	AvoidHighways  bool    `json:"avoid_highways,omitempty"`
	AvoidTolls     bool    `json:"avoid_tolls,omitempty"`
	Units          string  `json:"units,omitempty"`          // metric, imperial
	DepartureTime  int64   `json:"departure_time,omitempty"` // Unix seconds
}

// SessionResponse is the HTTP response for creating a session.
type SessionResponse struct {
	ID string `json:"id"`
}

// RouteLegResponse is the HTTP representation of a route leg.
type RouteLegResponse struct {
	DistanceText    string  `json:"distance_text"`
	DistanceMeters  int     `json:"distance_meters"`
	DurationText    string  `json:"duration_text"`
	DurationSeconds int     `json:"duration_seconds"`
	StartAddress    string  `json:"start_address,omitempty"`
	EndAddress      string  `json:"end_address,omitempty"`
	StartLat        float64 `json:"start_lat"`
	StartLng        float64 `json:"start_lng"`
	EndLat          float64 `json:"end_lat"`
	EndLng          float64 `json:"end_lng"`
}

// EnhancedRouteResponse is the HTTP representation of an evaluated route.
type EnhancedRouteResponse struct {
	ID                       string             `json:"id"`
	Name                     string             `json:"name"`
	Summary                  string             `json:"summary"`
	DistanceText             string             `json:"distance_text"`
	DistanceMeters           int                `json:"distance_meters"`
	DurationText             string             `json:"duration_text"`
	DurationSeconds          int                `json:"duration_seconds"`
	DurationInTrafficText    string             `json:"duration_in_traffic_text,omitempty"`
	DurationInTrafficSeconds int                `json:"duration_in_traffic_seconds,omitempty"`
	StressLevel              string             `json:"stress_level"`
	StressFactors            []string           `json:"stress_factors"`
	TherapyType              string             `json:"therapy_type"`
	DisplayColor             string             `json:"display_color"`
	TrafficLabel             string             `json:"traffic_label"`
	Legs                     []RouteLegResponse `json:"legs"`
	OverviewPolyline         string             `json:"overview_polyline,omitempty"`
	Warnings                 []string           `json:"warnings,omitempty"`
}

// EvaluationStateResponse is the HTTP representation of the session state.
type EvaluationStateResponse struct {
	Phase  string                  `json:"phase"`
	Routes []EnhancedRouteResponse `json:"routes"`
	Error  string                  `json:"error,omitempty"`
	Cached bool                    `json:"cached"`
	Source string                  `json:"source,omitempty"`
}

// CreateSession handles POST /v1/sessions
func (h *EvaluationHandler) CreateSession(c *gin.Context) {
	id, _ := h.sessions.Create()
	respondJSON(c, http.StatusCreated, SessionResponse{ID: id})
}

// DeleteSession handles DELETE /v1/sessions/:id
func (h *EvaluationHandler) DeleteSession(c *gin.Context) {
	h.sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Evaluate handles POST /v1/sessions/:id/evaluate
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	evaluator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	routeReq, err := toRouteRequest(req)
	if err != nil {
		respondError(c, err)
		return
	}

	state := evaluator.Evaluate(c.Request.Context(), routeReq)
	respondJSON(c, http.StatusOK, toStateResponse(state))
}

// GetState handles GET /v1/sessions/:id/state
func (h *EvaluationHandler) GetState(c *gin.Context) {
	evaluator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toStateResponse(evaluator.State()))
}

// ClearError handles POST /v1/sessions/:id/clear-error
func (h *EvaluationHandler) ClearError(c *gin.Context) {
	evaluator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	evaluator.ClearError()
	respondJSON(c, http.StatusOK, toStateResponse(evaluator.State()))
}

// Reset handles POST /v1/sessions/:id/reset
func (h *EvaluationHandler) Reset(c *gin.Context) {
	evaluator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	evaluator.Reset()
	respondJSON(c, http.StatusOK, toStateResponse(evaluator.State()))
}

// Stream handles GET /v1/sessions/:id/stream. It pushes state changes to
// the client as server-sent events until the client disconnects.
func (h *EvaluationHandler) Stream(c *gin.Context) {
	evaluator, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	updates, cancel := evaluator.Subscribe()
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Send the current state immediately so clients render without waiting
	// for the next transition.
	c.SSEvent("state", toStateResponse(evaluator.State()))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case state, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", toStateResponse(state))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func toRouteRequest(req EvaluateRequest) (domain.RouteRequest, error) {
	if !domain.IsValidLatitude(req.OriginLat) || !domain.IsValidLongitude(req.OriginLng) {
		return domain.RouteRequest{}, service.ErrInvalidOrigin
	}
	if !domain.IsValidLatitude(req.DestinationLat) || !domain.IsValidLongitude(req.DestinationLng) {
		return domain.RouteRequest{}, service.ErrInvalidDestination
	}

	mode, err := service.ValidateTravelMode(req.Mode)
	if err != nil {
		return domain.RouteRequest{}, err
	}
	units, err := service.ValidateUnits(req.Units)
	if err != nil {
		return domain.RouteRequest{}, err
	}

	return domain.RouteRequest{
		Origin:      domain.LatLng{Lat: req.OriginLat, Lng: req.OriginLng},
		Destination: domain.LatLng{Lat: req.DestinationLat, Lng: req.DestinationLng},
		Options: domain.RouteOptions{
			Mode:          mode,
			Alternatives:  req.Alternatives,
			AvoidHighways: req.AvoidHighways,
			AvoidTolls:    req.AvoidTolls,
			Units:         units,
			DepartureTime: req.DepartureTime,
		},
	}, nil
}

func toStateResponse(state service.EvaluationState) EvaluationStateResponse {
	routes := make([]EnhancedRouteResponse, 0, len(state.Routes))
	for _, r := range state.Routes {
		routes = append(routes, toRouteResponse(r))
	}
	return EvaluationStateResponse{
		Phase:  string(state.Phase),
		Routes: routes,
		Error:  state.Error,
		Cached: state.Cached,
		Source: string(state.Source),
	}
}

func toRouteResponse(r domain.EnhancedRoute) EnhancedRouteResponse {
	legs := make([]RouteLegResponse, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, RouteLegResponse{
			DistanceText:    leg.Distance.Text,
			DistanceMeters:  leg.Distance.Value,
			DurationText:    leg.Duration.Text,
			DurationSeconds: leg.Duration.Value,
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			StartLat:        leg.StartLocation.Lat,
			StartLng:        leg.StartLocation.Lng,
			EndLat:          leg.EndLocation.Lat,
			EndLng:          leg.EndLocation.Lng,
		})
	}

	resp := EnhancedRouteResponse{
		ID:               r.ID,
		Name:             r.Name,
		Summary:          r.Summary,
		DistanceText:     r.Distance.Text,
		DistanceMeters:   r.Distance.Value,
		DurationText:     r.Duration.Text,
		DurationSeconds:  r.Duration.Value,
		StressLevel:      string(r.StressLevel),
		StressFactors:    r.StressFactors,
		TherapyType:      string(r.TherapyType),
		DisplayColor:     r.DisplayColor,
		TrafficLabel:     string(r.TrafficLabel),
		Legs:             legs,
		OverviewPolyline: r.OverviewPolyline,
		Warnings:         r.Warnings,
	}
	if r.DurationInTraffic != nil {
		resp.DurationInTrafficText = r.DurationInTraffic.Text
		resp.DurationInTrafficSeconds = r.DurationInTraffic.Value
	}
	return resp
}

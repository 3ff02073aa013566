package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calmroute/internal/domain"
	"calmroute/internal/service"
)

// SavedRouteHandler handles HTTP requests for saved routes.
type SavedRouteHandler struct {
	savedRouteService *service.SavedRouteService
}

// NewSavedRouteHandler creates a new SavedRouteHandler.
func NewSavedRouteHandler(savedRouteService *service.SavedRouteService) *SavedRouteHandler {
	return &SavedRouteHandler{savedRouteService: savedRouteService}
}

// SaveRouteRequest is the HTTP request body for saving a route.
type SaveRouteRequest struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
	StressLevel    string  `json:"stress_level,omitempty"`
	TherapyType    string  `json:"therapy_type,omitempty"`
}

// SavedRouteResponse is the HTTP response for saved route data.
type SavedRouteResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	OriginLat      float64 `json:"origin_lat"`
	OriginLng      float64 `json:"origin_lng"`
	DestinationLat float64 `json:"destination_lat"`
	DestinationLng float64 `json:"destination_lng"`
	StressLevel    string  `json:"stress_level"`
	TherapyType    string  `json:"therapy_type,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// Save handles POST /v1/saved-routes
func (h *SavedRouteHandler) Save(c *gin.Context) {
	var req SaveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	route, err := h.savedRouteService.Save(c.Request.Context(), service.SaveRouteRequest{
		UserID:      req.UserID,
		Name:        req.Name,
		Origin:      domain.LatLng{Lat: req.OriginLat, Lng: req.OriginLng},
		Destination: domain.LatLng{Lat: req.DestinationLat, Lng: req.DestinationLng},
		StressLevel: domain.StressLevel(req.StressLevel),
		TherapyType: domain.TherapyType(req.TherapyType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toSavedRouteResponse(route))
}

// GetByID handles GET /v1/saved-routes/:id
func (h *SavedRouteHandler) GetByID(c *gin.Context) {
	route, err := h.savedRouteService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toSavedRouteResponse(route))
}

// ListByUser handles GET /v1/saved-routes?user_id=
func (h *SavedRouteHandler) ListByUser(c *gin.Context) {
	routes, err := h.savedRouteService.ListByUser(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]SavedRouteResponse, 0, len(routes))
	for _, r := range routes {
		response = append(response, toSavedRouteResponse(r))
	}
	respondJSON(c, http.StatusOK, response)
}

func toSavedRouteResponse(route *domain.SavedRoute) SavedRouteResponse {
	return SavedRouteResponse{
		ID:             route.ID,
		UserID:         route.UserID,
		Name:           route.Name,
		OriginLat:      route.Origin.Lat,
		OriginLng:      route.Origin.Lng,
		DestinationLat: route.Destination.Lat,
		DestinationLng: route.Destination.Lng,
		StressLevel:    string(route.StressLevel),
		TherapyType:    string(route.TherapyType),
		CreatedAt:      route.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

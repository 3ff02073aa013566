package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calmroute/internal/domain"
	"calmroute/internal/service"
)

// PreferenceHandler handles HTTP requests for user route preferences.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler.
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// PreferencesRequest is the HTTP request body for updating preferences.
type PreferencesRequest struct {
	DefaultMode      string `json:"default_mode,omitempty"`
	AvoidHighways    bool   `json:"avoid_highways,omitempty"`
	AvoidTolls       bool   `json:"avoid_tolls,omitempty"`
	Units            string `json:"units,omitempty"`
	PreferredTherapy string `json:"preferred_therapy,omitempty"`
}

// PreferencesResponse is the HTTP response for preferences data.
type PreferencesResponse struct {
	UserID           string `json:"user_id"`
	DefaultMode      string `json:"default_mode"`
	AvoidHighways    bool   `json:"avoid_highways"`
	AvoidTolls       bool   `json:"avoid_tolls"`
	Units            string `json:"units"`
	PreferredTherapy string `json:"preferred_therapy,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// Get handles GET /v1/preferences/:userID
func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.preferenceService.Get(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toPreferencesResponse(prefs))
}

// Upsert handles PUT /v1/preferences/:userID
func (h *PreferenceHandler) Upsert(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	prefs, err := h.preferenceService.Upsert(c.Request.Context(), service.UpsertPreferencesRequest{
		UserID:           c.Param("userID"),
		DefaultMode:      domain.TravelMode(req.DefaultMode),
		AvoidHighways:    req.AvoidHighways,
		AvoidTolls:       req.AvoidTolls,
		Units:            domain.Units(req.Units),
		PreferredTherapy: domain.TherapyType(req.PreferredTherapy),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toPreferencesResponse(prefs))
}

func toPreferencesResponse(prefs *domain.Preferences) PreferencesResponse {
	response := PreferencesResponse{
		UserID:           prefs.UserID,
		DefaultMode:      string(prefs.DefaultMode),
		AvoidHighways:    prefs.AvoidHighways,
		AvoidTolls:       prefs.AvoidTolls,
		Units:            string(prefs.Units),
		PreferredTherapy: string(prefs.PreferredTherapy),
	}
	if !prefs.UpdatedAt.IsZero() {
		response.UpdatedAt = prefs.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return response
}

package directions

// Wire types for the directions provider response. The provider speaks a
// Google-Directions-shaped JSON payload: a top-level status plus a list of
// routes made of legs with text/value distance and duration pairs.

type directionsResponse struct {
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Routes       []wireRoute      `json:"routes"`
	Waypoints    []map[string]any `json:"geocoded_waypoints,omitempty"`
}

type wireRoute struct {
	Summary          string       `json:"summary"`
	Legs             []wireLeg    `json:"legs"`
	OverviewPolyline wirePolyline `json:"overview_polyline"`
	Warnings         []string     `json:"warnings"`
}

type wirePolyline struct {
	Points string `json:"points"`
}

type wireLeg struct {
	Distance          wireTextValue  `json:"distance"`
	Duration          wireTextValue  `json:"duration"`
	DurationInTraffic *wireTextValue `json:"duration_in_traffic,omitempty"`
	StartAddress      string         `json:"start_address"`
	EndAddress        string         `json:"end_address"`
	StartLocation     wireLatLng     `json:"start_location"`
	EndLocation       wireLatLng     `json:"end_location"`
}

type wireTextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type wireLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Provider status codes that matter for error classification.
const (
	statusOK            = "OK"
	statusZeroResults   = "ZERO_RESULTS"
	statusRequestDenied = "REQUEST_DENIED"
)

package domain

// TravelMode represents the mode of travel for a route request.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeWalking   TravelMode = "walking"
	ModeBicycling TravelMode = "bicycling"
	ModeTransit   TravelMode = "transit"
)

// Units represents the unit system for distances in provider responses.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// LatLng represents a geographic coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// RouteOptions contains the optional parameters of a route request.
type RouteOptions struct {
	Mode          TravelMode // Defaults to driving
	Alternatives  bool
	AvoidHighways bool
	AvoidTolls    bool
	Units         Units // Defaults to metric
	DepartureTime int64 // Unix seconds; 0 means not set
}

// RouteRequest is the immutable input to a route evaluation.
// Two requests with equal field values are equivalent for caching purposes.
type RouteRequest struct {
	Origin      LatLng
	Destination LatLng
	Options     RouteOptions
}

// IsValidLatitude reports whether lat is a valid latitude.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lng is a valid longitude.
func IsValidLongitude(lng float64) bool {
	return lng >= -180 && lng <= 180
}

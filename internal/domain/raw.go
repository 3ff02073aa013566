package domain

// TextValue pairs a human-readable label with its numeric value
// (meters for distances, seconds for durations).
type TextValue struct {
	Text  string
	Value int
}

// RouteLeg represents one leg of a route between two waypoints.
type RouteLeg struct {
	Distance      TextValue
	Duration      TextValue
	StartAddress  string
	EndAddress    string
	StartLocation LatLng
	EndLocation   LatLng
}

// RawRoute is a route exactly as returned by the directions provider,
// before stress classification. Produced once per gateway call and
// consumed immediately by the enhancer.
type RawRoute struct {
	Summary           string
	Distance          TextValue
	Duration          TextValue
	DurationInTraffic *TextValue // Present only when the provider reports traffic
	Legs              []RouteLeg
	OverviewPolyline  string
	Warnings          []string
}

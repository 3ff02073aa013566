package domain

import "time"

// SavedRoute is a route a user chose to keep.
type SavedRoute struct {
	ID          string
	UserID      string
	Name        string
	Origin      LatLng
	Destination LatLng
	StressLevel StressLevel
	TherapyType TherapyType
	CreatedAt   time.Time
}

// Preferences holds a user's default route evaluation options.
type Preferences struct {
	UserID           string
	DefaultMode      TravelMode
	AvoidHighways    bool
	AvoidTolls       bool
	Units            Units
	PreferredTherapy TherapyType
	UpdatedAt        time.Time
}

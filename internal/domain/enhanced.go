package domain

// StressLevel represents the classified psychological stress of a route.
type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

// Rank orders stress levels so that low < medium < high.
func (l StressLevel) Rank() int {
	switch l {
	case StressHigh:
		return 2
	case StressMedium:
		return 1
	default:
		return 0
	}
}

// TherapyType represents a coping-content category recommended for a route.
type TherapyType string

const (
	TherapyNatureSounds      TherapyType = "Nature Sounds"
	TherapyBreathingExercise TherapyType = "Breathing Exercise"
	TherapyGuidedMeditation  TherapyType = "Guided Meditation"
)

// TrafficLabel is the presentation label for traffic intensity.
type TrafficLabel string

const (
	TrafficLight    TrafficLabel = "Light"
	TrafficModerate TrafficLabel = "Moderate"
	TrafficHeavy    TrafficLabel = "Heavy"
)

// StressAnalysis is the result of classifying a raw route.
type StressAnalysis struct {
	Level   StressLevel
	Factors []string
}

// EnhancedRoute is a raw provider route augmented with stress and therapy
// metadata for presentation. Constructed once per classification and
// immutable thereafter.
type EnhancedRoute struct {
	ID                string // Request-scoped ordinal id: route-{index}
	Name              string
	Summary           string
	Distance          TextValue
	Duration          TextValue
	DurationInTraffic *TextValue
	StressLevel       StressLevel
	StressFactors     []string
	TherapyType       TherapyType
	DisplayColor      string
	TrafficLabel      TrafficLabel
	Legs              []RouteLeg
	OverviewPolyline  string
	Warnings          []string
}

package service

import "calmroute/internal/domain"

// RecommendTherapy maps a stress level to the suggested coping-content
// category. The mapping is a fixed total lookup over the three-valued
// domain, not a heuristic.
func RecommendTherapy(level domain.StressLevel) domain.TherapyType {
	switch level {
	case domain.StressHigh:
		return domain.TherapyGuidedMeditation
	case domain.StressMedium:
		return domain.TherapyBreathingExercise
	default:
		return domain.TherapyNatureSounds
	}
}

package service

import (
	"fmt"

	"calmroute/internal/domain"
)

// Fixed three-color palette keyed by stress level.
var stressColors = map[domain.StressLevel]string{
	domain.StressLow:    "#4CAF50",
	domain.StressMedium: "#FF9800",
	domain.StressHigh:   "#F44336",
}

// RouteEnhancer composes the stress classifier and therapy recommender with
// presentation metadata into the externally consumed route representation.
type RouteEnhancer struct {
	classifier *StressClassifier
}

// NewRouteEnhancer creates an enhancer backed by the given classifier.
func NewRouteEnhancer(classifier *StressClassifier) *RouteEnhancer {
	return &RouteEnhancer{classifier: classifier}
}

// Enhance classifies each raw route in input order. Output order equals
// input order; routes are never re-sorted by stress or duration.
func (e *RouteEnhancer) Enhance(rawRoutes []domain.RawRoute) []domain.EnhancedRoute {
	enhanced := make([]domain.EnhancedRoute, 0, len(rawRoutes))

	for i, raw := range rawRoutes {
		analysis := e.classifier.Classify(raw)

		summary := raw.Summary
		if summary == "" {
			summary = fmt.Sprintf("Route %d", i+1)
		}

		enhanced = append(enhanced, domain.EnhancedRoute{
			ID:                fmt.Sprintf("route-%d", i),
			Name:              fmt.Sprintf("Route %d", i+1),
			Summary:           summary,
			Distance:          raw.Distance,
			Duration:          raw.Duration,
			DurationInTraffic: raw.DurationInTraffic,
			StressLevel:       analysis.Level,
			StressFactors:     analysis.Factors,
			TherapyType:       RecommendTherapy(analysis.Level),
			DisplayColor:      stressColors[analysis.Level],
			TrafficLabel:      e.classifier.TrafficLabel(raw),
			Legs:              raw.Legs,
			OverviewPolyline:  raw.OverviewPolyline,
			Warnings:          raw.Warnings,
		})
	}

	return enhanced
}

package service

import "calmroute/internal/domain"

// DemoDataVersion identifies the shipped demonstration dataset.
const DemoDataVersion = "2025.2"

// demoRoutes is the fixed offline dataset served when the directions
// provider fails in a recoverable way. The routes ship pre-labeled and are
// never re-run through the classifier, so demo behavior stays stable even
// if classification rules change. One route per stress level keeps the UI
// testable offline.
var demoRoutes = []domain.EnhancedRoute{
	{
		ID:       "route-0",
		Name:     "Route 1",
		Summary:  "Riverside Parkway",
		Distance: domain.TextValue{Text: "8.4 km", Value: 8400},
		Duration: domain.TextValue{Text: "14 min", Value: 840},
		DurationInTraffic: &domain.TextValue{
			Text: "15 min", Value: 900,
		},
		StressLevel:   domain.StressLow,
		StressFactors: []string{"Scenic waterfront", "Low traffic volume"},
		TherapyType:   domain.TherapyNatureSounds,
		DisplayColor:  "#4CAF50",
		TrafficLabel:  domain.TrafficLight,
		Legs: []domain.RouteLeg{
			{
				Distance:      domain.TextValue{Text: "8.4 km", Value: 8400},
				Duration:      domain.TextValue{Text: "14 min", Value: 840},
				StartAddress:  "12 Harbor St",
				EndAddress:    "200 Riverside Dr",
				StartLocation: domain.LatLng{Lat: 52.5180, Lng: 13.3761},
				EndLocation:   domain.LatLng{Lat: 52.5432, Lng: 13.4127},
			},
		},
		OverviewPolyline: "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
	},
	{
		ID:       "route-1",
		Name:     "Route 2",
		Summary:  "Market St / Old Town",
		Distance: domain.TextValue{Text: "6.9 km", Value: 6900},
		Duration: domain.TextValue{Text: "12 min", Value: 720},
		DurationInTraffic: &domain.TextValue{
			Text: "16 min", Value: 960,
		},
		StressLevel:   domain.StressMedium,
		StressFactors: []string{"Moderate traffic", "Construction zones"},
		TherapyType:   domain.TherapyBreathingExercise,
		DisplayColor:  "#FF9800",
		TrafficLabel:  domain.TrafficModerate,
		Legs: []domain.RouteLeg{
			{
				Distance:      domain.TextValue{Text: "6.9 km", Value: 6900},
				Duration:      domain.TextValue{Text: "12 min", Value: 720},
				StartAddress:  "12 Harbor St",
				EndAddress:    "45 Market St",
				StartLocation: domain.LatLng{Lat: 52.5180, Lng: 13.3761},
				EndLocation:   domain.LatLng{Lat: 52.5289, Lng: 13.4012},
			},
		},
		OverviewPolyline: "u{~vFvyys@fS]",
		Warnings:         []string{"Construction ahead on Market St"},
	},
	{
		ID:       "route-2",
		Name:     "Route 3",
		Summary:  "Central Expressway",
		Distance: domain.TextValue{Text: "5.8 km", Value: 5800},
		Duration: domain.TextValue{Text: "10 min", Value: 600},
		DurationInTraffic: &domain.TextValue{
			Text: "18 min", Value: 1080,
		},
		StressLevel:   domain.StressHigh,
		StressFactors: []string{"Heavy traffic", "Frequent merging"},
		TherapyType:   domain.TherapyGuidedMeditation,
		DisplayColor:  "#F44336",
		TrafficLabel:  domain.TrafficHeavy,
		Legs: []domain.RouteLeg{
			{
				Distance:      domain.TextValue{Text: "5.8 km", Value: 5800},
				Duration:      domain.TextValue{Text: "10 min", Value: 600},
				StartAddress:  "12 Harbor St",
				EndAddress:    "1 Central Plaza",
				StartLocation: domain.LatLng{Lat: 52.5180, Lng: 13.3761},
				EndLocation:   domain.LatLng{Lat: 52.5075, Lng: 13.3903},
			},
		},
		OverviewPolyline: "ihlfHyjd~A`BmD",
	},
}

// DemoRoutes returns the demonstration dataset. Each call returns fresh
// copies so callers can hold the result without aliasing the shared data.
func DemoRoutes() []domain.EnhancedRoute {
	out := make([]domain.EnhancedRoute, len(demoRoutes))
	for i, r := range demoRoutes {
		out[i] = copyEnhancedRoute(r)
	}
	return out
}

func copyEnhancedRoute(r domain.EnhancedRoute) domain.EnhancedRoute {
	cp := r
	if r.DurationInTraffic != nil {
		traffic := *r.DurationInTraffic
		cp.DurationInTraffic = &traffic
	}
	cp.StressFactors = append([]string(nil), r.StressFactors...)
	cp.Legs = append([]domain.RouteLeg(nil), r.Legs...)
	cp.Warnings = append([]string(nil), r.Warnings...)
	return cp
}

package service

import (
	"testing"

	"calmroute/internal/domain"
)

func TestDemoRoutes_CoversAllStressLevels(t *testing.T) {
	t.Parallel()

	routes := DemoRoutes()
	if len(routes) != 3 {
		t.Fatalf("expected 3 demo routes, got %d", len(routes))
	}

	want := []domain.StressLevel{domain.StressLow, domain.StressMedium, domain.StressHigh}
	for i, level := range want {
		if routes[i].StressLevel != level {
			t.Errorf("route %d: expected level %s, got %s", i, level, routes[i].StressLevel)
		}
		if routes[i].TherapyType != RecommendTherapy(level) {
			t.Errorf("route %d: therapy %s does not match level %s", i, routes[i].TherapyType, level)
		}
		if routes[i].DisplayColor != stressColors[level] {
			t.Errorf("route %d: color %s does not match level %s", i, routes[i].DisplayColor, level)
		}
	}
}

func TestDemoRoutes_CallersGetIndependentCopies(t *testing.T) {
	t.Parallel()

	first := DemoRoutes()
	first[0].Name = "mutated"
	first[0].StressFactors[0] = "mutated"
	first[0].DurationInTraffic.Value = -1

	second := DemoRoutes()
	if second[0].Name == "mutated" {
		t.Error("expected route values to be copied")
	}
	if second[0].StressFactors[0] == "mutated" {
		t.Error("expected factor slices to be copied")
	}
	if second[0].DurationInTraffic.Value == -1 {
		t.Error("expected traffic durations to be copied")
	}
}

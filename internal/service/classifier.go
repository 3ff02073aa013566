package service

import (
	"strings"

	"calmroute/internal/domain"
)

// ClassifierConfig contains the traffic-ratio thresholds for stress
// classification and traffic labeling.
type ClassifierConfig struct {
	HeavyTrafficRatio    float64 // Ratio above which traffic counts as heavy
	ModerateTrafficRatio float64 // Ratio above which traffic counts as moderate
}

// DefaultClassifierConfig returns the default threshold policy.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		HeavyTrafficRatio:    1.5,
		ModerateTrafficRatio: 1.2,
	}
}

// StressClassifier derives a stress level and its contributing factors from
// objective trip attributes. Classification is deterministic, pure, and
// total over all well-formed raw routes.
type StressClassifier struct {
	cfg ClassifierConfig
}

// NewStressClassifier creates a classifier with the given thresholds.
func NewStressClassifier(cfg ClassifierConfig) *StressClassifier {
	if cfg.HeavyTrafficRatio <= 0 {
		cfg.HeavyTrafficRatio = DefaultClassifierConfig().HeavyTrafficRatio
	}
	if cfg.ModerateTrafficRatio <= 0 {
		cfg.ModerateTrafficRatio = DefaultClassifierConfig().ModerateTrafficRatio
	}
	return &StressClassifier{cfg: cfg}
}

// Classify runs the priority-ordered rule set over a raw route. Each rule
// may raise the level floor and append a factor; the final level is the
// maximum of all rule outputs and factors keep first-trigger order with
// duplicates removed.
func (c *StressClassifier) Classify(route domain.RawRoute) domain.StressAnalysis {
	level := domain.StressLow
	var factors []string

	if ratio, ok := trafficRatio(route); ok {
		switch {
		case ratio > c.cfg.HeavyTrafficRatio:
			level = maxLevel(level, domain.StressHigh)
			factors = append(factors, "Heavy traffic")
		case ratio > c.cfg.ModerateTrafficRatio:
			level = maxLevel(level, domain.StressMedium)
			factors = append(factors, "Moderate traffic")
		}
	}

	if len(route.Warnings) > 0 {
		level = maxLevel(level, domain.StressMedium)
		factors = append(factors, warningFactor(route.Warnings[0]))
	}

	return domain.StressAnalysis{
		Level:   level,
		Factors: dedupe(factors),
	}
}

// TrafficLabel computes the presentation label from the same thresholds as
// classification. It is reported separately from the stress level.
func (c *StressClassifier) TrafficLabel(route domain.RawRoute) domain.TrafficLabel {
	ratio, ok := trafficRatio(route)
	if !ok {
		return domain.TrafficLight
	}
	switch {
	case ratio > c.cfg.HeavyTrafficRatio:
		return domain.TrafficHeavy
	case ratio > c.cfg.ModerateTrafficRatio:
		return domain.TrafficModerate
	default:
		return domain.TrafficLight
	}
}

// trafficRatio returns durationInTraffic/duration when both are usable.
func trafficRatio(route domain.RawRoute) (float64, bool) {
	if route.DurationInTraffic == nil || route.Duration.Value <= 0 {
		return 0, false
	}
	return float64(route.DurationInTraffic.Value) / float64(route.Duration.Value), true
}

// warningFactor maps a provider warning to its semantic factor label.
// Unrecognized warnings pass through verbatim so the factor list never
// loses information.
func warningFactor(warning string) string {
	lower := strings.ToLower(warning)
	switch {
	case strings.Contains(lower, "construction"):
		return "Construction zones"
	case strings.Contains(lower, "toll"):
		return "Toll roads"
	case strings.Contains(lower, "ferr"):
		return "Ferry crossing"
	case strings.Contains(lower, "closure"), strings.Contains(lower, "closed"):
		return "Road closures"
	default:
		return warning
	}
}

// maxLevel returns the higher of two stress levels.
func maxLevel(a, b domain.StressLevel) domain.StressLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// dedupe removes duplicate factors preserving first occurrence order.
func dedupe(factors []string) []string {
	if len(factors) < 2 {
		return factors
	}
	seen := make(map[string]struct{}, len(factors))
	out := factors[:0]
	for _, f := range factors {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

package service

import (
	"strings"

	"calmroute/internal/domain"
)

// ValidateTravelMode parses a travel mode string. Empty defaults to driving.
func ValidateTravelMode(mode string) (domain.TravelMode, error) {
	if mode == "" {
		return domain.ModeDriving, nil
	}
	switch m := domain.TravelMode(strings.ToLower(mode)); m {
	case domain.ModeDriving, domain.ModeWalking, domain.ModeBicycling, domain.ModeTransit:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

// ValidateUnits parses a unit system string. Empty defaults to metric.
func ValidateUnits(units string) (domain.Units, error) {
	if units == "" {
		return domain.UnitsMetric, nil
	}
	switch u := domain.Units(strings.ToLower(units)); u {
	case domain.UnitsMetric, domain.UnitsImperial:
		return u, nil
	default:
		return "", ErrInvalidUnits
	}
}

package service

import (
	"fmt"

	"calmroute/internal/domain"
)

// Fingerprint derives the cache key for a route request. It is a pure
// function of the request's field values: equal requests always produce
// equal keys, across processes and restarts. Optional fields are normalized
// to their defaults before serialization so that an unset mode and an
// explicit "driving" fingerprint identically.
func Fingerprint(req domain.RouteRequest) string {
	mode := req.Options.Mode
	if mode == "" {
		mode = domain.ModeDriving
	}
	units := req.Options.Units
	if units == "" {
		units = domain.UnitsMetric
	}

	return fmt.Sprintf("route:%.6f,%.6f:%.6f,%.6f:%s:alt=%t:hwy=%t:toll=%t:%s:dep=%d",
		req.Origin.Lat, req.Origin.Lng,
		req.Destination.Lat, req.Destination.Lng,
		mode,
		req.Options.Alternatives,
		req.Options.AvoidHighways,
		req.Options.AvoidTolls,
		units,
		req.Options.DepartureTime,
	)
}

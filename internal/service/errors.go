package service

import "errors"

var (
	// ErrSessionNotFound is returned when an evaluation session does not exist.
	ErrSessionNotFound = errors.New("evaluation session not found")

	// ErrInvalidOrigin is returned when origin coordinates are invalid.
	ErrInvalidOrigin = errors.New("invalid origin location")

	// ErrInvalidDestination is returned when destination coordinates are invalid.
	ErrInvalidDestination = errors.New("invalid destination location")

	// ErrInvalidMode is returned when the travel mode is not recognized.
	ErrInvalidMode = errors.New("invalid travel mode")

	// ErrInvalidUnits is returned when the unit system is not recognized.
	ErrInvalidUnits = errors.New("invalid units")

	// ErrInvalidUserID is returned when a user id is empty.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidRouteName is returned when a saved route name is empty.
	ErrInvalidRouteName = errors.New("invalid route name")

	// ErrInvalidRouteID is returned when a saved route id is empty.
	ErrInvalidRouteID = errors.New("invalid route id")
)

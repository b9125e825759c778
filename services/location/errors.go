package location

import "errors"

var (
	// ErrPermissionDenied indicates the user denied location access
	ErrPermissionDenied = errors.New("location permission denied")

	// ErrPositionTimeout indicates both acquisition tiers timed out
	ErrPositionTimeout = errors.New("position acquisition timed out")

	// ErrPositionInvalid indicates the platform returned a (0,0) sentinel fix
	ErrPositionInvalid = errors.New("position coordinates invalid")
)

package domain

import "errors"

var (
	// ErrUnrecognizedDuration is returned when a duration label is not part of the known vocabulary
	ErrUnrecognizedDuration = errors.New("domain: unrecognized duration")

	// ErrInvalidInterval is returned when an interval violates start < end
	ErrInvalidInterval = errors.New("domain: invalid interval")

	// ErrUnknownStatus is returned for a reservation status outside the known set
	ErrUnknownStatus = errors.New("domain: unknown reservation status")

	// ErrHoursNotFound is returned by hours sources when a specialist has no stored hours.
	// Callers fall back to the deployment defaults.
	ErrHoursNotFound = errors.New("domain: business hours not found")
)

package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusPending   ReservationStatus = "pending"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ParseReservationStatus validates a raw status value
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	for _, known := range AllStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// BlocksAvailability returns true if a reservation in this status occupies its interval.
// Cancelled reservations never block.
func (s ReservationStatus) BlocksAvailability() bool {
	return s != StatusCancelled
}

// Interval is a half-open range [Start, End) of times of day.
type Interval struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// NewInterval builds an interval and checks Start < End and both bounds are within a day.
func NewInterval(start, end types.TimeOfDay) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate checks the interval invariant. End may be exactly "24:00".
func (iv Interval) Validate() error {
	if err := iv.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if iv.End <= iv.Start || iv.End > types.MinutesPerDay {
		return fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval, iv.Start, iv.End)
	}
	return nil
}

// DurationMinutes returns the length of the interval in minutes
func (iv Interval) DurationMinutes() int {
	return iv.End.Minutes() - iv.Start.Minutes()
}

// Overlaps reports whether two half-open intervals share at least one minute.
// [a0,a1) and [b0,b1) overlap iff a0 < b1 && b0 < a1, so touching intervals
// (a1 == b0) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.IsBefore(other.End) && other.Start.IsBefore(iv.End)
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return !other.Start.IsBefore(iv.Start) && !other.End.IsAfter(iv.End)
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s–%s", iv.Start, iv.End)
}

// Reservation represents an existing booking on a given day.
// The availability engine only reads reservations; their lifetime belongs to the booking store.
type Reservation struct {
	ID           uuid.UUID
	Interval     Interval
	Status       ReservationStatus
	OwnerLabel   string // client name
	ServiceLabel string
}

// IsBlocking returns true if the reservation occupies its interval
func (r *Reservation) IsBlocking() bool {
	return r.Status.BlocksAvailability()
}

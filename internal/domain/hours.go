package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// BusinessHours is the single daily window during which sessions may be scheduled.
type BusinessHours struct {
	Interval
}

// NewBusinessHours builds business hours from open and close times
func NewBusinessHours(openAt, closeAt types.TimeOfDay) (BusinessHours, error) {
	iv, err := NewInterval(openAt, closeAt)
	if err != nil {
		return BusinessHours{}, err
	}
	return BusinessHours{Interval: iv}, nil
}

// Open returns the opening time
func (h BusinessHours) Open() types.TimeOfDay {
	return h.Start
}

// Close returns the closing time
func (h BusinessHours) Close() types.TimeOfDay {
	return h.End
}

// Fits returns true if a session of the given duration starting at start ends no later than close.
// A session ending exactly at close is allowed.
func (h BusinessHours) Fits(start types.TimeOfDay, durationMinutes int) bool {
	return h.Contains(Interval{Start: start, End: start.AddMinutes(durationMinutes)})
}

// DefaultBusinessHours returns 09:00–18:00
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{Interval: Interval{
		Start: types.TimeOfDay(DefaultOpenMinutes),
		End:   types.TimeOfDay(DefaultCloseMinutes),
	}}
}

// SpecialistHours represents the stored business hours configuration for a specialist.
// Supports hierarchical configuration:
// 1. Specialist on a specific weekday (specialist_id, weekday)
// 2. Specialist on any weekday (specialist_id, NULL)
type SpecialistHours struct {
	ID                 int64
	SpecialistID       int64
	Weekday            *time.Weekday // NULL = applies to every weekday
	Hours              BusinessHours
	GranularityMinutes *int // NULL = deployment default
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsWeekdaySpecific returns true if this configuration is for a specific weekday
func (c *SpecialistHours) IsWeekdaySpecific() bool {
	return c.Weekday != nil
}

// HasGranularityOverride returns true if the specialist overrides the slot step
func (c *SpecialistHours) HasGranularityOverride() bool {
	return c.GranularityMinutes != nil
}

// AvailabilityConfig is everything the engine needs besides the reservation snapshot.
type AvailabilityConfig struct {
	Hours              BusinessHours
	GranularityMinutes int
}

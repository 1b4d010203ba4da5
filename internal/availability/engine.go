package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Engine computes bookable slots and validates candidate bookings over one day's reservations.
//
// Engine holds no mutable state and never modifies the reservations it is given, so a single
// instance may be shared by any number of goroutines. The clock is read exactly once per call.
type Engine struct {
	clock Clock
}

// NewEngine creates an engine. A nil clock means RealClock.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Engine{clock: clock}
}

// EnumerateSlots returns, in ascending order, every start time on the granularity grid from
// opening time such that a session of durationMinutes still ends by closing time, does not
// overlap a non-cancelled reservation and is not in the past. The result is never nil.
//
// Panics with ErrContractViolation on non-positive duration or granularity or invalid hours.
func (e *Engine) EnumerateSlots(
	date time.Time,
	reservations []domain.Reservation,
	durationMinutes int,
	hours domain.BusinessHours,
	granularityMinutes int,
) []types.TimeOfDay {
	mustValidDuration(durationMinutes)
	mustValidHours(hours)
	mustValidGranularity(granularityMinutes)
	mustValidReservations(reservations)

	slots := make([]types.TimeOfDay, 0)

	cutoff, dayPassed := pastCutoff(date, e.clock.Now())
	if dayPassed {
		return slots
	}

	lastStart := hours.End.AddMinutes(-durationMinutes)
	for t := hours.Start; !t.IsAfter(lastStart); t = t.AddMinutes(granularityMinutes) {
		if t.IsBefore(cutoff) {
			continue
		}
		session := domain.Interval{Start: t, End: t.AddMinutes(durationMinutes)}
		if findConflict(reservations, session) != nil {
			continue
		}
		slots = append(slots, t)
	}

	return slots
}

// ValidateSlot checks a single candidate start time. Rules are applied in order and the first
// match decides: outside business hours, in the past, conflict with a blocking reservation.
//
// Panics with ErrContractViolation on invalid arguments, like EnumerateSlots.
func (e *Engine) ValidateSlot(
	date time.Time,
	reservations []domain.Reservation,
	candidateStart types.TimeOfDay,
	durationMinutes int,
	hours domain.BusinessHours,
) domain.Decision {
	mustValidDuration(durationMinutes)
	mustValidHours(hours)
	mustValidReservations(reservations)
	if err := candidateStart.Validate(); err != nil {
		panic(fmt.Errorf("%w: candidate start: %v", ErrContractViolation, err))
	}

	if !hours.Fits(candidateStart, durationMinutes) {
		return domain.Reject(domain.ReasonOutsideBusinessHours)
	}

	cutoff, dayPassed := pastCutoff(date, e.clock.Now())
	if dayPassed || candidateStart.IsBefore(cutoff) {
		return domain.Reject(domain.ReasonInPast)
	}

	session := domain.Interval{Start: candidateStart, End: candidateStart.AddMinutes(durationMinutes)}
	if conflict := findConflict(reservations, session); conflict != nil {
		return domain.RejectConflict(conflict)
	}

	return domain.Accept()
}

func mustValidDuration(durationMinutes int) {
	if durationMinutes <= 0 {
		panic(fmt.Errorf("%w: duration must be positive, got %d", ErrContractViolation, durationMinutes))
	}
}

func mustValidGranularity(granularityMinutes int) {
	if granularityMinutes <= 0 {
		panic(fmt.Errorf("%w: granularity must be positive, got %d", ErrContractViolation, granularityMinutes))
	}
}

func mustValidHours(hours domain.BusinessHours) {
	if err := hours.Validate(); err != nil {
		panic(fmt.Errorf("%w: business hours: %v", ErrContractViolation, err))
	}
}

func mustValidReservations(reservations []domain.Reservation) {
	for i := range reservations {
		if err := reservations[i].Interval.Validate(); err != nil {
			panic(fmt.Errorf("%w: reservation %s: %v", ErrContractViolation, reservations[i].ID, err))
		}
	}
}

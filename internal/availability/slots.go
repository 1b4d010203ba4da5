package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// findConflict returns the earliest-starting blocking reservation that overlaps session, or nil.
// Ties keep the first one in input order so the reported conflict is deterministic.
func findConflict(reservations []domain.Reservation, session domain.Interval) *domain.Reservation {
	var earliest *domain.Reservation

	for i := range reservations {
		r := &reservations[i]
		if !r.IsBlocking() {
			continue
		}
		if !r.Interval.Overlaps(session) {
			continue
		}
		if earliest == nil || r.Interval.Start.IsBefore(earliest.Interval.Start) {
			earliest = r
		}
	}

	return earliest
}

// pastCutoff returns the earliest start time that is not in the past on date.
// now is read in date's location and rounded up to a whole minute, so at 12:10:30
// a 12:10 start is already past. For a day before today dayPassed is true.
// For a day after today the cutoff is midnight, so nothing is filtered.
func pastCutoff(date, now time.Time) (cutoff types.TimeOfDay, dayPassed bool) {
	now = now.In(date.Location())

	if isDateInPast(date, now) {
		return 0, true
	}
	if isSameDay(date, now) {
		cutoff = types.NewTimeOfDay(now)
		if now.Second() != 0 || now.Nanosecond() != 0 {
			cutoff = cutoff.AddMinutes(1)
		}
		return cutoff, false
	}
	return 0, false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}

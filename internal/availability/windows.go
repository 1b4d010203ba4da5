package availability

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// BusyIntervals returns the intervals occupied by blocking reservations, sorted by start,
// with overlapping and adjacent intervals merged. Cancelled reservations are ignored.
// The input is not modified and the result is never nil.
func BusyIntervals(reservations []domain.Reservation) []domain.Interval {
	busy := make([]domain.Interval, 0, len(reservations))
	for i := range reservations {
		if reservations[i].IsBlocking() {
			busy = append(busy, reservations[i].Interval)
		}
	}

	sort.Slice(busy, func(i, j int) bool {
		if busy[i].Start != busy[j].Start {
			return busy[i].Start < busy[j].Start
		}
		return busy[i].End < busy[j].End
	})

	merged := busy[:0]
	for _, iv := range busy {
		last := len(merged) - 1
		if last >= 0 && !iv.Start.IsAfter(merged[last].End) {
			if iv.End.IsAfter(merged[last].End) {
				merged[last].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// FreeWindows returns the maximal gaps inside business hours not covered by any blocking
// reservation, in ascending order. Reservations reaching outside the hours are clipped.
// Time already in the past is not removed: callers that care use EnumerateSlots.
func FreeWindows(hours domain.BusinessHours, reservations []domain.Reservation) []domain.Interval {
	mustValidHours(hours)
	mustValidReservations(reservations)

	free := make([]domain.Interval, 0)
	cursor := hours.Start

	for _, busy := range BusyIntervals(reservations) {
		if !busy.End.IsAfter(cursor) {
			continue
		}
		if !busy.Start.IsBefore(hours.End) {
			break
		}
		if busy.Start.IsAfter(cursor) {
			free = append(free, domain.Interval{Start: cursor, End: busy.Start})
		}
		cursor = busy.End
	}

	if cursor.IsBefore(hours.End) {
		free = append(free, domain.Interval{Start: cursor, End: hours.End})
	}

	return free
}

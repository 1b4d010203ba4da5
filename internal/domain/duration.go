package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// bookingDurations maps the booking dialog vocabulary to minutes.
var bookingDurations = map[string]int{
	"30 minutes":  30,
	"45 minutes":  45,
	"60 minutes":  60,
	"90 minutes":  90,
	"120 minutes": 120,
}

// BookingDurationLabels returns the canonical booking duration labels in ascending order
func BookingDurationLabels() []string {
	return []string{"30 minutes", "45 minutes", "60 minutes", "90 minutes", "120 minutes"}
}

// ParseDurationLabel maps a booking duration label such as "90 minutes" to minutes.
// Only the canonical labels are accepted.
func ParseDurationLabel(label string) (int, error) {
	minutes, ok := bookingDurations[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDuration, label)
	}
	return minutes, nil
}

// ParseHoursLabel maps a service editor label such as "2 hours" or "1 hour" to minutes.
// It is kept apart from ParseDurationLabel because the two forms use different vocabularies.
func ParseHoursLabel(label string) (int, error) {
	fields := strings.Fields(strings.ToLower(label))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDuration, label)
	}

	hours, err := strconv.Atoi(fields[0])
	if err != nil || hours <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDuration, label)
	}

	unit := fields[1]
	if unit != "hours" && !(unit == "hour" && hours == 1) {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDuration, label)
	}

	minutes := hours * 60
	if minutes > MaxDurationMinutes {
		return 0, fmt.Errorf("%w: %q exceeds %d minutes", ErrUnrecognizedDuration, label, MaxDurationMinutes)
	}
	return minutes, nil
}

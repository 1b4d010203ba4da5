package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// RejectionReason explains why a candidate slot cannot be booked
type RejectionReason string

const (
	ReasonNone                 RejectionReason = ""
	ReasonOutsideBusinessHours RejectionReason = "outside_business_hours"
	ReasonInPast               RejectionReason = "in_past"
	ReasonConflict             RejectionReason = "conflict"
)

// Conflict describes the reservation a candidate collides with.
type Conflict struct {
	ReservationID uuid.UUID
	OwnerLabel    string
	ServiceLabel  string
	Interval      Interval
}

// Decision is the outcome of validating a candidate slot.
// Rejections are data, not errors: the UI renders them inline.
type Decision struct {
	Available bool
	Reason    RejectionReason
	Conflict  *Conflict // set only when Reason == ReasonConflict
}

// Accept returns an available decision
func Accept() Decision {
	return Decision{Available: true}
}

// Reject returns an unavailable decision with the given reason
func Reject(reason RejectionReason) Decision {
	return Decision{Available: false, Reason: reason}
}

// RejectConflict returns a conflict decision carrying the blocking reservation
func RejectConflict(r *Reservation) Decision {
	return Decision{
		Available: false,
		Reason:    ReasonConflict,
		Conflict: &Conflict{
			ReservationID: r.ID,
			OwnerLabel:    r.OwnerLabel,
			ServiceLabel:  r.ServiceLabel,
			Interval:      r.Interval,
		},
	}
}

// Message renders a user-facing explanation, e.g.
// "Conflicts with Jane D. — Astrology Reading, 14:00–15:00".
func (d Decision) Message() string {
	switch d.Reason {
	case ReasonNone:
		return ""
	case ReasonOutsideBusinessHours:
		return "Outside business hours"
	case ReasonInPast:
		return "This time has already passed"
	case ReasonConflict:
		if d.Conflict == nil {
			return "Conflicts with an existing reservation"
		}
		return d.Conflict.Message()
	default:
		return string(d.Reason)
	}
}

// Message renders the conflicting reservation for a tooltip
func (c *Conflict) Message() string {
	switch {
	case c.OwnerLabel != "" && c.ServiceLabel != "":
		return fmt.Sprintf("Conflicts with %s — %s, %s", c.OwnerLabel, c.ServiceLabel, c.Interval)
	case c.OwnerLabel != "":
		return fmt.Sprintf("Conflicts with %s, %s", c.OwnerLabel, c.Interval)
	case c.ServiceLabel != "":
		return fmt.Sprintf("Conflicts with %s, %s", c.ServiceLabel, c.Interval)
	default:
		return fmt.Sprintf("Conflicts with an existing reservation, %s", c.Interval)
	}
}

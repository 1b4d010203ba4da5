package domain

// Default configuration values
const (
	DefaultOpenMinutes        = 9 * 60  // 09:00
	DefaultCloseMinutes       = 18 * 60 // 18:00
	DefaultGranularityMinutes = 30
)

// Business validation constants
const (
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 240
	MinDurationMinutes    = 1
	MaxDurationMinutes    = 12 * 60
)

// DateFormat is the calendar date layout used by the API and cache keys (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// AllStatuses lists every known reservation status
var AllStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
	StatusCompleted,
}

// BlockingStatuses lists statuses that occupy their interval.
// Used by storage to filter reservations before they reach the engine.
var BlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusPending,
	StatusCompleted,
}

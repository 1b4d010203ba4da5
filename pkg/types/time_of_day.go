package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the exclusive upper bound of a TimeOfDay.
const MinutesPerDay = 24 * 60

// EndOfDay is the exclusive end of a day, rendered "24:00". Valid only as an interval end.
const EndOfDay = TimeOfDay(MinutesPerDay)

// ErrInvalidTimeOfDay is returned when a value cannot represent a wall-clock time within a day.
var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time within a day stored as minutes since midnight.
// No timezone is attached: the day is local to the specialist.
//
// Valid values are 0..1439. MinutesPerDay itself ("24:00") only ever appears as the
// exclusive end of an interval.
type TimeOfDay int

// NewTimeOfDay returns the minute of day of t in t's own location. Seconds are truncated.
func NewTimeOfDay(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// FromMinutes builds a TimeOfDay from minutes since midnight.
func FromMinutes(minutes int) (TimeOfDay, error) {
	t := TimeOfDay(minutes)
	if err := t.Validate(); err != nil {
		return 0, err
	}
	return t, nil
}

// ParseTimeOfDay parses "HH:MM" (or "H:MM").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeOfDay, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeOfDay, s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeOfDay, s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// ParseIntervalEnd is like ParseTimeOfDay but also accepts "24:00" as EndOfDay.
func ParseIntervalEnd(s string) (TimeOfDay, error) {
	if strings.TrimSpace(s) == "24:00" {
		return EndOfDay, nil
	}
	return ParseTimeOfDay(s)
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on malformed input.
// Use it for constants and test fixtures only.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// IsValid reports whether t is within [00:00, 23:59].
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Validate returns ErrInvalidTimeOfDay if t is out of range.
func (t TimeOfDay) Validate() error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %d minutes", ErrInvalidTimeOfDay, int(t))
	}
	return nil
}

// AddMinutes shifts t by the given number of minutes. The result is not range-checked
// so that an interval end may land exactly on MinutesPerDay.
func (t TimeOfDay) AddMinutes(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t > other
}

// String renders "HH:MM". MinutesPerDay renders as "24:00".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// MarshalJSON encodes t as "HH:MM".
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes "HH:MM".
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeOfDay, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for Postgres TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	if t == EndOfDay {
		return "24:00:00", nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String() + ":00", nil
}

// Scan implements sql.Scanner. lib/pq returns TIME columns as time.Time, other drivers as text.
// "24:00:00" scans as EndOfDay.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		// lib/pq decodes TIME '24:00:00' as 0000-01-02 00:00
		if v.Year() == 0 && v.YearDay() == 2 && v.Hour() == 0 && v.Minute() == 0 {
			*t = EndOfDay
			return nil
		}
		*t = NewTimeOfDay(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case int64:
		parsed, err := FromMinutes(int(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeOfDay, src)
	}
}

// scanString accepts "HH:MM" and "HH:MM:SS"; seconds are dropped.
func (t *TimeOfDay) scanString(s string) error {
	if len(s) > 5 && s[5] == ':' {
		s = s[:5]
	}
	parsed, err := ParseIntervalEnd(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

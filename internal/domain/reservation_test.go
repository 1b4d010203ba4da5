package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func iv(start, end string) Interval {
	return Interval{Start: types.MustParseTimeOfDay(start), End: types.MustParseTimeOfDay(end)}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "a ends where b starts", a: iv("09:00", "10:00"), b: iv("10:00", "11:00"), want: false},
		{name: "b ends where a starts", a: iv("10:00", "11:00"), b: iv("09:00", "10:00"), want: false},
		{name: "one minute shared", a: iv("09:00", "10:01"), b: iv("10:00", "11:00"), want: true},
		{name: "identical", a: iv("10:00", "11:00"), b: iv("10:00", "11:00"), want: true},
		{name: "contained", a: iv("09:00", "12:00"), b: iv("10:00", "11:00"), want: true},
		{name: "disjoint", a: iv("09:00", "09:30"), b: iv("14:00", "15:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestNewInterval(t *testing.T) {
	_, err := NewInterval(types.MustParseTimeOfDay("10:00"), types.MustParseTimeOfDay("10:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(types.MustParseTimeOfDay("11:00"), types.MustParseTimeOfDay("10:00"))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	got, err := NewInterval(types.MustParseTimeOfDay("23:00"), types.MinutesPerDay)
	require.NoError(t, err)
	assert.Equal(t, 60, got.DurationMinutes())
	assert.Equal(t, "23:00–24:00", got.String())
}

func TestInterval_Contains(t *testing.T) {
	outer := Interval{Start: types.MustParseTimeOfDay("09:00"), End: types.MustParseTimeOfDay("18:00")}

	assert.True(t, outer.Contains(outer))
	assert.True(t, outer.Contains(Interval{Start: types.MustParseTimeOfDay("10:00"), End: types.MustParseTimeOfDay("11:00")}))
	assert.False(t, outer.Contains(Interval{Start: types.MustParseTimeOfDay("08:30"), End: types.MustParseTimeOfDay("09:30")}))
	assert.False(t, outer.Contains(Interval{Start: types.MustParseTimeOfDay("17:30"), End: types.MustParseTimeOfDay("18:30")}))
}

func TestBusinessHours_Fits(t *testing.T) {
	hours := DefaultBusinessHours()

	assert.True(t, hours.Fits(types.MustParseTimeOfDay("17:00"), 60), "ending exactly at close is allowed")
	assert.False(t, hours.Fits(types.MustParseTimeOfDay("17:01"), 60))
	assert.True(t, hours.Fits(types.MustParseTimeOfDay("09:00"), 60))
	assert.False(t, hours.Fits(types.MustParseTimeOfDay("08:59"), 60))

	untilMidnight := BusinessHours{Interval: Interval{Start: types.MustParseTimeOfDay("20:00"), End: types.EndOfDay}}
	assert.True(t, untilMidnight.Fits(types.MustParseTimeOfDay("23:00"), 60))
	assert.False(t, untilMidnight.Fits(types.MustParseTimeOfDay("23:30"), 60))
}

func TestReservationStatus(t *testing.T) {
	assert.False(t, StatusCancelled.BlocksAvailability())
	for _, s := range BlockingStatuses {
		assert.True(t, s.BlocksAvailability(), s)
	}

	got, err := ParseReservationStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)

	_, err = ParseReservationStatus("no_show")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestDecision_Message(t *testing.T) {
	r := &Reservation{
		ID:           uuid.New(),
		Interval:     iv("14:00", "15:00"),
		Status:       StatusConfirmed,
		OwnerLabel:   "Jane D.",
		ServiceLabel: "Astrology Reading",
	}

	d := RejectConflict(r)
	assert.False(t, d.Available)
	assert.Equal(t, ReasonConflict, d.Reason)
	assert.Equal(t, r.ID, d.Conflict.ReservationID)
	assert.Equal(t, "Conflicts with Jane D. — Astrology Reading, 14:00–15:00", d.Message())

	assert.Equal(t, "", Accept().Message())
	assert.Equal(t, "Outside business hours", Reject(ReasonOutsideBusinessHours).Message())
	assert.Equal(t, "This time has already passed", Reject(ReasonInPast).Message())
}

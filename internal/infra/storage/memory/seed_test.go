package memory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

const validSeed = `
[[hours]]
specialist_id = 7
open_time = "10:00"
close_time = "20:00"

[[hours]]
specialist_id = 7
weekday = 6
open_time = "12:00"
close_time = "24:00"
granularity_minutes = 60

[[reservations]]
id = "4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60"
specialist_id = 7
date = "2025-03-10"
start_time = "14:00"
duration_minutes = 60
status = "confirmed"
owner_label = "Jane D."
service_label = "Astrology Reading"

[[reservations]]
specialist_id = 7
date = "2025-03-10"
start_time = "10:00"
duration_minutes = 30
status = "pending"
`

func TestStore_LoadSeed(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.LoadSeed(strings.NewReader(validSeed)))

	ctx := context.Background()
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	got, err := store.ListByDate(ctx, 7, monday)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uuid.MustParse("4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60"), got[0].ID)
	assert.Equal(t, "14:00–15:00", got[0].Interval.String())
	assert.Equal(t, "Jane D.", got[0].OwnerLabel)
	assert.Equal(t, domain.StatusPending, got[1].Status)
	assert.NotEqual(t, uuid.Nil, got[1].ID)

	hours, err := store.GetBusinessHours(ctx, 7, time.Monday)
	require.NoError(t, err)
	assert.Nil(t, hours.Weekday)
	assert.Equal(t, types.MustParseTimeOfDay("10:00"), hours.Hours.Open())

	saturday, err := store.GetBusinessHours(ctx, 7, time.Saturday)
	require.NoError(t, err)
	assert.Equal(t, types.EndOfDay, saturday.Hours.Close())
	require.NotNil(t, saturday.GranularityMinutes)
	assert.Equal(t, 60, *saturday.GranularityMinutes)
}

func TestStore_LoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))

	store := NewStore()
	require.NoError(t, store.LoadSeedFile(path))

	assert.ErrorIs(t, store.LoadSeedFile(filepath.Join(t.TempDir(), "missing.toml")), ErrInvalidSeed)
}

func TestStore_LoadSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "malformed toml", seed: `[[hours]`},
		{name: "close before open", seed: "[[hours]]\nspecialist_id = 1\nopen_time = \"18:00\"\nclose_time = \"09:00\""},
		{name: "weekday out of range", seed: "[[hours]]\nspecialist_id = 1\nweekday = 7\nopen_time = \"09:00\"\nclose_time = \"18:00\""},
		{name: "granularity out of range", seed: "[[hours]]\nspecialist_id = 1\nopen_time = \"09:00\"\nclose_time = \"18:00\"\ngranularity_minutes = 1"},
		{name: "reservation past midnight", seed: "[[reservations]]\nspecialist_id = 1\ndate = \"2025-03-10\"\nstart_time = \"23:30\"\nduration_minutes = 60\nstatus = \"confirmed\""},
		{name: "unknown status", seed: "[[reservations]]\nspecialist_id = 1\ndate = \"2025-03-10\"\nstart_time = \"10:00\"\nduration_minutes = 60\nstatus = \"maybe\""},
		{name: "bad date", seed: "[[reservations]]\nspecialist_id = 1\ndate = \"10.03.2025\"\nstart_time = \"10:00\"\nduration_minutes = 60\nstatus = \"confirmed\""},
		{name: "bad id", seed: "[[reservations]]\nid = \"nope\"\nspecialist_id = 1\ndate = \"2025-03-10\"\nstart_time = \"10:00\"\nduration_minutes = 60\nstatus = \"confirmed\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			err := store.LoadSeed(strings.NewReader(tt.seed))
			assert.ErrorIs(t, err, ErrInvalidSeed)

			_, hoursErr := store.GetBusinessHours(context.Background(), 1, time.Monday)
			assert.ErrorIs(t, hoursErr, domain.ErrHoursNotFound)
		})
	}
}

func TestStore_LoadSeedFile_Example(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.LoadSeedFile(filepath.Join("..", "..", "..", "..", "seed.example.toml")))

	got, err := store.ListByDate(context.Background(), 7, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeReader struct {
	calls        int
	reservations []domain.Reservation
	err          error
}

func (f *fakeReader) ListByDate(_ context.Context, _ int64, _ time.Time) ([]domain.Reservation, error) {
	f.calls++
	return f.reservations, f.err
}

type countingMetrics struct {
	hits, misses, errors int
}

func (m *countingMetrics) CacheHit()   { m.hits++ }
func (m *countingMetrics) CacheMiss()  { m.misses++ }
func (m *countingMetrics) CacheError() { m.errors++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func sampleReservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID:           uuid.MustParse("4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60"),
			Interval:     domain.Interval{Start: types.MustParseTimeOfDay("14:00"), End: types.MustParseTimeOfDay("15:00")},
			Status:       domain.StatusConfirmed,
			OwnerLabel:   "Jane D.",
			ServiceLabel: "Astrology Reading",
		},
		{
			ID:       uuid.MustParse("9a0b1c2d-3e4f-4a5b-8c6d-7e8f9a0b1c2d"),
			Interval: domain.Interval{Start: types.MustParseTimeOfDay("23:00"), End: types.EndOfDay},
			Status:   domain.StatusPending,
		},
	}
}

func newCache(t *testing.T, next ReservationReader) (*Cache, *miniredis.Miniredis, *countingMetrics) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	m := &countingMetrics{}
	return NewCache(client, next, time.Minute, m, nopLogger{}), mr, m
}

func TestKey(t *testing.T) {
	assert.Equal(t, "reservations:42:2025-03-10", Key(42, testDate.Add(13*time.Hour)))
}

func TestCache_ReadThrough(t *testing.T) {
	next := &fakeReader{reservations: sampleReservations()}
	cache, mr, m := newCache(t, next)
	ctx := context.Background()

	first, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, sampleReservations(), first)
	assert.True(t, mr.Exists("reservations:42:2025-03-10"))
	assert.Equal(t, time.Minute, mr.TTL("reservations:42:2025-03-10"))

	second, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, sampleReservations(), second)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.hits)
}

func TestCache_EmptySnapshotIsCached(t *testing.T) {
	next := &fakeReader{reservations: []domain.Reservation{}}
	cache, _, _ := newCache(t, next)

	for i := 0; i < 3; i++ {
		got, err := cache.ListByDate(context.Background(), 1, testDate)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	assert.Equal(t, 1, next.calls)
}

func TestCache_ExpiredEntryReloads(t *testing.T) {
	next := &fakeReader{reservations: sampleReservations()}
	cache, mr, _ := newCache(t, next)
	ctx := context.Background()

	_, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCache_SnapshotIsStaleUntilExpiry(t *testing.T) {
	next := &fakeReader{reservations: []domain.Reservation{}}
	cache, mr, _ := newCache(t, next)
	ctx := context.Background()

	first, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Empty(t, first)

	next.reservations = sampleReservations()

	stale, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Empty(t, stale, "новое бронирование не видно до истечения TTL")
	assert.Equal(t, 1, next.calls)

	mr.FastForward(2 * time.Minute)

	fresh, err := cache.ListByDate(ctx, 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, sampleReservations(), fresh)
}

func TestCache_CorruptedEntryFallsBack(t *testing.T) {
	next := &fakeReader{reservations: sampleReservations()}
	cache, mr, m := newCache(t, next)

	require.NoError(t, mr.Set(Key(42, testDate), `[{"id":"4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60","startMinutes":600,"endMinutes":540,"status":"confirmed"}]`))

	got, err := cache.ListByDate(context.Background(), 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, sampleReservations(), got)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, m.errors)
}

func TestCache_RedisDownDegradesToStore(t *testing.T) {
	next := &fakeReader{reservations: sampleReservations()}
	cache, mr, m := newCache(t, next)
	mr.Close()

	got, err := cache.ListByDate(context.Background(), 42, testDate)
	require.NoError(t, err)
	assert.Equal(t, sampleReservations(), got)
	assert.Equal(t, 2, m.errors) // get и set
}

func TestCache_StoreErrorIsReturned(t *testing.T) {
	storeErr := errors.New("db down")
	next := &fakeReader{err: storeErr}
	cache, mr, _ := newCache(t, next)

	_, err := cache.ListByDate(context.Background(), 42, testDate)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, mr.Exists(Key(42, testDate)))
}

package reservation

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var listQuery = regexp.QuoteMeta(
	"SELECT id, start_time, duration_minutes, status, owner_label, service_label FROM reservations " +
		"WHERE specialist_id = $1 AND reservation_date = $2 AND status IN ($3,$4,$5) ORDER BY start_time ASC")

var columns = []string{"id", "start_time", "duration_minutes", "status", "owner_label", "service_label"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestListByDate(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery(listQuery).
		WithArgs(int64(7), "2025-03-10", "confirmed", "pending", "completed").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(first.String(), "10:00:00", 60, "confirmed", "Jane D.", "Astrology Reading").
			AddRow(second.String(), []byte("14:30:00"), 90, "pending", nil, nil))

	got, err := repo.ListByDate(context.Background(), 7, date)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, types.MustParseTimeOfDay("10:00"), got[0].Interval.Start)
	assert.Equal(t, types.MustParseTimeOfDay("11:00"), got[0].Interval.End)
	assert.Equal(t, domain.StatusConfirmed, got[0].Status)
	assert.Equal(t, "Jane D.", got[0].OwnerLabel)
	assert.Equal(t, "Astrology Reading", got[0].ServiceLabel)

	assert.Equal(t, second, got[1].ID)
	assert.Equal(t, "14:30–16:00", got[1].Interval.String())
	assert.Equal(t, domain.StatusPending, got[1].Status)
	assert.Empty(t, got[1].OwnerLabel)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDate_EndsAtMidnight(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(listQuery).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.New().String(), "23:00:00", 60, "confirmed", "", ""))

	got, err := repo.ListByDate(context.Background(), 1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, types.TimeOfDay(types.MinutesPerDay), got[0].Interval.End)
}

func TestListByDate_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(listQuery).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListByDate(context.Background(), 1, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByDate_InvalidRows(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		status   string
	}{
		{name: "zero duration", start: "10:00:00", duration: 0, status: "confirmed"},
		{name: "negative duration", start: "10:00:00", duration: -30, status: "confirmed"},
		{name: "past midnight", start: "23:30:00", duration: 60, status: "confirmed"},
		{name: "unknown status", start: "10:00:00", duration: 30, status: "on_hold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectQuery(listQuery).
				WillReturnRows(sqlmock.NewRows(columns).
					AddRow(uuid.New().String(), tt.start, tt.duration, tt.status, "", ""))

			_, err := repo.ListByDate(context.Background(), 1, time.Now())
			assert.ErrorIs(t, err, ErrInvalidRow)
		})
	}
}

func TestListByDate_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByDate(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestListByDate_ScanError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(listQuery).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("not-a-uuid", "10:00:00", 60, "confirmed", "", ""))

	_, err := repo.ListByDate(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestListByDate_RowsError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(listQuery).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.New().String(), "10:00:00", 60, "confirmed", "", "").
			RowError(0, errors.New("network reset")))

	_, err := repo.ListByDate(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrScanRow)
}

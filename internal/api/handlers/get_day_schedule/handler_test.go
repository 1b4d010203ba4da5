package get_day_schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got  *models.GetDayScheduleRequest
	resp *models.DayScheduleResponse
	err  error
}

func (f *fakeService) GetDaySchedule(_ context.Context, req *models.GetDayScheduleRequest) (*models.DayScheduleResponse, error) {
	f.got = req
	return f.resp, f.err
}

func get(t *testing.T, svc ScheduleService, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/specialists/{specialistId}/schedule", NewHandler(svc, nopLogger{}).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.DayScheduleResponse{
		Date:          "2025-03-10",
		SpecialistID:  7,
		BusinessHours: models.IntervalResponse{StartTime: "09:00", EndTime: "18:00"},
		HoursSource:   "default",
		Reservations: []models.ReservationResponse{{
			ReservationID: "4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60",
			Status:        "confirmed",
			OwnerLabel:    "Jane D.",
			ServiceLabel:  "Astrology Reading",
			StartTime:     "14:00",
			EndTime:       "15:00",
		}},
		FreeWindows: []models.IntervalResponse{
			{StartTime: "09:00", EndTime: "14:00"},
			{StartTime: "15:00", EndTime: "18:00"},
		},
	}}

	rec := get(t, svc, "/api/v1/specialists/7/schedule?date=2025-03-10")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2025-03-10",
		"specialistId": 7,
		"businessHours": {"startTime": "09:00", "endTime": "18:00"},
		"hoursSource": "default",
		"reservations": [{
			"reservationId": "4f1c2a1e-8d3b-4c55-9a77-1b2c3d4e5f60",
			"status": "confirmed",
			"ownerLabel": "Jane D.",
			"serviceLabel": "Astrology Reading",
			"startTime": "14:00",
			"endTime": "15:00"
		}],
		"freeWindows": [
			{"startTime": "09:00", "endTime": "14:00"},
			{"startTime": "15:00", "endTime": "18:00"}
		]
	}`, rec.Body.String())

	require.NotNil(t, svc.got)
	assert.Equal(t, int64(7), svc.got.SpecialistID)
	assert.Equal(t, "2025-03-10", svc.got.Date.Format("2006-01-02"))
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		target  string
		message string
	}{
		{target: "/api/v1/specialists/abc/schedule?date=2025-03-10", message: msgInvalidSpecialistID},
		{target: "/api/v1/specialists/0/schedule?date=2025-03-10", message: msgInvalidSpecialistID},
		{target: "/api/v1/specialists/7/schedule", message: msgMissingDate},
		{target: "/api/v1/specialists/7/schedule?date=2025-13-01", message: msgInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := &fakeService{}
			rec := get(t, svc, tt.target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
			assert.Nil(t, svc.got)
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	rec := get(t, &fakeService{err: fmt.Errorf("%w: x", schedule.ErrInvalidInput)}, "/api/v1/specialists/7/schedule?date=2025-03-10")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, &fakeService{err: fmt.Errorf("%w: x", schedule.ErrInternal)}, "/api/v1/specialists/7/schedule?date=2025-03-10")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

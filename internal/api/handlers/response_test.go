package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "плохой запрос")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: 400, Message: "плохой запрос"}, body)
}

func TestRespondInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Date string `json:"date"`
	}

	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-03-10"}`))
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, "2025-03-10", p.Date)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"2025-03-10","extra":1}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"date":"x"}{"date":"y"}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &p))
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      DurationInput
		want    int
		wantErr bool
	}{
		{name: "booking label", in: DurationInput{Label: "90 minutes"}, want: 90},
		{name: "service label", in: DurationInput{ServiceLabel: "2 hours"}, want: 120},
		{name: "single hour service label", in: DurationInput{ServiceLabel: "1 hour"}, want: 60},
		{name: "minutes", in: DurationInput{Minutes: "45"}, want: 45},
		{name: "hours in booking label", in: DurationInput{Label: "2 hours"}, wantErr: true},
		{name: "minutes in service label", in: DurationInput{ServiceLabel: "90 minutes"}, wantErr: true},
		{name: "unknown label", in: DurationInput{Label: "a while"}, wantErr: true},
		{name: "label and minutes", in: DurationInput{Label: "30 minutes", Minutes: "30"}, wantErr: true},
		{name: "label and service label", in: DurationInput{Label: "60 minutes", ServiceLabel: "1 hour"}, wantErr: true},
		{name: "none given", wantErr: true},
		{name: "minutes not a number", in: DurationInput{Minutes: "ten"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationMinutes(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDurationMinutes(DurationInput{Label: "2 hours"})
	assert.ErrorIs(t, err, domain.ErrUnrecognizedDuration)
}

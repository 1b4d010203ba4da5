package validate_slot

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	validateSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_slot"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidTime     = errors.New("invalid start time")
	errInvalidDuration = errors.New("invalid duration")
)

// ValidateSlotRequest HTTP request model
type ValidateSlotRequest struct {
	Date            string `json:"date"`      // YYYY-MM-DD
	StartTime       string `json:"startTime"` // HH:MM
	Duration        string `json:"duration,omitempty"`        // "90 minutes"
	ServiceDuration string `json:"serviceDuration,omitempty"` // "2 hours"
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
}

// ValidateSlotResponse HTTP response model
type ValidateSlotResponse struct {
	Available bool      `json:"available"`
	Reason    string    `json:"reason,omitempty"`
	Message   string    `json:"message,omitempty"`
	Conflict  *Conflict `json:"conflict,omitempty"`
}

// Conflict бронирование, с которым пересекается слот
type Conflict struct {
	ReservationID string `json:"reservationId"`
	OwnerLabel    string `json:"ownerLabel,omitempty"`
	ServiceLabel  string `json:"serviceLabel,omitempty"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateSlotRequest) ToUseCaseRequest(specialistID int64) (*validateSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	minutes := ""
	if r.DurationMinutes != nil {
		minutes = strconv.Itoa(*r.DurationMinutes)
	}
	durationMinutes, err := handlers.ParseDurationMinutes(handlers.DurationInput{
		Label:        r.Duration,
		ServiceLabel: r.ServiceDuration,
		Minutes:      minutes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDuration, err)
	}

	return &validateSlot.Request{
		SpecialistID:    specialistID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSlot.Response) *ValidateSlotResponse {
	result := &ValidateSlotResponse{
		Available: resp.Available,
		Reason:    string(resp.Reason),
		Message:   resp.Message,
	}

	if resp.Conflict != nil {
		result.Conflict = &Conflict{
			ReservationID: resp.Conflict.ReservationID.String(),
			OwnerLabel:    resp.Conflict.OwnerLabel,
			ServiceLabel:  resp.Conflict.ServiceLabel,
			StartTime:     resp.Conflict.Interval.Start.String(),
			EndTime:       resp.Conflict.Interval.End.String(),
		}
	}

	return result
}

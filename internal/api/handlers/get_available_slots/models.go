package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date               string        `json:"date"`
	SpecialistID       int64         `json:"specialistId"`
	DurationMinutes    int           `json:"durationMinutes"`
	BusinessHours      BusinessHours `json:"businessHours"`
	GranularityMinutes int           `json:"granularityMinutes"`
	HoursSource        string        `json:"hoursSource"`
	Slots              []string      `json:"slots"`
}

// BusinessHours рабочие часы в формате HH:MM
type BusinessHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		SpecialistID:    resp.SpecialistID,
		DurationMinutes: resp.DurationMinutes,
		BusinessHours: BusinessHours{
			Open:  resp.BusinessHours.Open().String(),
			Close: resp.BusinessHours.Close().String(),
		},
		GranularityMinutes: resp.GranularityMinutes,
		HoursSource:        string(resp.HoursSource),
		Slots:              slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(specialistID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SpecialistID:    specialistID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

package get_business_hours

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getBusinessHours "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_business_hours"
)

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	Date               string   `json:"date"`
	SpecialistID       int64    `json:"specialistId"`
	OpenTime           string   `json:"openTime"`
	CloseTime          string   `json:"closeTime"`
	GranularityMinutes int      `json:"granularityMinutes"`
	Source             string   `json:"source"`
	Durations          []string `json:"durations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBusinessHours.Response) *BusinessHoursResponse {
	return &BusinessHoursResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		SpecialistID:       resp.SpecialistID,
		OpenTime:           resp.BusinessHours.Open().String(),
		CloseTime:          resp.BusinessHours.Close().String(),
		GranularityMinutes: resp.GranularityMinutes,
		Source:             string(resp.Source),
		Durations:          resp.DurationLabels,
	}
}

package get_business_hours

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

// Request модель запроса рабочих часов специалиста на дату
type Request struct {
	SpecialistID int64
	Date         time.Time
}

// Response действующие часы работы и шаг слотов
type Response struct {
	Date               time.Time
	SpecialistID       int64
	BusinessHours      domain.BusinessHours
	GranularityMinutes int
	Source             hoursService.Source
	DurationLabels     []string // Варианты длительности для формы бронирования
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SpecialistID    int64     // ID специалиста
	Date            time.Time // Дата (время суток игнорируется)
	DurationMinutes int       // Длительность сессии
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date               time.Time            // Дата в часовом поясе сервиса
	SpecialistID       int64                // ID специалиста
	DurationMinutes    int                  // Длительность сессии
	BusinessHours      domain.BusinessHours // Рабочие часы на дату
	GranularityMinutes int                  // Шаг слотов
	HoursSource        hoursService.Source  // Откуда взяты часы
	Slots              []types.TimeOfDay    // Свободные времена начала по возрастанию
}

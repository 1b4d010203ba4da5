package validate_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса на проверку слота
type Request struct {
	SpecialistID    int64           // ID специалиста
	Date            time.Time       // Дата (время суток игнорируется)
	StartTime       types.TimeOfDay // Время начала сессии
	DurationMinutes int             // Длительность сессии
}

// Response результат проверки. Отказ не является ошибкой.
type Response struct {
	Available     bool
	Reason        domain.RejectionReason
	Message       string           // Текст для отображения пользователю
	Conflict      *domain.Conflict // Только для Reason == conflict
	BusinessHours domain.BusinessHours
}

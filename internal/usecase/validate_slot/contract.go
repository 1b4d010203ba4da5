package validate_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ReservationReader источник бронирований специалиста на дату
type ReservationReader interface {
	ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error)
}

// HoursResolver определяет рабочие часы на дату
type HoursResolver interface {
	Resolve(ctx context.Context, specialistID int64, date time.Time) (*hoursService.Effective, error)
}

// SlotValidator движок доступности
type SlotValidator interface {
	ValidateSlot(
		date time.Time,
		reservations []domain.Reservation,
		candidateStart types.TimeOfDay,
		durationMinutes int,
		hours domain.BusinessHours,
	) domain.Decision
}

// Metrics метрики решений по слотам
type Metrics interface {
	ObserveSlotDecision(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

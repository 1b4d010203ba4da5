package get_available_slots

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

// HoursResolver определяет рабочие часы и шаг слотов на дату
type HoursResolver interface {
	Resolve(ctx context.Context, specialistID int64, date time.Time) (*hoursService.Effective, error)
}

// SlotEnumerator движок доступности
type SlotEnumerator interface {
	EnumerateSlots(
		date time.Time,
		reservations []domain.Reservation,
		durationMinutes int,
		hours domain.BusinessHours,
		granularityMinutes int,
	) []types.TimeOfDay
}

// Metrics метрики перечисления слотов
type Metrics interface {
	ObserveEnumeratedSlots(durationMinutes, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

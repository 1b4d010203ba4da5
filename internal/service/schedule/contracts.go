package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

// ReservationReader источник бронирований специалиста на дату
type ReservationReader interface {
	ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error)
}

// HoursResolver определяет действующие часы работы на дату
type HoursResolver interface {
	Resolve(ctx context.Context, specialistID int64, date time.Time) (*hoursService.Effective, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

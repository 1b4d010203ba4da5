package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ReservationReader источник бронирований, который кэшируется
type ReservationReader interface {
	ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error)
}

// Metrics счетчики попаданий в кэш
type Metrics interface {
	CacheHit()
	CacheMiss()
	CacheError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

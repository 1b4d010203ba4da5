package hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// HoursRepository источник часов работы специалистов
type HoursRepository interface {
	GetBusinessHours(ctx context.Context, specialistID int64, weekday time.Weekday) (*domain.SpecialistHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

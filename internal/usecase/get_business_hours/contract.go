package get_business_hours

import (
	"context"
	"time"

	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

// HoursResolver определяет рабочие часы на дату
type HoursResolver interface {
	Resolve(ctx context.Context, specialistID int64, date time.Time) (*hoursService.Effective, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

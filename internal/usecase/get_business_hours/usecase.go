package get_business_hours

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case для получения действующих рабочих часов специалиста
type UseCase struct {
	hours    HoursResolver
	location *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hours HoursResolver, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		hours:    hours,
		location: location,
		logger:   logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SpecialistID <= 0 {
		uc.logger.Warn("GetBusinessHours: validation failed: specialistID=%d", req.SpecialistID)
		return nil, fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetBusinessHours: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	effective, err := uc.hours.Resolve(ctx, req.SpecialistID, date)
	if err != nil {
		uc.logger.Error("GetBusinessHours: specialist=%d, date=%s: %v",
			req.SpecialistID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{
		Date:               date,
		SpecialistID:       req.SpecialistID,
		BusinessHours:      effective.Hours,
		GranularityMinutes: effective.GranularityMinutes,
		Source:             effective.Source,
		DurationLabels:     domain.BookingDurationLabels(),
	}, nil
}

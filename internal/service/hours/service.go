package hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Service сервис определения рабочих часов и шага слотов специалиста
type Service struct {
	hoursRepo HoursRepository
	defaults  domain.AvailabilityConfig
	logger    Logger
}

// NewService создает новый экземпляр сервиса.
// defaults применяются, когда у специалиста нет сохраненных часов или шага.
func NewService(hoursRepo HoursRepository, defaults domain.AvailabilityConfig, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		defaults:  defaults,
		logger:    logger,
	}
}

// Resolve возвращает часы работы и шаг слотов специалиста на дату.
// Приоритет: часы на день недели даты, общие часы специалиста, значения по умолчанию.
// Шаг слотов берется из найденной записи, если он в ней задан.
func (s *Service) Resolve(ctx context.Context, specialistID int64, date time.Time) (*Effective, error) {
	stored, err := s.hoursRepo.GetBusinessHours(ctx, specialistID, date.Weekday())
	if err != nil {
		if errors.Is(err, domain.ErrHoursNotFound) {
			s.logger.Info("Resolve: using default hours for specialist=%d, weekday=%s", specialistID, date.Weekday())
			return &Effective{AvailabilityConfig: s.defaults, Source: SourceDefault}, nil
		}
		s.logger.Error("Resolve: failed to get hours for specialist=%d: %v", specialistID, err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	result := &Effective{
		AvailabilityConfig: domain.AvailabilityConfig{
			Hours:              stored.Hours,
			GranularityMinutes: s.defaults.GranularityMinutes,
		},
		Source: SourceSpecialist,
	}

	if stored.IsWeekdaySpecific() {
		result.Source = SourceWeekday
	}
	if stored.HasGranularityOverride() {
		result.GranularityMinutes = *stored.GranularityMinutes
	}

	return result, nil
}

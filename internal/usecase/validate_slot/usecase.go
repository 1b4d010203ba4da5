package validate_slot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

// UseCase use case для проверки произвольного времени начала сессии
type UseCase struct {
	reservations ReservationReader
	hours        HoursResolver
	engine       SlotValidator
	location     *time.Location
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationReader,
	hours HoursResolver,
	engine SlotValidator,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		reservations: reservations,
		hours:        hours,
		engine:       engine,
		location:     location,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет проверку слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateSlot: validation failed: %v", err)
		return nil, err
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	// 2. Параллельно получаем часы работы и бронирования на дату
	var (
		effective    *hoursService.Effective
		reservations []domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		effective, err = uc.hours.Resolve(gctx, req.SpecialistID, date)
		if err != nil {
			return fmt.Errorf("failed to resolve business hours: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reservations, err = uc.reservations.ListByDate(gctx, req.SpecialistID, date)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("ValidateSlot: specialist=%d, date=%s: %v",
			req.SpecialistID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Проверяем слот
	decision := uc.engine.ValidateSlot(date, reservations, req.StartTime, req.DurationMinutes, effective.Hours)

	uc.metrics.ObserveSlotDecision(string(decision.Reason))

	if decision.Available {
		uc.logger.Info("ValidateSlot: specialist=%d, date=%s, start=%s, duration=%d is available",
			req.SpecialistID, date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)
	} else {
		uc.logger.Info("ValidateSlot: specialist=%d, date=%s, start=%s, duration=%d rejected: %s",
			req.SpecialistID, date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, decision.Reason)
	}

	return &Response{
		Available:     decision.Available,
		Reason:        decision.Reason,
		Message:       decision.Message(),
		Conflict:      decision.Conflict,
		BusinessHours: effective.Hours,
	}, nil
}

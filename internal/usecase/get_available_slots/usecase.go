package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
)

// UseCase use case для получения доступных слотов специалиста
type UseCase struct {
	reservations ReservationReader
	hours        HoursResolver
	engine       SlotEnumerator
	location     *time.Location
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задает часовой пояс, в котором трактуется дата запроса (nil = time.Local).
func NewUseCase(
	reservations ReservationReader,
	hours HoursResolver,
	engine SlotEnumerator,
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	uc.logger.Info("GetAvailableSlots: specialist=%d, date=%s, duration=%d",
		req.SpecialistID, date.Format(domain.DateFormat), req.DurationMinutes)

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
		uc.logger.Error("GetAvailableSlots: specialist=%d, date=%s: %v",
			req.SpecialistID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Вычисляем свободные времена начала
	slots := uc.engine.EnumerateSlots(
		date,
		reservations,
		req.DurationMinutes,
		effective.Hours,
		effective.GranularityMinutes,
	)

	uc.metrics.ObserveEnumeratedSlots(req.DurationMinutes, len(slots))

	uc.logger.Info("GetAvailableSlots: found %d slots for specialist=%d, date=%s (hours %s, source=%s, reservations=%d)",
		len(slots), req.SpecialistID, date.Format(domain.DateFormat), effective.Hours, effective.Source, len(reservations))

	return &Response{
		Date:               date,
		SpecialistID:       req.SpecialistID,
		DurationMinutes:    req.DurationMinutes,
		BusinessHours:      effective.Hours,
		GranularityMinutes: effective.GranularityMinutes,
		HoursSource:        effective.Source,
		Slots:              slots,
	}, nil
}

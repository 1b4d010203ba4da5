package schedule

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	hoursService "github.com/m04kA/SMC-AvailabilityService/internal/service/hours"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// Service сервис расписания специалиста: занятые интервалы и свободные окна на дату
type Service struct {
	reservations ReservationReader
	hours        HoursResolver
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания.
// location задает часовой пояс, в котором трактуется дата запроса (nil = time.Local).
func NewService(
	reservations ReservationReader,
	hours HoursResolver,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		reservations: reservations,
		hours:        hours,
		location:     location,
		logger:       logger,
	}
}

// GetDaySchedule получает бронирования специалиста на дату и свободные окна внутри рабочих часов.
// Отмененные бронирования в ответ не попадают. Прошедшее время из окон не вычитается.
func (s *Service) GetDaySchedule(ctx context.Context, req *models.GetDayScheduleRequest) (*models.DayScheduleResponse, error) {
	if req.SpecialistID <= 0 {
		s.logger.Warn("GetDaySchedule: invalid specialist=%d", req.SpecialistID)
		return nil, fmt.Errorf("%w: specialistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		s.logger.Warn("GetDaySchedule: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, s.location)
	s.logger.Info("GetDaySchedule: fetching schedule for specialist=%d, date=%s",
		req.SpecialistID, date.Format(domain.DateFormat))

	var (
		effective    *hoursService.Effective
		reservations []domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		effective, err = s.hours.Resolve(gctx, req.SpecialistID, date)
		if err != nil {
			return fmt.Errorf("failed to resolve business hours: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		reservations, err = s.reservations.ListByDate(gctx, req.SpecialistID, date)
		if err != nil {
			return fmt.Errorf("failed to get reservations: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("GetDaySchedule: specialist=%d, date=%s: %v",
			req.SpecialistID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDaySchedule - %v", ErrInternal, err)
	}

	free := availability.FreeWindows(effective.Hours, reservations)

	result := &models.DayScheduleResponse{
		Date:          date.Format(domain.DateFormat),
		SpecialistID:  req.SpecialistID,
		BusinessHours: models.FromDomainInterval(effective.Hours.Interval),
		HoursSource:   string(effective.Source),
		Reservations:  models.FromDomainReservations(reservations),
		FreeWindows:   models.FromDomainIntervals(free),
	}

	s.logger.Info("GetDaySchedule: specialist=%d, date=%s, reservations=%d, free windows=%d",
		req.SpecialistID, result.Date, len(result.Reservations), len(result.FreeWindows))
	return result, nil
}

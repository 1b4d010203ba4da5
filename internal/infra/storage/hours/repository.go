package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий часов работы специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySpecialistAndWeekday получает часы работы специалиста для конкретного дня недели
// или, если weekday == nil, общую запись специалиста (weekday IS NULL)
func (r *Repository) GetBySpecialistAndWeekday(ctx context.Context, specialistID int64, weekday *time.Weekday) (*domain.SpecialistHours, error) {
	selectBuilder := psqlbuilder.Select(
		"id",
		"specialist_id",
		"weekday",
		"open_time",
		"close_time",
		"granularity_minutes",
		"created_at",
		"updated_at",
	).
		From("specialist_hours").
		Where(squirrel.Eq{"specialist_id": specialistID})

	// Фильтрация по weekday (NULL или конкретное значение)
	if weekday == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": int(*weekday)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialistAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var (
		id, storedSpecialistID int64
		storedWeekday          sql.NullInt32
		openAt, closeAt        types.TimeOfDay
		granularity            sql.NullInt32
		createdAt, updatedAt   sql.NullTime
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&id,
		&storedSpecialistID,
		&storedWeekday,
		&openAt,
		&closeAt,
		&granularity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialistAndWeekday - scan hours: %v", ErrScanRow, err)
	}

	businessHours, err := domain.NewBusinessHours(openAt, closeAt)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpecialistAndWeekday - hours id=%d: %v", ErrInvalidRow, id, err)
	}

	result := &domain.SpecialistHours{
		ID:           id,
		SpecialistID: storedSpecialistID,
		Hours:        businessHours,
		CreatedAt:    createdAt.Time,
		UpdatedAt:    updatedAt.Time,
	}

	if storedWeekday.Valid {
		if storedWeekday.Int32 < int32(time.Sunday) || storedWeekday.Int32 > int32(time.Saturday) {
			return nil, fmt.Errorf("%w: GetBySpecialistAndWeekday - hours id=%d: weekday %d", ErrInvalidRow, id, storedWeekday.Int32)
		}
		wd := time.Weekday(storedWeekday.Int32)
		result.Weekday = &wd
	}

	if granularity.Valid {
		if granularity.Int32 < domain.MinGranularityMinutes || granularity.Int32 > domain.MaxGranularityMinutes {
			return nil, fmt.Errorf("%w: GetBySpecialistAndWeekday - hours id=%d: granularity %d", ErrInvalidRow, id, granularity.Int32)
		}
		g := int(granularity.Int32)
		result.GranularityMinutes = &g
	}

	return result, nil
}

// GetBusinessHours получает часы работы с учетом иерархии приоритетов:
// 1. Часы специалиста на конкретный день недели (specialist_id, weekday)
// 2. Общие часы специалиста (specialist_id, NULL)
//
// Если часы не найдены ни на одном уровне, возвращает ErrHoursNotFound
func (r *Repository) GetBusinessHours(ctx context.Context, specialistID int64, weekday time.Weekday) (*domain.SpecialistHours, error) {
	// 1. Пробуем получить часы на конкретный день недели
	hours, err := r.GetBySpecialistAndWeekday(ctx, specialistID, &weekday)
	if err == nil {
		return hours, nil
	}
	if !errors.Is(err, ErrHoursNotFound) {
		return nil, fmt.Errorf("GetBusinessHours - level 1 (weekday): %w", err)
	}

	// 2. Пробуем получить общие часы специалиста
	hours, err = r.GetBySpecialistAndWeekday(ctx, specialistID, nil)
	if err == nil {
		return hours, nil
	}
	if !errors.Is(err, ErrHoursNotFound) {
		return nil, fmt.Errorf("GetBusinessHours - level 2 (any weekday): %w", err)
	}

	return nil, ErrHoursNotFound
}

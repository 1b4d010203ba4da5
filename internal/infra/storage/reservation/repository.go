package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий бронирований, только чтение.
// Создание и отмена бронирований принадлежат сервису бронирований.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByDate получает бронирования специалиста на дату, которые занимают время.
// Отмененные бронирования отфильтровываются запросом. Результат отсортирован по start_time.
// Каждая строка проверяется: битые строки возвращают ErrInvalidRow, а не попадают в движок.
func (r *Repository) ListByDate(ctx context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error) {
	statuses := make([]string, 0, len(domain.BlockingStatuses))
	for _, s := range domain.BlockingStatuses {
		statuses = append(statuses, string(s))
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"start_time",
		"duration_minutes",
		"status",
		"owner_label",
		"service_label",
	).
		From("reservations").
		Where(squirrel.Eq{"specialist_id": specialistID}).
		Where(squirrel.Eq{"reservation_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)

	for rows.Next() {
		var (
			id              uuid.UUID
			start           types.TimeOfDay
			durationMinutes int
			status          string
			ownerLabel      sql.NullString
			serviceLabel    sql.NullString
		)

		if err := rows.Scan(&id, &start, &durationMinutes, &status, &ownerLabel, &serviceLabel); err != nil {
			return nil, fmt.Errorf("%w: ListByDate - scan row: %v", ErrScanRow, err)
		}

		reservation, err := toDomain(id, start, durationMinutes, status, ownerLabel.String, serviceLabel.String)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDate - reservation %s: %v", ErrInvalidRow, id, err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// toDomain собирает бронирование и проверяет инварианты интервала и статуса
func toDomain(
	id uuid.UUID,
	start types.TimeOfDay,
	durationMinutes int,
	status string,
	ownerLabel string,
	serviceLabel string,
) (domain.Reservation, error) {
	parsedStatus, err := domain.ParseReservationStatus(status)
	if err != nil {
		return domain.Reservation{}, err
	}

	interval, err := domain.NewInterval(start, start.AddMinutes(durationMinutes))
	if err != nil {
		return domain.Reservation{}, err
	}

	return domain.Reservation{
		ID:           id,
		Interval:     interval,
		Status:       parsedStatus,
		OwnerLabel:   ownerLabel,
		ServiceLabel: serviceLabel,
	}, nil
}

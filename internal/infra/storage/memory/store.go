package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type dayKey struct {
	specialistID int64
	date         string
}

type hoursKey struct {
	specialistID int64
	weekday      int // -1 = любой день недели
}

// Store хранилище бронирований и часов работы в памяти.
// Используется для storage.driver = "memory" и в тестах вместо Postgres.
type Store struct {
	mu           sync.RWMutex
	reservations map[dayKey][]domain.Reservation
	hours        map[hoursKey]domain.SpecialistHours
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		reservations: make(map[dayKey][]domain.Reservation),
		hours:        make(map[hoursKey]domain.SpecialistHours),
	}
}

// PutReservations заменяет снимок бронирований специалиста на дату.
// Интервалы проверяются сразу, чтобы некорректные данные не дошли до движка.
func (s *Store) PutReservations(specialistID int64, date time.Time, reservations ...domain.Reservation) error {
	for i := range reservations {
		if err := reservations[i].Interval.Validate(); err != nil {
			return fmt.Errorf("memory: reservation %s: %w", reservations[i].ID, err)
		}
	}

	snapshot := make([]domain.Reservation, len(reservations))
	copy(snapshot, reservations)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[dayKey{specialistID: specialistID, date: date.Format(domain.DateFormat)}] = snapshot

	return nil
}

// ListByDate возвращает копию снимка, вызывающий может его менять
func (s *Store) ListByDate(_ context.Context, specialistID int64, date time.Time) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.reservations[dayKey{specialistID: specialistID, date: date.Format(domain.DateFormat)}]

	result := make([]domain.Reservation, len(stored))
	copy(result, stored)

	return result, nil
}

// PutHours сохраняет часы работы. hours.Weekday == nil означает любой день недели.
func (s *Store) PutHours(hours domain.SpecialistHours) {
	key := hoursKey{specialistID: hours.SpecialistID, weekday: -1}
	if hours.Weekday != nil {
		key.weekday = int(*hours.Weekday)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hours[key] = hours
}

// GetBusinessHours использует ту же иерархию, что и репозиторий Postgres:
// сначала день недели, затем общие часы специалиста
func (s *Store) GetBusinessHours(_ context.Context, specialistID int64, weekday time.Weekday) (*domain.SpecialistHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if h, ok := s.hours[hoursKey{specialistID: specialistID, weekday: int(weekday)}]; ok {
		return &h, nil
	}
	if h, ok := s.hours[hoursKey{specialistID: specialistID, weekday: -1}]; ok {
		return &h, nil
	}

	return nil, domain.ErrHoursNotFound
}

package memory

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// ErrInvalidSeed возвращается при некорректном файле начальных данных
var ErrInvalidSeed = errors.New("memory: invalid seed")

// seedFile формат TOML файла начальных данных для storage.driver = "memory"
type seedFile struct {
	Hours        []seedHours       `toml:"hours"`
	Reservations []seedReservation `toml:"reservations"`
}

type seedHours struct {
	SpecialistID       int64  `toml:"specialist_id"`
	Weekday            *int   `toml:"weekday"`
	OpenTime           string `toml:"open_time"`
	CloseTime          string `toml:"close_time"`
	GranularityMinutes *int   `toml:"granularity_minutes"`
}

type seedReservation struct {
	ID              string `toml:"id"`
	SpecialistID    int64  `toml:"specialist_id"`
	Date            string `toml:"date"`
	StartTime       string `toml:"start_time"`
	DurationMinutes int    `toml:"duration_minutes"`
	Status          string `toml:"status"`
	OwnerLabel      string `toml:"owner_label"`
	ServiceLabel    string `toml:"service_label"`
}

// LoadSeedFile загружает начальные данные из TOML файла
func (s *Store) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrInvalidSeed, path, err)
	}
	defer f.Close()

	return s.LoadSeed(f)
}

// LoadSeed разбирает начальные данные и кладет их в хранилище.
// Файл проверяется целиком до записи: при ошибке хранилище не меняется.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed seedFile
	if _, err := toml.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidSeed, err)
	}

	hours := make([]domain.SpecialistHours, 0, len(seed.Hours))
	for i, h := range seed.Hours {
		parsed, err := h.toDomain()
		if err != nil {
			return fmt.Errorf("%w: hours[%d]: %v", ErrInvalidSeed, i, err)
		}
		hours = append(hours, parsed)
	}

	days := make(map[dayKey][]domain.Reservation)
	dates := make(map[dayKey]time.Time)
	for i, sr := range seed.Reservations {
		date, reservation, err := sr.toDomain()
		if err != nil {
			return fmt.Errorf("%w: reservations[%d]: %v", ErrInvalidSeed, i, err)
		}
		key := dayKey{specialistID: sr.SpecialistID, date: date.Format(domain.DateFormat)}
		days[key] = append(days[key], reservation)
		dates[key] = date
	}

	for _, h := range hours {
		s.PutHours(h)
	}
	for key, reservations := range days {
		if err := s.PutReservations(key.specialistID, dates[key], reservations...); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
	}

	return nil
}

func (h seedHours) toDomain() (domain.SpecialistHours, error) {
	if h.SpecialistID <= 0 {
		return domain.SpecialistHours{}, fmt.Errorf("specialist_id must be positive")
	}

	openAt, err := types.ParseTimeOfDay(h.OpenTime)
	if err != nil {
		return domain.SpecialistHours{}, fmt.Errorf("open_time: %w", err)
	}
	closeAt, err := types.ParseIntervalEnd(h.CloseTime)
	if err != nil {
		return domain.SpecialistHours{}, fmt.Errorf("close_time: %w", err)
	}
	businessHours, err := domain.NewBusinessHours(openAt, closeAt)
	if err != nil {
		return domain.SpecialistHours{}, err
	}

	result := domain.SpecialistHours{
		SpecialistID:       h.SpecialistID,
		Hours:              businessHours,
		GranularityMinutes: h.GranularityMinutes,
	}

	if h.Weekday != nil {
		if *h.Weekday < 0 || *h.Weekday > 6 {
			return domain.SpecialistHours{}, fmt.Errorf("weekday out of range: %d", *h.Weekday)
		}
		wd := time.Weekday(*h.Weekday)
		result.Weekday = &wd
	}

	if g := h.GranularityMinutes; g != nil && (*g < domain.MinGranularityMinutes || *g > domain.MaxGranularityMinutes) {
		return domain.SpecialistHours{}, fmt.Errorf("granularity_minutes out of range: %d", *g)
	}

	return result, nil
}

func (sr seedReservation) toDomain() (time.Time, domain.Reservation, error) {
	if sr.SpecialistID <= 0 {
		return time.Time{}, domain.Reservation{}, fmt.Errorf("specialist_id must be positive")
	}

	date, err := time.Parse(domain.DateFormat, sr.Date)
	if err != nil {
		return time.Time{}, domain.Reservation{}, fmt.Errorf("date: %w", err)
	}

	id := uuid.New()
	if sr.ID != "" {
		if id, err = uuid.Parse(sr.ID); err != nil {
			return time.Time{}, domain.Reservation{}, fmt.Errorf("id: %w", err)
		}
	}

	start, err := types.ParseTimeOfDay(sr.StartTime)
	if err != nil {
		return time.Time{}, domain.Reservation{}, fmt.Errorf("start_time: %w", err)
	}
	interval, err := domain.NewInterval(start, start.AddMinutes(sr.DurationMinutes))
	if err != nil {
		return time.Time{}, domain.Reservation{}, err
	}

	status, err := domain.ParseReservationStatus(sr.Status)
	if err != nil {
		return time.Time{}, domain.Reservation{}, err
	}

	return date, domain.Reservation{
		ID:           id,
		Interval:     interval,
		Status:       status,
		OwnerLabel:   sr.OwnerLabel,
		ServiceLabel: sr.ServiceLabel,
	}, nil
}

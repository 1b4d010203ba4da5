package reservations

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// cachedReservation представление бронирования в Redis.
// Время хранится в минутах, чтобы конец суток (24:00) переживал сериализацию.
type cachedReservation struct {
	ID           uuid.UUID `json:"id"`
	StartMinutes int       `json:"startMinutes"`
	EndMinutes   int       `json:"endMinutes"`
	Status       string    `json:"status"`
	OwnerLabel   string    `json:"ownerLabel,omitempty"`
	ServiceLabel string    `json:"serviceLabel,omitempty"`
}

func fromDomain(reservations []domain.Reservation) []cachedReservation {
	result := make([]cachedReservation, len(reservations))
	for i, r := range reservations {
		result[i] = cachedReservation{
			ID:           r.ID,
			StartMinutes: r.Interval.Start.Minutes(),
			EndMinutes:   r.Interval.End.Minutes(),
			Status:       string(r.Status),
			OwnerLabel:   r.OwnerLabel,
			ServiceLabel: r.ServiceLabel,
		}
	}
	return result
}

func toDomain(cached []cachedReservation) ([]domain.Reservation, error) {
	result := make([]domain.Reservation, len(cached))
	for i, c := range cached {
		status, err := domain.ParseReservationStatus(c.Status)
		if err != nil {
			return nil, err
		}
		interval, err := domain.NewInterval(types.TimeOfDay(c.StartMinutes), types.TimeOfDay(c.EndMinutes))
		if err != nil {
			return nil, err
		}
		result[i] = domain.Reservation{
			ID:           c.ID,
			Interval:     interval,
			Status:       status,
			OwnerLabel:   c.OwnerLabel,
			ServiceLabel: c.ServiceLabel,
		}
	}
	return result, nil
}

package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// GetDayScheduleRequest запрос расписания специалиста на дату
type GetDayScheduleRequest struct {
	SpecialistID int64
	Date         time.Time
}

// Response модели

// DayScheduleResponse занятость специалиста на дату для календаря
type DayScheduleResponse struct {
	Date          string                `json:"date"`
	SpecialistID  int64                 `json:"specialistId"`
	BusinessHours IntervalResponse      `json:"businessHours"`
	HoursSource   string                `json:"hoursSource"`
	Reservations  []ReservationResponse `json:"reservations"`
	FreeWindows   []IntervalResponse    `json:"freeWindows"`
}

// ReservationResponse бронирование, занимающее время
type ReservationResponse struct {
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
	OwnerLabel    string `json:"ownerLabel"`
	ServiceLabel  string `json:"serviceLabel"`
	StartTime     string `json:"startTime"` // "14:00"
	EndTime       string `json:"endTime"`   // "15:00" или "24:00"
}

// IntervalResponse полуоткрытый интервал [startTime, endTime)
type IntervalResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromDomainInterval конвертирует интервал
func FromDomainInterval(iv domain.Interval) IntervalResponse {
	return IntervalResponse{
		StartTime: iv.Start.String(),
		EndTime:   iv.End.String(),
	}
}

// FromDomainIntervals конвертирует список интервалов, результат не nil
func FromDomainIntervals(intervals []domain.Interval) []IntervalResponse {
	result := make([]IntervalResponse, 0, len(intervals))
	for _, iv := range intervals {
		result = append(result, FromDomainInterval(iv))
	}
	return result
}

// FromDomainReservations оставляет только бронирования, занимающие время, и сортирует их по началу.
// Исходный срез не меняется.
func FromDomainReservations(reservations []domain.Reservation) []ReservationResponse {
	blocking := make([]domain.Reservation, 0, len(reservations))
	for i := range reservations {
		if reservations[i].IsBlocking() {
			blocking = append(blocking, reservations[i])
		}
	}

	sort.SliceStable(blocking, func(i, j int) bool {
		return blocking[i].Interval.Start < blocking[j].Interval.Start
	})

	result := make([]ReservationResponse, 0, len(blocking))
	for _, r := range blocking {
		result = append(result, ReservationResponse{
			ReservationID: r.ID.String(),
			Status:        string(r.Status),
			OwnerLabel:    r.OwnerLabel,
			ServiceLabel:  r.ServiceLabel,
			StartTime:     r.Interval.Start.String(),
			EndTime:       r.Interval.End.String(),
		})
	}

	return result
}

package get_day_schedule

import (
	"errors"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

var (
	errInvalidSpecialistID = errors.New("invalid specialist id")
	errMissingDate         = errors.New("date is required")
	errInvalidDate         = errors.New("invalid date")
)

// ToServiceRequest формирует запрос к сервису из параметров URL
func ToServiceRequest(specialistIDStr, dateStr string) (*models.GetDayScheduleRequest, error) {
	specialistID, err := strconv.ParseInt(specialistIDStr, 10, 64)
	if err != nil || specialistID <= 0 {
		return nil, errInvalidSpecialistID
	}

	if dateStr == "" {
		return nil, errMissingDate
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	return &models.GetDayScheduleRequest{
		SpecialistID: specialistID,
		Date:         date,
	}, nil
}

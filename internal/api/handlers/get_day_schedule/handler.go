package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams       = "некорректные параметры запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{specialistId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(mux.Vars(r)["specialistId"], r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/schedule - Invalid parameters: %v", err)
		switch {
		case errors.Is(err, errInvalidSpecialistID):
			handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		case errors.Is(err, errMissingDate):
			handlers.RespondBadRequest(w, msgMissingDate)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /specialists/{id}/schedule - Invalid input: specialist_id=%d, error=%v",
				serviceReq.SpecialistID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /specialists/{id}/schedule - Failed to get schedule: specialist_id=%d, error=%v",
				serviceReq.SpecialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /specialists/{id}/schedule - Schedule retrieved successfully: specialist_id=%d, date=%s, reservations=%d",
		serviceReq.SpecialistID, result.Date, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

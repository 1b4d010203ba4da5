package get_business_hours

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getBusinessHours "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_business_hours"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetBusinessHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetBusinessHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{specialistId}/business-hours
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, err := strconv.ParseInt(mux.Vars(r)["specialistId"], 10, 64)
	if err != nil || specialistID <= 0 {
		h.logger.Warn("GET /specialists/{id}/business-hours - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /specialists/{id}/business-hours - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/business-hours - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBusinessHours.Request{
		SpecialistID: specialistID,
		Date:         date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBusinessHours.ErrInvalidInput):
			h.logger.Warn("GET /specialists/{id}/business-hours - Invalid input: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /specialists/{id}/business-hours - Failed to get hours: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /specialists/{id}/business-hours - specialist_id=%d, date=%s, hours=%s, source=%s",
		specialistID, dateStr, result.BusinessHours, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

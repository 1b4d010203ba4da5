package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration     = "некорректная длительность, ожидается duration (например, \"60 minutes\"), serviceDuration (например, \"2 hours\") или durationMinutes"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialists/{specialistId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration ("60 minutes"), serviceDuration ("2 hours") or durationMinutes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем specialistId из URL
	specialistID, err := strconv.ParseInt(mux.Vars(r)["specialistId"], 10, 64)
	if err != nil || specialistID <= 0 {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	query := r.URL.Query()

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /specialists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationMinutes, err := handlers.ParseDurationMinutes(handlers.DurationInput{
		Label:        query.Get("duration"),
		ServiceLabel: query.Get("serviceDuration"),
		Minutes:      query.Get("durationMinutes"),
	})
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(specialistID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /specialists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /specialists/{id}/available-slots - Invalid input: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /specialists/{id}/available-slots - Failed to get slots: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /specialists/{id}/available-slots - Slots retrieved successfully: specialist_id=%d, date=%s, slots_count=%d",
		specialistID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

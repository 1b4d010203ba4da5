package validate_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	validateSlot "github.com/m04kA/SMC-AvailabilityService/internal/usecase/validate_slot"
)

const (
	msgInvalidSpecialistID = "некорректный ID специалиста"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDuration     = "некорректная длительность, ожидается duration (например, \"60 minutes\"), serviceDuration (например, \"2 hours\") или durationMinutes"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase ValidateSlotUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/specialists/{specialistId}/slots/validate
// Отказ (вне рабочих часов, в прошлом, конфликт) возвращается со статусом 200 и available=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	specialistID, err := strconv.ParseInt(mux.Vars(r)["specialistId"], 10, 64)
	if err != nil || specialistID <= 0 {
		h.logger.Warn("POST /specialists/{id}/slots/validate - Invalid specialist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialistID)
		return
	}

	var req ValidateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /specialists/{id}/slots/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты, времени и длительности)
	useCaseReq, err := req.ToUseCaseRequest(specialistID)
	if err != nil {
		h.logger.Warn("POST /specialists/{id}/slots/validate - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		case errors.Is(err, errInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSlot.ErrInvalidInput):
			h.logger.Warn("POST /specialists/{id}/slots/validate - Invalid input: specialist_id=%d, error=%v", specialistID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /specialists/{id}/slots/validate - Failed to validate slot: specialist_id=%d, error=%v",
				specialistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /specialists/{id}/slots/validate - specialist_id=%d, date=%s, start=%s, available=%t, reason=%s",
		specialistID, req.Date, req.StartTime, result.Available, result.Reason)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

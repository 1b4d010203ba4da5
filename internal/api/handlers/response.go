package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	maxBodyBytes     = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в формате {code, message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса. Неизвестные поля и лишние данные после объекта считаются ошибкой.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// DurationInput длительность сессии в одной из трех форм
type DurationInput struct {
	Label        string // метка диалога бронирования: "90 minutes"
	ServiceLabel string // метка редактора услуг: "2 hours"
	Minutes      string // число минут
}

// ParseDurationMinutes определяет длительность сессии. Указывать нужно ровно одну форму,
// метки диалога бронирования и редактора услуг разбираются каждая своим словарем.
func ParseDurationMinutes(in DurationInput) (int, error) {
	label := strings.TrimSpace(in.Label)
	serviceLabel := strings.TrimSpace(in.ServiceLabel)
	minutes := strings.TrimSpace(in.Minutes)

	given := 0
	for _, v := range []string{label, serviceLabel, minutes} {
		if v != "" {
			given++
		}
	}

	switch {
	case given > 1:
		return 0, errors.New("duration, serviceDuration and durationMinutes are mutually exclusive")
	case label != "":
		return domain.ParseDurationLabel(label)
	case serviceLabel != "":
		return domain.ParseHoursLabel(serviceLabel)
	case minutes != "":
		d, err := strconv.Atoi(minutes)
		if err != nil {
			return 0, fmt.Errorf("invalid durationMinutes %q: %w", minutes, err)
		}
		return d, nil
	default:
		return 0, errors.New("duration is required")
	}
}

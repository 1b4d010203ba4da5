package hours

import (
	"errors"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrHoursNotFound возвращается, когда часы работы не найдены ни на одном уровне иерархии
	ErrHoursNotFound = domain.ErrHoursNotFound

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")

	// ErrInvalidRow возвращается, когда сохраненные часы работы некорректны
	ErrInvalidRow = errors.New("hours.repository: invalid hours row")
)

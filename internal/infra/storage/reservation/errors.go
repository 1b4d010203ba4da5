package reservation

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrInvalidRow возвращается, когда строка из БД не образует корректное бронирование
	// (неизвестный статус, нулевая длительность, выход за пределы суток)
	ErrInvalidRow = errors.New("reservation.repository: invalid reservation row")
)

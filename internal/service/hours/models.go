package hours

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Source откуда взяты часы работы
type Source string

const (
	SourceWeekday    Source = "weekday"    // часы специалиста на этот день недели
	SourceSpecialist Source = "specialist" // общие часы специалиста
	SourceDefault    Source = "default"    // значения из конфигурации сервиса
)

// Effective итоговая конфигурация доступности на дату
type Effective struct {
	domain.AvailabilityConfig
	Source Source
}

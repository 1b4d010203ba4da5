package get_business_hours

import (
	"context"

	getBusinessHours "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_business_hours"
)

type GetBusinessHoursUseCase interface {
	Execute(ctx context.Context, req *getBusinessHours.Request) (*getBusinessHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

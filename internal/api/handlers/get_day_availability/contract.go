package get_day_availability

import (
	"context"

	getDayAvailability "github.com/cst-sportspot/booking-service/internal/usecase/get_day_availability"
)

type GetDayAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getDayAvailability.Request) (*getDayAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package check_slot_availability

import (
	"context"

	checkSlotAvailability "github.com/cst-sportspot/booking-service/internal/usecase/check_slot_availability"
)

type CheckSlotAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkSlotAvailability.Request) (*checkSlotAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

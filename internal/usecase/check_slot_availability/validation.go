package check_slot_availability

import (
	"fmt"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Возвращает кандидатный интервал, построенный из startTime/endTime.
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.VenueID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.TimeInterval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return domain.TimeInterval{}, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return domain.TimeInterval{}, fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	candidate, err := domain.NewTimeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: startTime must be before endTime and both must be HH:MM", ErrInvalidInput)
	}

	return candidate, nil
}

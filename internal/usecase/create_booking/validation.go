package create_booking

import (
	"fmt"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Возвращает кандидатный интервал, построенный из startTime/endTime.
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.UserID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.FullName == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	if req.Email == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.TimeInterval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.TimeInterval{}, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.Participants < domain.MinParticipants {
		return domain.TimeInterval{}, fmt.Errorf("%w: participants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.TimeInterval{}, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	candidate, err := domain.NewTimeInterval(req.StartTime, req.EndTime)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: startTime must be before endTime and both must be HH:MM", ErrInvalidInput)
	}

	return candidate, nil
}

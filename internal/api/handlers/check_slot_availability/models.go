package check_slot_availability

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	checkSlotAvailability "github.com/cst-sportspot/booking-service/internal/usecase/check_slot_availability"
	"github.com/cst-sportspot/booking-service/pkg/types"
)

// CheckSlotRequest HTTP запрос на проверку доступности слота
type CheckSlotRequest struct {
	Date      string `json:"date"`      // "2026-03-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// CheckSlotResponse HTTP ответ с результатом проверки
type CheckSlotResponse struct {
	Date                string `json:"date"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	IsAvailable         bool   `json:"isAvailable"`
	ConflictingBookings int    `json:"conflictingBookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotRequest) ToUseCaseRequest(venueID int64) (*checkSlotAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkSlotAvailability.Request{
		VenueID:   venueID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *checkSlotAvailability.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		StartTime:           resp.StartTime.String(),
		EndTime:             resp.EndTime.String(),
		IsAvailable:         resp.IsAvailable,
		ConflictingBookings: resp.ConflictingBookings,
	}
}

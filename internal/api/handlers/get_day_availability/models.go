package get_day_availability

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	getDayAvailability "github.com/cst-sportspot/booking-service/internal/usecase/get_day_availability"
)

// BookedSlotResponse занятый интервал в ответе календаря
type BookedSlotResponse struct {
	StartTime    string  `json:"startTime"` // "10:00"
	EndTime      string  `json:"endTime"`   // "11:00"
	Status       string  `json:"status"`    // Pending | Approved | Blocked
	BookedBy     string  `json:"bookedBy"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	Participants *int    `json:"participants,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// GetDayAvailabilityResponse HTTP ответ с отчетом о занятости за день
type GetDayAvailabilityResponse struct {
	Date        string               `json:"date"` // "2026-03-15"
	VenueName   string               `json:"venueName"`
	VenueStatus string               `json:"venueStatus"`
	BookedSlots []BookedSlotResponse `json:"bookedSlots"`
	IsAvailable bool                 `json:"isAvailable"`
}

// ToUseCaseRequest конвертирует параметры HTTP запроса в модель use case
func ToUseCaseRequest(venueID int64, dateStr string) (*getDayAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayAvailability.Request{
		VenueID: venueID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getDayAvailability.Response) *GetDayAvailabilityResponse {
	slots := make([]BookedSlotResponse, 0, len(resp.BookedSlots))
	for _, s := range resp.BookedSlots {
		slots = append(slots, BookedSlotResponse{
			StartTime:    s.Interval.Start.String(),
			EndTime:      s.Interval.End.String(),
			Status:       s.Status,
			BookedBy:     s.BookedBy,
			BookingID:    s.BookingID,
			Participants: s.Participants,
			Notes:        s.Notes,
		})
	}

	return &GetDayAvailabilityResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		VenueName:   resp.VenueName,
		VenueStatus: string(resp.VenueStatus),
		BookedSlots: slots,
		IsAvailable: resp.IsAvailable,
	}
}

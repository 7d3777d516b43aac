package create_booking

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	createBooking "github.com/cst-sportspot/booking-service/internal/usecase/create_booking"
	"github.com/cst-sportspot/booking-service/pkg/types"
)

// CreateBookingRequest HTTP запрос на создание бронирования.
// UserID и Email берутся из токена, а не из тела запроса.
type CreateBookingRequest struct {
	VenueID        int64   `json:"venueId"`
	FullName       string  `json:"fullName"`
	StudentNumber  string  `json:"studentNumber,omitempty"`
	Year           string  `json:"year,omitempty"`
	Course         string  `json:"course,omitempty"`
	Date           string  `json:"date"`      // "2026-03-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Participants   int     `json:"participants"`
	NeedsEquipment bool    `json:"needsEquipment,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	VenueID        int64   `json:"venueId"`
	VenueName      string  `json:"venueName"`
	FullName       string  `json:"fullName"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Participants   int     `json:"participants"`
	NeedsEquipment bool    `json:"needsEquipment"`
	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, email string) (*createBooking.Request, error) {
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

	return &createBooking.Request{
		UserID:         userID,
		VenueID:        r.VenueID,
		FullName:       r.FullName,
		StudentNumber:  r.StudentNumber,
		Year:           r.Year,
		Course:         r.Course,
		Email:          email,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Participants:   r.Participants,
		NeedsEquipment: r.NeedsEquipment,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		VenueID:        resp.VenueID,
		VenueName:      resp.VenueName,
		FullName:       resp.FullName,
		Date:           resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Participants:   resp.Participants,
		NeedsEquipment: resp.NeedsEquipment,
		Notes:          resp.Notes,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}

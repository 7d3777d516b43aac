package create_booking

import (
	"time"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID  int64
	VenueID int64

	// Данные заявителя, фиксируются на момент подачи заявки
	FullName      string
	StudentNumber string
	Year          string
	Course        string
	Email         string

	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Participants   int
	NeedsEquipment bool
	Notes          *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	UserID         int64
	VenueID        int64
	VenueName      string
	FullName       string
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Participants   int
	NeedsEquipment bool
	Notes          *string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

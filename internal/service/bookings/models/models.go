package models

import (
	"errors"
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetAllBookingsRequest запрос администратора на получение всех бронирований
type GetAllBookingsRequest struct {
	Status  *string `json:"status,omitempty"`
	VenueID *int64  `json:"venueId,omitempty"`
	UserID  *int64  `json:"userId,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	VenueID        int64   `json:"venueId"`
	VenueName      string  `json:"venueName"`
	FullName       string  `json:"fullName"`
	StudentNumber  string  `json:"studentNumber,omitempty"`
	Year           string  `json:"year,omitempty"`
	Course         string  `json:"course,omitempty"`
	Email          string  `json:"email"`
	Date           string  `json:"date"`      // "2026-03-15"
	StartTime      string  `json:"startTime"` // "10:00"
	EndTime        string  `json:"endTime"`   // "11:00"
	Participants   int     `json:"participants"`
	NeedsEquipment bool    `json:"needsEquipment"`
	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AdminStatsResponse агрегированная статистика для панели администратора
type AdminStatsResponse struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalVenues     int64 `json:"totalVenues"`
	ActiveBookings  int64 `json:"activeBookings"`  // status = Approved
	PendingRequests int64 `json:"pendingRequests"` // status = Pending
}

// UserStatsResponse статистика бронирований пользователя
type UserStatsResponse struct {
	TotalBookings  int64 `json:"totalBookings"`
	ActiveBookings int64 `json:"activeBookings"` // Pending/Approved с датой не раньше сегодня
}

// RepairVenueNamesResponse результат repair pass по кэшу venue_name
type RepairVenueNamesResponse struct {
	Repaired int64 `json:"repaired"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		VenueID:        b.VenueID,
		VenueName:      b.VenueName,
		FullName:       b.FullName,
		StudentNumber:  b.StudentNumber,
		Year:           b.Year,
		Course:         b.Course,
		Email:          b.Email,
		Date:           b.Date.Format(domain.DateFormat),
		StartTime:      b.StartTime.String(),
		EndTime:        b.EndTime.String(),
		Participants:   b.Participants,
		NeedsEquipment: b.NeedsEquipment,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

package events

import "time"

// Routing keys для topic exchange
const (
	KeyBookingCreated       = "booking.created"
	KeyBookingStatusChanged = "booking.status_changed"
	KeyBookingCancelled     = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования.
// Потребители: сервис уведомлений, аналитика.
type BookingEvent struct {
	EventID    string    `json:"eventId"`
	BookingID  int64     `json:"bookingId"`
	UserID     int64     `json:"userId"`
	VenueID    int64     `json:"venueId"`
	VenueName  string    `json:"venueName,omitempty"`
	Date       string    `json:"date"`      // YYYY-MM-DD
	StartTime  string    `json:"startTime"` // HH:MM
	EndTime    string    `json:"endTime"`   // HH:MM
	Status     string    `json:"status"`
	PrevStatus string    `json:"prevStatus,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

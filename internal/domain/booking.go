package domain

import (
	"time"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusApproved  BookingStatus = "Approved"
	StatusRejected  BookingStatus = "Rejected"
	StatusCancelled BookingStatus = "Cancelled"
)

// Booking represents a venue booking request in the system
type Booking struct {
	ID      int64
	UserID  int64
	VenueID int64

	// Denormalized display-name cache; the venue row remains the source of truth.
	// Historical rows may hold a stale or empty name, see the repair pass.
	VenueName string

	// Requester data captured at submission time
	FullName      string
	StudentNumber string
	Year          string
	Course        string
	Email         string

	Date           time.Time // calendar day, time-of-day ignored
	StartTime      types.TimeString
	EndTime        types.TimeString
	Participants   int
	NeedsEquipment bool
	Notes          *string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking blocks its time slot.
// Only Pending and Approved bookings occupy; Rejected and Cancelled never do.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsTerminal returns true for states with no outgoing transitions
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled
}

// CanTransitionTo reports whether the status transition is allowed:
// Pending -> Approved | Rejected | Cancelled; Approved -> Cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled
	default:
		return false
	}
}

// DisplayName returns the requester's display name for calendar rendering,
// falling back to email, then "Anonymous" for legacy rows missing both.
func (b *Booking) DisplayName() string {
	if b.FullName != "" {
		return b.FullName
	}
	if b.Email != "" {
		return b.Email
	}
	return "Anonymous"
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID    *int64         // Фильтр по пользователю (опционально)
	VenueID   *int64         // Фильтр по площадке (опционально)
	DayStart  *time.Time     // Начало дня [включительно]
	DayEnd    *time.Time     // Конец дня (исключительно)
	Status    *BookingStatus // Фильтр по конкретному статусу (опционально)
	Occupying bool           // Только занимающие слот статусы (Pending, Approved)
}

package domain

import (
	"time"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

// VenueStatus represents the operational status of a venue
type VenueStatus string

const (
	VenueAvailable   VenueStatus = "Available"
	VenueBooked      VenueStatus = "Booked"
	VenueMaintenance VenueStatus = "Maintenance"
)

// VenueType represents the venue kind
type VenueType string

const (
	VenueIndoor  VenueType = "Indoor"
	VenueOutdoor VenueType = "Outdoor"
)

// Venue represents a sports venue that can be booked
type Venue struct {
	ID        int64
	Name      string // unique
	Type      VenueType
	Capacity  int
	Status    VenueStatus
	Equipment []string
	Image     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsBookings returns true if the venue-level gate allows new bookings.
// Independent of slot occupancy: a Booked or Maintenance venue accepts
// nothing regardless of free slots.
func (v *Venue) AcceptsBookings() bool {
	return v.Status == VenueAvailable
}

// BlockedSlot represents a slot reserved directly by an administrator
// on the venue itself, outside the booking workflow.
type BlockedSlot struct {
	ID        int64
	VenueID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

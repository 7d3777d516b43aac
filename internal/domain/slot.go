package domain

// Slot source statuses beyond booking statuses
const (
	// SlotStatusBlocked помечает слоты, заблокированные администратором
	// напрямую на площадке (вне процесса бронирования)
	SlotStatusBlocked = "Blocked"

	// SlotOwnerAdmin отображаемое имя владельца для заблокированных слотов
	SlotOwnerAdmin = "Admin"
)

// OccupiedSlot describes one interval rendered unavailable on a venue's day:
// either an active booking or an administrator block.
type OccupiedSlot struct {
	Interval TimeInterval
	Status   string // booking status or SlotStatusBlocked
	BookedBy string // requester display name, or SlotOwnerAdmin

	// Booking-sourced metadata; nil for admin-blocked entries
	BookingID    *int64
	Participants *int
	Notes        *string
}

// ConflictsWith reports whether the occupied slot overlaps the candidate
// interval under the strict overlap rule.
func (s *OccupiedSlot) ConflictsWith(candidate TimeInterval) bool {
	return s.Interval.Overlaps(candidate)
}

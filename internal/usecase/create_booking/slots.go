package create_booking

import (
	"github.com/cst-sportspot/booking-service/internal/domain"
)

// countConflicts подсчитывает занятые интервалы, пересекающиеся с кандидатом.
// Пересечение строгое: граничащие интервалы конфликтом не считаются.
// Записи с некорректным временем пропускаются как неконфликтующие.
func countConflicts(bookings []*domain.Booking, blocked []*domain.BlockedSlot, candidate domain.TimeInterval) int {
	count := 0

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		iv, err := domain.NewTimeInterval(b.StartTime, b.EndTime)
		if err != nil {
			continue
		}
		if iv.Overlaps(candidate) {
			count++
		}
	}

	for _, s := range blocked {
		iv, err := domain.NewTimeInterval(s.StartTime, s.EndTime)
		if err != nil {
			continue
		}
		if iv.Overlaps(candidate) {
			count++
		}
	}

	return count
}

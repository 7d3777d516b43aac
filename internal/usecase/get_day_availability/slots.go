package get_day_availability

import (
	"sort"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// buildOccupiedSlots объединяет бронирования и административные блокировки
// в один список занятых интервалов: сначала записи из бронирований,
// затем блокировки - стабильная сортировка сохранит этот порядок при
// равном времени начала
func buildOccupiedSlots(bookings []*domain.Booking, blocked []*domain.BlockedSlot) []domain.OccupiedSlot {
	slots := make([]domain.OccupiedSlot, 0, len(bookings)+len(blocked))

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}

		id := b.ID
		participants := b.Participants
		slots = append(slots, domain.OccupiedSlot{
			Interval:     domain.TimeInterval{Start: b.StartTime, End: b.EndTime},
			Status:       string(b.Status),
			BookedBy:     b.DisplayName(),
			BookingID:    &id,
			Participants: &participants,
			Notes:        b.Notes,
		})
	}

	for _, s := range blocked {
		notes := "Reserved by administrator"
		slots = append(slots, domain.OccupiedSlot{
			Interval: domain.TimeInterval{Start: s.StartTime, End: s.EndTime},
			Status:   domain.SlotStatusBlocked,
			BookedBy: domain.SlotOwnerAdmin,
			Notes:    &notes,
		})
	}

	return slots
}

// sortSlotsByStart сортирует занятые интервалы по возрастанию времени начала.
// Стабильная сортировка: при равном start порядок источников сохраняется,
// поэтому повторный вызов с теми же данными дает идентичный результат.
func sortSlotsByStart(slots []domain.OccupiedSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return domain.CompareStart(slots[i].Interval, slots[j].Interval) < 0
	})
}

package check_slot_availability

import (
	"github.com/cst-sportspot/booking-service/internal/domain"
)

// buildOccupiedSlots объединяет два независимых источника занятых интервалов -
// активные бронирования и заблокированные администратором слоты площадки -
// в один список дескрипторов на день
func buildOccupiedSlots(bookings []*domain.Booking, blocked []*domain.BlockedSlot) []domain.OccupiedSlot {
	slots := make([]domain.OccupiedSlot, 0, len(bookings)+len(blocked))

	for _, b := range bookings {
		// Репозиторий фильтрует по занимающим статусам, но проверяем ещё раз:
		// Rejected и Cancelled никогда не блокируют слот
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

// countConflicts подсчитывает занятые интервалы, пересекающиеся с кандидатом.
// Пересечение строгое: граничащие интервалы (10:00-11:00 и 11:00-12:00)
// конфликтом не считаются.
//
// Занятые записи с некорректным временем пропускаются как неконфликтующие -
// одна битая историческая запись не должна сделать площадку полностью
// занятой или полностью свободной.
func countConflicts(occupied []domain.OccupiedSlot, candidate domain.TimeInterval) int {
	count := 0
	for _, slot := range occupied {
		iv, err := domain.NewTimeInterval(slot.Interval.Start, slot.Interval.End)
		if err != nil {
			continue
		}
		if iv.Overlaps(candidate) {
			count++
		}
	}
	return count
}

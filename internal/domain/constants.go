package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinParticipants = 1
	MaxNotesLength  = 500
)

// OccupyingStatuses статусы бронирований, занимающие слот.
// Используется при агрегации занятых интервалов: Rejected и Cancelled
// никогда не блокируют новые бронирования.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// DayBounds normalizes an arbitrary timestamp to its calendar-day range
// [startOfDay, nextDayStart). All "same day" comparisons go through this
// range at the data-access boundary; raw timestamps are never compared
// for day equality.
func DayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

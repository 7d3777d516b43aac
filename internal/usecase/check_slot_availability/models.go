package check_slot_availability

import (
	"time"

	"github.com/cst-sportspot/booking-service/pkg/types"
)

// Request модель запроса на проверку доступности конкретного слота
type Request struct {
	VenueID   int64            // ID площадки
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Начало кандидатного интервала
	EndTime   types.TimeString // Конец кандидатного интервала
}

// Response результат проверки доступности слота.
// Конфликт - это нормальный результат запроса (IsAvailable=false),
// а не ошибка: в ошибку он превращается только при создании бронирования.
type Response struct {
	Date                time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	IsAvailable         bool
	ConflictingBookings int // Конфликты из обоих источников: бронирования + блокировки администратора
}

package get_day_availability

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// Request модель запроса на отчет о занятости площадки за день
type Request struct {
	VenueID int64     // ID площадки
	Date    time.Time // Дата (без времени)
}

// Response отчет о занятости за день для отрисовки календаря.
// IsAvailable - гейт уровня площадки (venue.status == Available),
// не зависит от занятости слотов.
type Response struct {
	Date        time.Time
	VenueName   string
	VenueStatus domain.VenueStatus
	BookedSlots []domain.OccupiedSlot // Отсортированы по времени начала
	IsAvailable bool
}

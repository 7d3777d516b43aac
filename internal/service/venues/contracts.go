package venues

import (
	"context"
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	Delete(ctx context.Context, id int64) error
	AddBlockedSlot(ctx context.Context, s *domain.BlockedSlot) (*domain.BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, venueID, slotID int64) error
	GetBlockedSlotsByDay(ctx context.Context, venueID int64, dayStart, dayEnd time.Time) ([]*domain.BlockedSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ExistsForVenue(ctx context.Context, venueID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

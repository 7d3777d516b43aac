package bookings

import (
	"context"
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
	"github.com/cst-sportspot/booking-service/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountActiveByUser(ctx context.Context, userID int64, from time.Time) (int64, error)
	RepairVenueNames(ctx context.Context) (int64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	Count(ctx context.Context) (int64, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, key string, event events.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package booking_stats

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	UserStats(ctx context.Context, userID int64) (*models.UserStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

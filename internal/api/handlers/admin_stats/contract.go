package admin_stats

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	AdminStats(ctx context.Context) (*models.AdminStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

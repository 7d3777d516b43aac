package admin_bookings

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetAllBookings(ctx context.Context, req *models.GetAllBookingsRequest) (*models.BookingListResponse, error)
	UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error)
	Delete(ctx context.Context, bookingID int64) error
	RepairVenueNames(ctx context.Context) (*models.RepairVenueNamesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

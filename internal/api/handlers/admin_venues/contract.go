package admin_venues

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	Create(ctx context.Context, req *models.CreateVenueRequest) (*models.VenueResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateVenueRequest) (*models.VenueResponse, error)
	Delete(ctx context.Context, id int64) error
	BlockSlot(ctx context.Context, venueID int64, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error)
	UnblockSlot(ctx context.Context, venueID, slotID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

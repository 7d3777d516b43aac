package venues

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/venues/models"
)

type VenuesService interface {
	List(ctx context.Context) (*models.VenueListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

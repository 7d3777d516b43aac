package profile

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/users/models"
)

type UsersService interface {
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

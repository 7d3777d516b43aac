package admin_users

import (
	"context"

	"github.com/cst-sportspot/booking-service/internal/service/users/models"
)

type UsersService interface {
	List(ctx context.Context) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package admin_users

import (
	"net/http"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/users - Users listed: count=%d", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}

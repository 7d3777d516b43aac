package admin_stats

import (
	"net/http"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AdminStats(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to collect stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/stats - Stats collected: users=%d, venues=%d, active=%d, pending=%d",
		result.TotalUsers, result.TotalVenues, result.ActiveBookings, result.PendingRequests)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package booking_stats

import (
	"net/http"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	"github.com/cst-sportspot/booking-service/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

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

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.UserStats(r.Context(), actor.ID)
	if err != nil {
		h.logger.Error("GET /bookings/stats - Failed to collect stats: user_id=%d, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/stats - Stats collected: user_id=%d", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

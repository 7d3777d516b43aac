package get_day_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	getDayAvailability "github.com/cst-sportspot/booking-service/internal/usecase/get_day_availability"
)

const (
	msgInvalidVenueID = "invalid venue ID"
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgVenueNotFound  = "venue not found"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/calendar-availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/calendar-availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/calendar-availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/calendar-availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/calendar-availability - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/calendar-availability - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /venues/{id}/calendar-availability - Failed to build report: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/calendar-availability - Report built: venue_id=%d, date=%s, booked_slots=%d",
		venueID, dateStr, len(result.BookedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package check_slot_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	checkSlotAvailability "github.com/cst-sportspot/booking-service/internal/usecase/check_slot_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidVenueID     = "invalid venue ID"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgVenueNotFound      = "venue not found"
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/calendar-availability
// Body: {date, startTime, endTime}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/calendar-availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CheckSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/calendar-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(venueID)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/calendar-availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlotAvailability.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/calendar-availability - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, checkSlotAvailability.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/calendar-availability - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /venues/{id}/calendar-availability - Failed to check slot: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/calendar-availability - Slot checked: venue_id=%d, date=%s, slot=%s-%s, available=%t, conflicts=%d",
		venueID, req.Date, req.StartTime, req.EndTime, result.IsAvailable, result.ConflictingBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

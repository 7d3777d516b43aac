package admin_venues

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	venuesService "github.com/cst-sportspot/booking-service/internal/service/venues"
	"github.com/cst-sportspot/booking-service/internal/service/venues/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidVenueID      = "invalid venue ID"
	msgInvalidSlotID       = "invalid slot ID"
	msgInvalidDateOrTime   = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgVenueNotFound       = "venue not found"
	msgBlockedSlotNotFound = "blocked slot not found"
	msgDuplicateName       = "venue with this name already exists"
	msgVenueInUse          = "venue has bookings and cannot be deleted"
)

type Handler struct {
	service VenuesService
	logger  Logger
}

func NewHandler(service VenuesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/venues
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/venues - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrDuplicateName):
			h.logger.Warn("POST /admin/venues - Duplicate name: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgDuplicateName)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /admin/venues - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/venues - Failed to create venue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/venues - Venue created: venue_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/venues/{venueId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req models.UpdateVenueRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/venues/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), venueID, &req)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("PUT /admin/venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrDuplicateName):
			h.logger.Warn("PUT /admin/venues/{id} - Duplicate name: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgDuplicateName)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/venues/{id} - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/venues/{id} - Failed to update venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/venues/{id} - Venue updated: venue_id=%d", venueID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/venues/{venueId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/venues/{id} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	if err := h.service.Delete(r.Context(), venueID); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("DELETE /admin/venues/{id} - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrVenueInUse):
			h.logger.Warn("DELETE /admin/venues/{id} - Venue in use: venue_id=%d", venueID)
			handlers.RespondConflict(w, msgVenueInUse)

		default:
			h.logger.Error("DELETE /admin/venues/{id} - Failed to delete venue: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/venues/{id} - Venue deleted: venue_id=%d", venueID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleBlockSlot POST /api/v1/admin/venues/{venueId}/blocked-slots
func (h *Handler) HandleBlockSlot(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/venues/{id}/blocked-slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/venues/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/venues/{id}/blocked-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.BlockSlot(r.Context(), venueID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, venuesService.ErrVenueNotFound):
			h.logger.Warn("POST /admin/venues/{id}/blocked-slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, venuesService.ErrInvalidInput):
			h.logger.Warn("POST /admin/venues/{id}/blocked-slots - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/venues/{id}/blocked-slots - Failed to block slot: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/venues/{id}/blocked-slots - Slot blocked: venue_id=%d, slot_id=%d", venueID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUnblockSlot DELETE /api/v1/admin/venues/{venueId}/blocked-slots/{slotId}
func (h *Handler) HandleUnblockSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	venueID, err := strconv.ParseInt(vars["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/venues/{id}/blocked-slots/{slotId} - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/venues/{id}/blocked-slots/{slotId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.UnblockSlot(r.Context(), venueID, slotID); err != nil {
		switch {
		case errors.Is(err, venuesService.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /admin/venues/{id}/blocked-slots/{slotId} - Slot not found: venue_id=%d, slot_id=%d", venueID, slotID)
			handlers.RespondNotFound(w, msgBlockedSlotNotFound)

		default:
			h.logger.Error("DELETE /admin/venues/{id}/blocked-slots/{slotId} - Failed to unblock: venue_id=%d, slot_id=%d, error=%v",
				venueID, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/venues/{id}/blocked-slots/{slotId} - Slot unblocked: venue_id=%d, slot_id=%d", venueID, slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

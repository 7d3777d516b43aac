package admin_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	"github.com/cst-sportspot/booking-service/internal/service/bookings"
	"github.com/cst-sportspot/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidFilter      = "invalid filter parameters"
	msgBookingNotFound    = "booking not found"
	msgInvalidTransition  = "status transition is not allowed"
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

// HandleList GET /api/v1/admin/bookings
// Query params: status, venueId, userId (all optional)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := &models.GetAllBookingsRequest{}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if venueIDStr := query.Get("venueId"); venueIDStr != "" {
		venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid venue ID filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.VenueID = &venueID
	}
	if userIDStr := query.Get("userId"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid user ID filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.UserID = &userID
	}

	result, err := h.service.GetAllBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings listed: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/admin/bookings/{bookingId}/status
// Body: {status}
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%d, status=%s", bookingID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleRepairVenueNames POST /api/v1/admin/bookings/repair-venue-names
func (h *Handler) HandleRepairVenueNames(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RepairVenueNames(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/bookings/repair-venue-names - Repair failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/repair-venue-names - Repaired %d bookings", result.Repaired)
	handlers.RespondJSON(w, http.StatusOK, result)
}

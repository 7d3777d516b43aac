package profile

import (
	"errors"
	"net/http"

	"github.com/cst-sportspot/booking-service/internal/api/handlers"
	"github.com/cst-sportspot/booking-service/internal/api/middleware"
	usersService "github.com/cst-sportspot/booking-service/internal/service/users"
	"github.com/cst-sportspot/booking-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserNotFound       = "user not found"
	msgDuplicateUsername  = "username already taken"
	msgUnauthorized       = "authentication required"
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

// HandleGet GET /api/v1/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetByID(r.Context(), actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /profile - User not found: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /profile - Failed to get profile: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), actor.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PUT /profile - User not found: user_id=%d", actor.ID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrDuplicateUser):
			h.logger.Warn("PUT /profile - Username taken: user_id=%d", actor.ID)
			handlers.RespondConflict(w, msgDuplicateUsername)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid input: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /profile - Failed to update profile: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Profile updated: user_id=%d", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

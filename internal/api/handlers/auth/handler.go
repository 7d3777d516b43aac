package auth

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
	msgDuplicateUser      = "user with this email or username already exists"
	msgInvalidCredentials = "invalid email or password"
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

// HandleRegister POST /api/v1/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrDuplicateUser):
			h.logger.Warn("POST /auth/register - Duplicate user: email=%s", req.Email)
			handlers.RespondConflict(w, msgDuplicateUser)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleLogin POST /api/v1/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleVerify GET /api/v1/auth/verify
// Закрыт auth middleware: если запрос дошел сюда, токен валиден
// и актор загружен из хранилища.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.logger.Info("GET /auth/verify - Token verified: user_id=%d", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, struct {
		Valid bool                `json:"valid"`
		User  models.UserResponse `json:"user"`
	}{
		Valid: true,
		User:  *models.FromDomainUser(actor),
	})
}

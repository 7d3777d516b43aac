package models

import (
	"time"

	"github.com/cst-sportspot/booking-service/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	StudentNumber *string `json:"studentNumber,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest запрос на обновление профиля.
// Nil-поля не изменяются.
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty"`
	Username      *string `json:"username,omitempty"`
	StudentNumber *string `json:"studentNumber,omitempty"`
	ProfileImage  *string `json:"profileImage,omitempty"`
}

// Response модели

// UserResponse ответ с данными пользователя, без хэша пароля
type UserResponse struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	StudentNumber *string `json:"studentNumber,omitempty"`
	Role          string  `json:"role"`
	ProfileImage  *string `json:"profileImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// AuthResponse ответ с токеном доступа и данными пользователя
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Username:      u.Username,
		StudentNumber: u.StudentNumber,
		Role:          string(u.Role),
		ProfileImage:  u.ProfileImage,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}

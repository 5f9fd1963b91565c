// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	model "ems_backend/internals/features/users/auth/model"
)

/* ===================== REQUESTS ===================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=admin hr_manager super_admin"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Theme    string `json:"theme"`
	IsActive bool   `json:"is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"` // detik
	User        UserResponse `json:"user"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:   m.UserID,
		UserName: m.UserName,
		Email:    m.Email,
		Role:     m.Role,
		Theme:    m.Theme,
		IsActive: m.IsActive,
	}
}

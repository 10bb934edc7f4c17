package dto

import (
	"time"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// SignupRequest entrada para registro (password en texto, se hashea en use case).
type SignupRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Name           string `json:"name" validate:"required,min=2"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	CurrentProject string `json:"currentProject"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest entrada para editar el perfil propio.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Company        *string `json:"company"`
	CurrentProject *string `json:"currentProject"`
	Avatar         *string `json:"avatar"`
}

// UpdatePasswordRequest entrada para cambiar la contraseña propia.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Company        string    `json:"company,omitempty"`
	CurrentProject string    `json:"currentProject,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublicUserResponse subconjunto público de un usuario (para no-dueños).
type PublicUserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// AuthResponse salida de signup/login con token JWT.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse convierte la entidad al DTO de salida.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Phone:          u.Phone,
		Company:        u.Company,
		CurrentProject: u.CurrentProject,
		Avatar:         u.Avatar,
		Role:           u.Role,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// ToPublicUserResponse convierte la entidad al subconjunto público.
func ToPublicUserResponse(u *entity.User) *PublicUserResponse {
	if u == nil {
		return nil
	}
	return &PublicUserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Company: u.Company,
		Avatar:  u.Avatar,
	}
}

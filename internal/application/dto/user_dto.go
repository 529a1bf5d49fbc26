package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// RegisterRequest entrada para registro: providerId solo es obligatorio para managers.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	ProviderID string `json:"providerId,omitempty"`
}

// Validate aplica las reglas de registro en orden: obligatorios, rol, provider del manager.
func (r RegisterRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.Role, validation.Required),
	); err != nil {
		return &ValidationError{Message: "Missing required fields", Detail: "All fields are required"}
	}
	if err := validation.Validate(r.Role, validation.In(string(entity.RoleManager), string(entity.RoleClaimant))); err != nil {
		return &ValidationError{Message: "Invalid role", Detail: "Role must be either manager or claimant"}
	}
	if entity.Role(r.Role) == entity.RoleManager && r.ProviderID == "" {
		return &ValidationError{Message: "Provider ID is required for managers", Detail: "providerId is required"}
	}
	return nil
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate exige email y password.
func (r LoginRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	); err != nil {
		return &ValidationError{Message: "Missing credentials", Detail: "Email and password are required"}
	}
	return nil
}

// UserView vista redactada de un usuario (nunca incluye el hash).
type UserView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ProviderID string `json:"providerId,omitempty"`
}

// UserResponse vista de un usuario recién registrado.
type UserResponse struct {
	UserView
	Status    string    `json:"status"`
	LastLogin time.Time `json:"lastLogin"`
}

// LoginResponse token firmado más la vista del usuario.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// NewUserView redacta un usuario para exponerlo.
func NewUserView(u *entity.User) UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		ProviderID: u.ProviderID,
	}
}

// NewUserResponse redacta un usuario registrado.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		UserView:  NewUserView(u),
		Status:    string(u.Status),
		LastLogin: u.LastLogin,
	}
}

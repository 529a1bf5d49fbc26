package entity

import "time"

// Role rol de un usuario.
type Role string

// Roles válidos para User.
const (
	RoleManager  Role = "manager"
	RoleClaimant Role = "claimant"
)

// Valid informa si el rol pertenece al enum.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleClaimant
}

// UserStatus estado de la cuenta.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserBlocked  UserStatus = "blocked"
)

// User representa una cuenta del sistema. ProviderID es obligatorio para managers.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string // bcrypt hash, nunca se expone en respuestas
	Status       UserStatus
	LastLogin    time.Time
	IsDeleted    bool
	ProviderID   string
	CreatedAt    time.Time
}

// AuthenticatedUser identidad extraída del token y adjuntada a la petición.
type AuthenticatedUser struct {
	ID         string
	Email      string
	Role       Role
	ProviderID string
}

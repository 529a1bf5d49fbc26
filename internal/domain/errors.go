package domain

import "errors"

// Errores de dominio (sin dependencias externas). El texto de cada error es el que ve el cliente.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUser      = errors.New("User already exists")
	ErrProviderNotFound   = errors.New("Provider not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInactiveUser       = errors.New("User is not active")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrForbidden          = errors.New("Access denied")
	ErrClaimNotFound      = errors.New("Claim not found")
	ErrClaimLocked        = errors.New("Claim cannot be modified in current status")
)

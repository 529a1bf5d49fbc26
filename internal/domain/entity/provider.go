package entity

import "time"

// ProviderStatus estado de un proveedor.
type ProviderStatus string

const (
	ProviderActive   ProviderStatus = "active"
	ProviderInactive ProviderStatus = "inactive"
)

// Provider organización contra la que se presentan reclamos.
type Provider struct {
	ID        string
	Name      string
	Email     string
	Address   string
	Status    ProviderStatus
	CreatedAt time.Time
}

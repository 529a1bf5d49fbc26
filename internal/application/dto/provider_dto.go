package dto

import "github.com/jhoicas/claims-api/internal/domain/entity"

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// NewProviderResponses convierte una lista, nunca devuelve nil.
func NewProviderResponses(list []*entity.Provider) []ProviderResponse {
	out := make([]ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ProviderResponse{ID: p.ID, Name: p.Name, Email: p.Email, Address: p.Address, Status: string(p.Status)})
	}
	return out
}

package repository

import (
	"context"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// ClaimRepository define el puerto de persistencia para Claim.
// Los listados excluyen reclamos borrados y respetan el orden de creación.
type ClaimRepository interface {
	Reader[entity.Claim]
	Create(ctx context.Context, claim *entity.Claim) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Claim, error)
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Claim, error)
	ListByProviderAndStatus(ctx context.Context, providerID string, status entity.ClaimStatus) ([]*entity.Claim, error)
	// UpdateStatus y AddComment devuelven el reclamo actualizado, o (nil, nil) si no existe.
	UpdateStatus(ctx context.Context, id string, status entity.ClaimStatus) (*entity.Claim, error)
	AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Claim, error)
}

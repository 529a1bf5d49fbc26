package repository

import (
	"context"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// ProviderRepository define el puerto de persistencia para Provider.
type ProviderRepository interface {
	Reader[entity.Provider]
	Create(ctx context.Context, provider *entity.Provider) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]*entity.Provider, error)
}

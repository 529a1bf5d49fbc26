package repository

import (
	"context"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// LogRepository puerto append-only del journal de auditoría.
type LogRepository interface {
	Create(ctx context.Context, log *entity.Log) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Log, error)
	ListByClaim(ctx context.Context, claimID string) ([]*entity.Log, error)
	ListByUserAndClaim(ctx context.Context, userID, claimID string) ([]*entity.Log, error)
}

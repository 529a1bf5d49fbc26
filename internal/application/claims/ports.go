package claims

import (
	"context"

	"github.com/jhoicas/claims-api/internal/domain/repository"
)

// TxRunner ejecuta la mutación de un reclamo y su registro de auditoría en una misma transacción.
type TxRunner interface {
	RunClaim(ctx context.Context, fn func(
		claimRepo repository.ClaimRepository,
		logRepo repository.LogRepository,
	) error) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/claims-api/internal/application/claims"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var _ claims.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunClaim inicia una transacción, ejecuta fn con repos de reclamos y journal atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) RunClaim(ctx context.Context, fn func(
	claimRepo repository.ClaimRepository,
	logRepo repository.LogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClaimRepository(tx), NewLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

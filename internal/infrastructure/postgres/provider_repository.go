package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

const providerColumns = `id, name, email, address, status, created_at`

// ProviderRepo implementación del puerto ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q         Querier
	providers table[entity.Provider]
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{
		q:         q,
		providers: table[entity.Provider]{q: q, name: "providers", columns: providerColumns, scan: scanProvider},
	}
}

func scanProvider(row pgx.Row) (*entity.Provider, error) {
	var p entity.Provider
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Address, &p.Status, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(ctx context.Context, p *entity.Provider) error {
	query := `
		INSERT INTO providers (` + providerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Email, p.Address, p.Status, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	return r.providers.findByID(ctx, id, "")
}

// ExistsByEmail informa si ya hay un proveedor con ese email.
func (r *ProviderRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM providers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists provider by email: %w", err)
	}
	return exists, nil
}

// ListActive lista los proveedores activos.
func (r *ProviderRepo) ListActive(ctx context.Context) ([]*entity.Provider, error) {
	return r.providers.find(ctx, "status = $1", entity.ProviderActive)
}

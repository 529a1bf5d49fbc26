package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var _ repository.ClaimRepository = (*ClaimRepo)(nil)

const claimColumns = `id, user_id, benefit, full_name, birth_date, gender, phone_number, work_phone_number,
	dependants, role_start_date, provider_id, status, created_at, comments, is_deleted`

// ClaimRepo implementación del puerto ClaimRepository sobre PostgreSQL.
// Los comentarios viven en una columna JSONB y solo se agregan al final.
type ClaimRepo struct {
	q      Querier
	claims table[entity.Claim]
}

// NewClaimRepository construye el adaptador de persistencia para reclamos.
func NewClaimRepository(q Querier) *ClaimRepo {
	return &ClaimRepo{
		q:      q,
		claims: table[entity.Claim]{q: q, name: "claims", columns: claimColumns, scan: scanClaim},
	}
}

func scanClaim(row pgx.Row) (*entity.Claim, error) {
	var (
		c        entity.Claim
		comments []byte
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.Benefit, &c.FullName, &c.BirthDate, &c.Gender, &c.PhoneNumber,
		&c.WorkPhoneNumber, &c.Dependants, &c.RoleStartDate, &c.ProviderID, &c.Status,
		&c.CreatedAt, &comments, &c.IsDeleted,
	)
	if err != nil {
		return nil, err
	}
	c.Comments = []entity.Comment{}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &c.Comments); err != nil {
			return nil, fmt.Errorf("decode comments: %w", err)
		}
	}
	return &c, nil
}

// Create persiste un nuevo reclamo.
func (r *ClaimRepo) Create(ctx context.Context, c *entity.Claim) error {
	comments := c.Comments
	if comments == nil {
		comments = []entity.Comment{}
	}
	raw, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Benefit, c.FullName, c.BirthDate, c.Gender, c.PhoneNumber,
		c.WorkPhoneNumber, c.Dependants, c.RoleStartDate, c.ProviderID, c.Status,
		c.CreatedAt, raw, c.IsDeleted,
	)
	if err != nil {
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

// GetByID obtiene un reclamo no borrado por ID.
func (r *ClaimRepo) GetByID(ctx context.Context, id string) (*entity.Claim, error) {
	return r.claims.findByID(ctx, id, "NOT is_deleted")
}

// ListByUser reclamos presentados por el usuario.
func (r *ClaimRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Claim, error) {
	return r.claims.find(ctx, "user_id = $1 AND NOT is_deleted", userID)
}

// ListByProvider reclamos presentados contra el proveedor.
func (r *ClaimRepo) ListByProvider(ctx context.Context, providerID string) ([]*entity.Claim, error) {
	return r.claims.find(ctx, "provider_id = $1 AND NOT is_deleted", providerID)
}

// ListByProviderAndStatus reclamos del proveedor en un estado concreto.
func (r *ClaimRepo) ListByProviderAndStatus(ctx context.Context, providerID string, status entity.ClaimStatus) ([]*entity.Claim, error) {
	return r.claims.find(ctx, "provider_id = $1 AND status = $2 AND NOT is_deleted", providerID, status)
}

// UpdateStatus cambia el estado y devuelve el reclamo actualizado.
func (r *ClaimRepo) UpdateStatus(ctx context.Context, id string, status entity.ClaimStatus) (*entity.Claim, error) {
	query := `UPDATE claims SET status = $2 WHERE id = $1 AND NOT is_deleted RETURNING ` + claimColumns
	return r.returning(ctx, query, id, status)
}

// AddComment agrega el comentario al final de la lista en una sola sentencia.
func (r *ClaimRepo) AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Claim, error) {
	raw, err := json.Marshal([]entity.Comment{comment})
	if err != nil {
		return nil, fmt.Errorf("encode comment: %w", err)
	}
	query := `UPDATE claims SET comments = comments || $2::jsonb WHERE id = $1 AND NOT is_deleted RETURNING ` + claimColumns
	return r.returning(ctx, query, id, raw)
}

func (r *ClaimRepo) returning(ctx context.Context, query string, args ...any) (*entity.Claim, error) {
	c, err := scanClaim(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update claim: %w", err)
	}
	return c, nil
}

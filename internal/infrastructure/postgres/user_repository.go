package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, role, password_hash, status, last_login, is_deleted, provider_id, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q     Querier
	users table[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{
		q:     q,
		users: table[entity.User]{q: q, name: "users", columns: userColumns, scan: scanUser},
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.Status,
		&u.LastLogin, &u.IsDeleted, &u.ProviderID, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.PasswordHash, user.Status,
		user.LastLogin, user.IsDeleted, user.ProviderID, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (incluye borrados).
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users.findByID(ctx, id, "")
}

// GetByEmail obtiene el usuario no borrado con ese email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users.findOne(ctx, "email = $1 AND NOT is_deleted", email)
}

// ExistsByEmail informa si hay un usuario no borrado con ese email.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND NOT is_deleted)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists user by email: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin registra el instante del último login.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

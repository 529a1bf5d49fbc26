package repository

import (
	"context"
	"time"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Reader[entity.User]
	Create(ctx context.Context, user *entity.User) error
	// GetByEmail busca entre usuarios no borrados.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ExistsByEmail informa si hay un usuario no borrado con ese email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

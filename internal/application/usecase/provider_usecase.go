package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

// ProviderUseCase casos de uso de proveedores.
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// ListActive lista los proveedores activos.
func (uc *ProviderUseCase) ListActive(ctx context.Context) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewProviderResponses(list), nil
}

// Seed crea el proveedor salvo que ya exista uno con el mismo email. Devuelve true si lo creó.
func (uc *ProviderUseCase) Seed(ctx context.Context, name, email, address string, status entity.ProviderStatus) (bool, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return false, fmt.Errorf("%w: name y email son obligatorios", domain.ErrInvalidInput)
	}
	if status == "" {
		status = entity.ProviderActive
	}
	if status != entity.ProviderActive && status != entity.ProviderInactive {
		return false, fmt.Errorf("%w: estado de proveedor desconocido %q", domain.ErrInvalidInput, status)
	}
	exists, err := uc.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	p := &entity.Provider{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Address:   strings.TrimSpace(address),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

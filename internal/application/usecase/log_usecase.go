package usecase

import (
	"context"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

// LogUseCase consultas del journal de auditoría.
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// List devuelve los logs del reclamo si se indica claimID; si no, los del usuario que pide.
func (uc *LogUseCase) List(ctx context.Context, requester entity.AuthenticatedUser, claimID string) ([]dto.LogResponse, error) {
	var (
		list []*entity.Log
		err  error
	)
	if claimID != "" {
		list, err = uc.repo.ListByClaim(ctx, claimID)
	} else {
		list, err = uc.repo.ListByUser(ctx, requester.ID)
	}
	if err != nil {
		return nil, err
	}
	return dto.NewLogResponses(list), nil
}

// ListByClaim devuelve todos los logs de un reclamo.
func (uc *LogUseCase) ListByClaim(ctx context.Context, claimID string) ([]dto.LogResponse, error) {
	list, err := uc.repo.ListByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return dto.NewLogResponses(list), nil
}

// ListByUserAndClaim devuelve los logs de un reclamo generados por quien pide.
func (uc *LogUseCase) ListByUserAndClaim(ctx context.Context, requester entity.AuthenticatedUser, claimID string) ([]dto.LogResponse, error) {
	list, err := uc.repo.ListByUserAndClaim(ctx, requester.ID, claimID)
	if err != nil {
		return nil, err
	}
	return dto.NewLogResponses(list), nil
}

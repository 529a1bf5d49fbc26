package claims

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/claim"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

// Textos del journal de auditoría.
const (
	actionCreated       = "Created new claim"
	actionStatusPattern = "Updated claim status from %s to %s"
	actionCommentPrefix = "Added comment: "
)

// ClaimUseCase casos de uso de reclamos, acotados por el rol de quien pide.
type ClaimUseCase struct {
	claimRepo repository.ClaimRepository
	tx        TxRunner
}

// NewClaimUseCase construye el caso de uso. Las lecturas usan claimRepo; las escrituras van por tx.
func NewClaimUseCase(claimRepo repository.ClaimRepository, tx TxRunner) *ClaimUseCase {
	return &ClaimUseCase{claimRepo: claimRepo, tx: tx}
}

// List devuelve los reclamos del proveedor (manager) o los propios (resto de roles).
func (uc *ClaimUseCase) List(ctx context.Context, requester entity.AuthenticatedUser) ([]dto.ClaimResponse, error) {
	var (
		list []*entity.Claim
		err  error
	)
	if requester.Role == entity.RoleManager {
		list, err = uc.claimRepo.ListByProvider(ctx, requester.ProviderID)
	} else {
		list, err = uc.claimRepo.ListByUser(ctx, requester.ID)
	}
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponses(list), nil
}

// ListByProvider lista los reclamos de un proveedor, opcionalmente filtrados por estado.
func (uc *ClaimUseCase) ListByProvider(ctx context.Context, providerID, status string) ([]dto.ClaimResponse, error) {
	var (
		list []*entity.Claim
		err  error
	)
	if status == "" {
		list, err = uc.claimRepo.ListByProvider(ctx, providerID)
	} else {
		s := entity.ClaimStatus(status)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
		}
		list, err = uc.claimRepo.ListByProviderAndStatus(ctx, providerID, s)
	}
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponses(list), nil
}

// Get devuelve un reclamo visible para quien pide.
func (uc *ClaimUseCase) Get(ctx context.Context, requester entity.AuthenticatedUser, id string) (*dto.ClaimResponse, error) {
	c, err := uc.load(ctx, uc.claimRepo, requester, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponse(c), nil
}

// Create persiste un reclamo nuevo en estado pending y registra la acción.
func (uc *ClaimUseCase) Create(ctx context.Context, requester entity.AuthenticatedUser, in dto.CreateClaimRequest) (*dto.ClaimResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	c := &entity.Claim{
		ID:              uuid.New().String(),
		UserID:          requester.ID,
		Benefit:         in.Benefit,
		FullName:        in.FullName,
		BirthDate:       in.BirthDate.Ptr(),
		Gender:          in.Gender,
		PhoneNumber:     in.PhoneNumber,
		WorkPhoneNumber: in.WorkPhoneNumber,
		Dependants:      in.Dependants,
		RoleStartDate:   in.RoleStartDate.Ptr(),
		ProviderID:      in.ProviderID,
		Status:          entity.ClaimPending,
		CreatedAt:       time.Now().UTC(),
		Comments:        []entity.Comment{},
		IsDeleted:       false,
	}
	err := uc.tx.RunClaim(ctx, func(claimRepo repository.ClaimRepository, logRepo repository.LogRepository) error {
		if err := claimRepo.Create(ctx, c); err != nil {
			return err
		}
		return appendLog(ctx, logRepo, requester.ID, c.ID, actionCreated)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponse(c), nil
}

// UpdateStatus aplica la regla de transición y registra "from -> to".
func (uc *ClaimUseCase) UpdateStatus(ctx context.Context, requester entity.AuthenticatedUser, id string, status entity.ClaimStatus) (*dto.ClaimResponse, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}
	var updated *entity.Claim
	err := uc.tx.RunClaim(ctx, func(claimRepo repository.ClaimRepository, logRepo repository.LogRepository) error {
		current, err := uc.load(ctx, claimRepo, requester, id)
		if err != nil {
			return err
		}
		if err := claim.CheckTransition(requester.Role, current.Status, status); err != nil {
			return err
		}
		updated, err = claimRepo.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrClaimNotFound
		}
		return appendLog(ctx, logRepo, requester.ID, id, fmt.Sprintf(actionStatusPattern, current.Status, status))
	})
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponse(updated), nil
}

// AddComment agrega un comentario firmado con el email de quien pide y registra el texto tal cual.
func (uc *ClaimUseCase) AddComment(ctx context.Context, requester entity.AuthenticatedUser, id, message string) (*dto.ClaimResponse, error) {
	var updated *entity.Claim
	err := uc.tx.RunClaim(ctx, func(claimRepo repository.ClaimRepository, logRepo repository.LogRepository) error {
		if _, err := uc.load(ctx, claimRepo, requester, id); err != nil {
			return err
		}
		comment := entity.Comment{Name: requester.Email, Message: message, CreatedAt: time.Now().UTC()}
		var err error
		updated, err = claimRepo.AddComment(ctx, id, comment)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrClaimNotFound
		}
		return appendLog(ctx, logRepo, requester.ID, id, actionCommentPrefix+message)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewClaimResponse(updated), nil
}

// load obtiene el reclamo y oculta como "no encontrado" los que quien pide no puede ver.
func (uc *ClaimUseCase) load(ctx context.Context, repo repository.ClaimRepository, requester entity.AuthenticatedUser, id string) (*entity.Claim, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrClaimNotFound
	}
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || !claim.CanAccess(requester, c) {
		return nil, domain.ErrClaimNotFound
	}
	return c, nil
}

func appendLog(ctx context.Context, repo repository.LogRepository, userID, claimID, action string) error {
	entry := &entity.Log{
		ID:      uuid.New().String(),
		UserID:  userID,
		ClaimID: claimID,
		Action:  action,
		Date:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

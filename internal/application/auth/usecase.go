package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
	"github.com/jhoicas/claims-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens y hash de contraseñas.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	BcryptCost int // 0 = bcrypt.DefaultCost
}

// AuthUseCase casos de uso de autenticación: registro, login y validación de token.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	providerRepo repository.ProviderRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, providerRepo repository.ProviderRepository, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.BcryptCost == 0 {
		jwtCfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, providerRepo: providerRepo, jwtCfg: jwtCfg}
}

// Register valida, comprueba duplicados y provider, hashea la contraseña y persiste el usuario.
// El usuario devuelto incluye PasswordHash: quien lo exponga debe redactarlo (dto.NewUserResponse).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	// Check-then-insert: el índice único parcial sobre email cierra la carrera en Create.
	exists, err := uc.userRepo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}

	role := entity.Role(in.Role)
	if role == entity.RoleManager {
		provider, err := uc.lookupProvider(ctx, in.ProviderID)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, domain.ErrProviderNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.jwtCfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		PasswordHash: string(hash),
		Status:       entity.UserActive,
		LastLogin:    now,
		IsDeleted:    false,
		ProviderID:   in.ProviderID,
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) lookupProvider(ctx context.Context, id string) (*entity.Provider, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return uc.providerRepo.GetByID(ctx, id)
}

// Login verifica credenciales, registra el último acceso y emite un token.
// Email desconocido y contraseña incorrecta devuelven el mismo error (sin enumeración de usuarios).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrInactiveUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = now

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Payload{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		ProviderID: user.ProviderID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserView(user),
	}, nil
}

// ValidateToken decodifica el token y comprueba que el usuario siga activo.
// Token inválido, usuario inexistente, usuario no activo y fallos del store colapsan en ErrInvalidToken.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, token string) (*entity.AuthenticatedUser, error) {
	payload, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if _, err := uuid.Parse(payload.UserID); err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(ctx, payload.UserID)
	if err != nil || user == nil || user.Status != entity.UserActive {
		return nil, domain.ErrInvalidToken
	}
	return &entity.AuthenticatedUser{
		ID:         payload.UserID,
		Email:      payload.Email,
		Role:       entity.Role(payload.Role),
		ProviderID: payload.ProviderID,
	}, nil
}

// IsClientError informa si el error es de negocio (mapeable a 4xx) y no de infraestructura.
func IsClientError(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidInput, domain.ErrDuplicateUser, domain.ErrProviderNotFound,
		domain.ErrInvalidCredentials, domain.ErrInactiveUser, domain.ErrInvalidToken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

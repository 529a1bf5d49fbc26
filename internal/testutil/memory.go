// Package testutil reúne dobles de prueba compartidos: un store en memoria que implementa
// todos los puertos de repository y el TxRunner de reclamos.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var (
	_ repository.UserRepository     = (*MemoryUsers)(nil)
	_ repository.ProviderRepository = (*MemoryProviders)(nil)
	_ repository.ClaimRepository    = (*MemoryClaims)(nil)
	_ repository.LogRepository      = (*MemoryLogs)(nil)
)

// ErrStoreDown error simulado de infraestructura.
var ErrStoreDown = errors.New("memory store: unavailable")

// MemoryStore datos en memoria con orden de inserción estable.
type MemoryStore struct {
	mu        sync.Mutex
	txMu      sync.Mutex
	users     []entity.User
	providers []entity.Provider
	claims    []entity.Claim
	logs      []entity.Log

	// FailLogs hace fallar las escrituras del journal (para probar rollback).
	FailLogs bool
}

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Users() *MemoryUsers         { return &MemoryUsers{s: s} }
func (s *MemoryStore) Providers() *MemoryProviders { return &MemoryProviders{s: s} }
func (s *MemoryStore) Claims() *MemoryClaims       { return &MemoryClaims{s: s} }
func (s *MemoryStore) Logs() *MemoryLogs           { return &MemoryLogs{s: s} }

// RunClaim serializa la transacción y restaura reclamos y logs si fn falla.
func (s *MemoryStore) RunClaim(ctx context.Context, fn func(claimRepo repository.ClaimRepository, logRepo repository.LogRepository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	claims := make([]entity.Claim, len(s.claims))
	for i, c := range s.claims {
		claims[i] = cloneClaim(c)
	}
	logs := append([]entity.Log(nil), s.logs...)
	s.mu.Unlock()

	if err := fn(s.Claims(), s.Logs()); err != nil {
		s.mu.Lock()
		s.claims, s.logs = claims, logs
		s.mu.Unlock()
		return err
	}
	return nil
}

// AddProvider siembra un proveedor directamente.
func (s *MemoryStore) AddProvider(p entity.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers = append(s.providers, p)
}

// SetUserStatus cambia el estado de un usuario (no hay caso de uso que lo haga).
func (s *MemoryStore) SetUserStatus(id string, status entity.UserStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
		}
	}
}

// SetClaimStatus fuerza el estado de un reclamo sin pasar por la regla de transición.
func (s *MemoryStore) SetClaimStatus(id string, status entity.ClaimStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.claims {
		if s.claims[i].ID == id {
			s.claims[i].Status = status
		}
	}
}

// UserCount número de usuarios persistidos.
func (s *MemoryStore) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// AllLogs copia del journal completo.
func (s *MemoryStore) AllLogs() []entity.Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Log(nil), s.logs...)
}

func cloneClaim(c entity.Claim) entity.Claim {
	c.Comments = append([]entity.Comment{}, c.Comments...)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

// MemoryUsers implementa repository.UserRepository.
type MemoryUsers struct{ s *MemoryStore }

func (r *MemoryUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email && !existing.IsDeleted {
			return domain.ErrDuplicateUser
		}
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *MemoryUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email && !u.IsDeleted {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.GetByEmail(ctx, email)
	return u != nil, err
}

func (r *MemoryUsers) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users[i].LastLogin = at
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Providers
// ──────────────────────────────────────────────────────────────────────────────

// MemoryProviders implementa repository.ProviderRepository.
type MemoryProviders struct{ s *MemoryStore }

func (r *MemoryProviders) Create(_ context.Context, p *entity.Provider) error {
	r.s.AddProvider(*p)
	return nil
}

func (r *MemoryProviders) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.providers {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MemoryProviders) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.providers {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryProviders) ListActive(_ context.Context) ([]*entity.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Provider
	for _, p := range r.s.providers {
		if p.Status == entity.ProviderActive {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Claims
// ──────────────────────────────────────────────────────────────────────────────

// MemoryClaims implementa repository.ClaimRepository.
type MemoryClaims struct{ s *MemoryStore }

func (r *MemoryClaims) Create(_ context.Context, c *entity.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.claims = append(r.s.claims, cloneClaim(*c))
	return nil
}

func (r *MemoryClaims) GetByID(_ context.Context, id string) (*entity.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(id), nil
}

func (r *MemoryClaims) find(id string) *entity.Claim {
	for _, c := range r.s.claims {
		if c.ID == id && !c.IsDeleted {
			out := cloneClaim(c)
			return &out
		}
	}
	return nil
}

func (r *MemoryClaims) filter(keep func(entity.Claim) bool) []*entity.Claim {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Claim
	for _, c := range r.s.claims {
		if !c.IsDeleted && keep(c) {
			cp := cloneClaim(c)
			out = append(out, &cp)
		}
	}
	return out
}

func (r *MemoryClaims) ListByUser(_ context.Context, userID string) ([]*entity.Claim, error) {
	return r.filter(func(c entity.Claim) bool { return c.UserID == userID }), nil
}

func (r *MemoryClaims) ListByProvider(_ context.Context, providerID string) ([]*entity.Claim, error) {
	return r.filter(func(c entity.Claim) bool { return c.ProviderID == providerID }), nil
}

func (r *MemoryClaims) ListByProviderAndStatus(_ context.Context, providerID string, status entity.ClaimStatus) ([]*entity.Claim, error) {
	return r.filter(func(c entity.Claim) bool { return c.ProviderID == providerID && c.Status == status }), nil
}

func (r *MemoryClaims) update(id string, mutate func(*entity.Claim)) *entity.Claim {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.claims {
		if r.s.claims[i].ID == id && !r.s.claims[i].IsDeleted {
			mutate(&r.s.claims[i])
			out := cloneClaim(r.s.claims[i])
			return &out
		}
	}
	return nil
}

func (r *MemoryClaims) UpdateStatus(_ context.Context, id string, status entity.ClaimStatus) (*entity.Claim, error) {
	return r.update(id, func(c *entity.Claim) { c.Status = status }), nil
}

func (r *MemoryClaims) AddComment(_ context.Context, id string, comment entity.Comment) (*entity.Claim, error) {
	return r.update(id, func(c *entity.Claim) { c.Comments = append(c.Comments, comment) }), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Logs
// ──────────────────────────────────────────────────────────────────────────────

// MemoryLogs implementa repository.LogRepository.
type MemoryLogs struct{ s *MemoryStore }

func (r *MemoryLogs) Create(_ context.Context, l *entity.Log) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailLogs {
		return ErrStoreDown
	}
	r.s.logs = append(r.s.logs, *l)
	return nil
}

func (r *MemoryLogs) filter(keep func(entity.Log) bool) []*entity.Log {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Log
	for _, l := range r.s.logs {
		if keep(l) {
			cp := l
			out = append(out, &cp)
		}
	}
	return out
}

func (r *MemoryLogs) ListByUser(_ context.Context, userID string) ([]*entity.Log, error) {
	return r.filter(func(l entity.Log) bool { return l.UserID == userID }), nil
}

func (r *MemoryLogs) ListByClaim(_ context.Context, claimID string) ([]*entity.Log, error) {
	return r.filter(func(l entity.Log) bool { return l.ClaimID == claimID }), nil
}

func (r *MemoryLogs) ListByUserAndClaim(_ context.Context, userID, claimID string) ([]*entity.Log, error) {
	return r.filter(func(l entity.Log) bool { return l.UserID == userID && l.ClaimID == claimID }), nil
}

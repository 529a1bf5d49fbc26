package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/claims-api/internal/application/auth"
	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/testutil"
	pkgjwt "github.com/jhoicas/claims-api/pkg/jwt"
)

const (
	testSecret   = "auth-usecase-secret"
	testIssuer   = "claims-api-test"
	testProvider = "00000000-0000-0000-0000-0000000000aa"
)

func newUseCase(t *testing.T) (*auth.AuthUseCase, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	store.AddProvider(entity.Provider{ID: testProvider, Name: "P", Email: "p@p.com", Status: entity.ProviderActive})
	uc := auth.NewAuthUseCase(store.Users(), store.Providers(), auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer, BcryptCost: bcrypt.MinCost,
	})
	return uc, store
}

func claimant(email string) dto.RegisterRequest {
	return dto.RegisterRequest{Name: "Ana", Email: email, Password: "s3cret", Role: "claimant"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_PersisteUsuarioActivoConHash(t *testing.T) {
	uc, store := newUseCase(t)
	before := time.Now().UTC()

	u, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)

	assert.Equal(t, entity.UserActive, u.Status)
	assert.False(t, u.IsDeleted)
	assert.False(t, u.LastLogin.Before(before))
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
	assert.Equal(t, 1, store.UserCount())
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, store := newUseCase(t)
	_, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), claimant("a@x.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	assert.Equal(t, 1, store.UserCount(), "no debe crearse un segundo usuario")
}

func TestRegister_ManagerConProveedorInexistente(t *testing.T) {
	uc, store := newUseCase(t)
	for _, providerID := range []string{"00000000-0000-0000-0000-00000000dead", "no-es-uuid"} {
		_, err := uc.Register(context.Background(), dto.RegisterRequest{
			Name: "M", Email: "m@x.com", Password: "pw", Role: "manager", ProviderID: providerID,
		})
		assert.ErrorIs(t, err, domain.ErrProviderNotFound, providerID)
	}
	assert.Zero(t, store.UserCount())
}

func TestRegister_ManagerConProveedor(t *testing.T) {
	uc, _ := newUseCase(t)
	u, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "M", Email: "m@x.com", Password: "pw", Role: "manager", ProviderID: testProvider,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, u.Role)
	assert.Equal(t, testProvider, u.ProviderID)
}

func TestRegister_DatosInvalidos(t *testing.T) {
	uc, store := newUseCase(t)
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "pw", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.UserCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConIdentidad(t *testing.T) {
	uc, _ := newUseCase(t)
	u, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "M", Email: "m@x.com", Password: "pw", Role: "manager", ProviderID: testProvider,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "m@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, out.User.ID)

	payload, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.Payload{UserID: u.ID, Email: "m@x.com", Role: "manager", ProviderID: testProvider}, *payload)
}

func TestLogin_ErrorIdenticoParaEmailYPassword(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "mal"})
	_, unknownEmail := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "mal"})

	require.Error(t, wrongPassword)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t, "Invalid credentials", wrongPassword.Error())
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newUseCase(t)
	u, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)
	store.SetUserStatus(u.ID, entity.UserInactive)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "s3cret"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestLogin_ActualizaUltimoAcceso(t *testing.T) {
	uc, store := newUseCase(t)
	u, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "s3cret"})
	require.NoError(t, err)

	stored, err := store.Users().GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, stored.LastLogin.After(u.LastLogin))
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateToken
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateToken_CausasColapsanEnInvalidToken(t *testing.T) {
	uc, store := newUseCase(t)
	u, err := uc.Register(context.Background(), claimant("a@x.com"))
	require.NoError(t, err)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "s3cret"})
	require.NoError(t, err)

	got, err := uc.ValidateToken(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.AuthenticatedUser{ID: u.ID, Email: "a@x.com", Role: entity.RoleClaimant}, *got)

	expired, err := pkgjwt.Generate(testSecret, pkgjwt.Payload{UserID: u.ID, Role: "claimant"}, testIssuer, -1)
	require.NoError(t, err)
	unknown, err := pkgjwt.Generate(testSecret, pkgjwt.Payload{UserID: "00000000-0000-0000-0000-00000000beef", Role: "claimant"}, testIssuer, 60)
	require.NoError(t, err)
	foreign, err := pkgjwt.Generate("otro-secret", pkgjwt.Payload{UserID: u.ID, Role: "claimant"}, testIssuer, 60)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformado":  "no.es.jwt",
		"expirado":    expired,
		"inexistente": unknown,
		"firma ajena": foreign,
	} {
		_, err := uc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, name)
	}

	store.SetUserStatus(u.ID, entity.UserBlocked)
	_, err = uc.ValidateToken(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "usuario no activo")
}

func TestIsClientError(t *testing.T) {
	assert.True(t, auth.IsClientError(domain.ErrDuplicateUser))
	assert.True(t, auth.IsClientError(domain.ErrInvalidCredentials))
	assert.False(t, auth.IsClientError(testutil.ErrStoreDown))
}

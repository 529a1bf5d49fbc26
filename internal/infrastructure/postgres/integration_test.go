//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
	"github.com/jhoicas/claims-api/internal/infrastructure/postgres"
	"github.com/jhoicas/claims-api/pkg/config"
)

var dbCfg config.DBConfig

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "claims_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dbCfg = config.DBConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "postgres",
		Password: "password",
		DBName:   "claims_test",
		SSLMode:  "disable",
		MaxConns: 5,
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newStore(t *testing.T) *postgres.Store {
	t.Helper()
	ctx := context.Background()
	store := postgres.NewStore(dbCfg)
	pool, err := store.Connect(ctx)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, pool))
	t.Cleanup(store.Close)
	return store
}

func TestStore_ConnectIdempotente(t *testing.T) {
	store := newStore(t)
	p1, err := store.Connect(context.Background())
	require.NoError(t, err)
	p2, err := store.Connect(context.Background())
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	pool := store.Pool()

	providerID := uuid.New().String()

	t.Run("provider_repository", func(t *testing.T) {
		pr := postgres.NewProviderRepository(pool)
		require.NoError(t, pr.Create(ctx, &entity.Provider{
			ID: providerID, Name: "Acme Salud", Email: "contacto@acme.test",
			Status: entity.ProviderActive, CreatedAt: time.Now().UTC(),
		}))

		got, err := pr.GetByID(ctx, providerID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Acme Salud", got.Name)

		missing, err := pr.GetByID(ctx, "no-es-uuid")
		require.NoError(t, err)
		assert.Nil(t, missing)

		exists, err := pr.ExistsByEmail(ctx, "contacto@acme.test")
		require.NoError(t, err)
		assert.True(t, exists)

		active, err := pr.ListActive(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, active)
	})

	t.Run("user_repository", func(t *testing.T) {
		ur := postgres.NewUserRepository(pool)
		u := &entity.User{
			ID: uuid.New().String(), Name: "Ana", Email: "ana@acme.test", Role: entity.RoleManager,
			PasswordHash: "hash", Status: entity.UserActive, LastLogin: time.Now().UTC(),
			ProviderID: providerID, CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, ur.Create(ctx, u))

		dup := *u
		dup.ID = uuid.New().String()
		assert.ErrorIs(t, ur.Create(ctx, &dup), domain.ErrDuplicateUser)

		byEmail, err := ur.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, u.ID, byEmail.ID)
		assert.Equal(t, entity.RoleManager, byEmail.Role)

		at := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)
		require.NoError(t, ur.UpdateLastLogin(ctx, u.ID, at))
		byID, err := ur.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, at.Equal(byID.LastLogin))
	})

	t.Run("claim_repository", func(t *testing.T) {
		cr := postgres.NewClaimRepository(pool)
		birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		c := &entity.Claim{
			ID: uuid.New().String(), UserID: uuid.New().String(), Benefit: "dental",
			BirthDate: &birth, ProviderID: providerID, Status: entity.ClaimPending,
			CreatedAt: time.Now().UTC(), Comments: []entity.Comment{},
		}
		require.NoError(t, cr.Create(ctx, c))

		got, err := cr.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.BirthDate)
		assert.True(t, birth.Equal(*got.BirthDate))
		assert.Nil(t, got.RoleStartDate)
		assert.Empty(t, got.Comments)

		updated, err := cr.UpdateStatus(ctx, c.ID, entity.ClaimReview)
		require.NoError(t, err)
		assert.Equal(t, entity.ClaimReview, updated.Status)

		_, err = cr.AddComment(ctx, c.ID, entity.Comment{Name: "a@x.com", Message: "uno", CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
		withComments, err := cr.AddComment(ctx, c.ID, entity.Comment{Name: "b@x.com", Message: "dos", CreatedAt: time.Now().UTC()})
		require.NoError(t, err)
		require.Len(t, withComments.Comments, 2)
		assert.Equal(t, "uno", withComments.Comments[0].Message)
		assert.Equal(t, "dos", withComments.Comments[1].Message)

		none, err := cr.UpdateStatus(ctx, uuid.New().String(), entity.ClaimApproved)
		require.NoError(t, err)
		assert.Nil(t, none)

		byProvider, err := cr.ListByProviderAndStatus(ctx, providerID, entity.ClaimReview)
		require.NoError(t, err)
		assert.Len(t, byProvider, 1)
	})

	t.Run("log_repository", func(t *testing.T) {
		lr := postgres.NewLogRepository(pool)
		userID, claimID := uuid.New().String(), uuid.New().String()
		for i := 0; i < 3; i++ {
			require.NoError(t, lr.Create(ctx, &entity.Log{
				ID: uuid.New().String(), UserID: userID, ClaimID: claimID,
				Action: fmt.Sprintf("accion %d", i), Date: time.Now().UTC(),
			}))
		}
		list, err := lr.ListByUserAndClaim(ctx, userID, claimID)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "accion 0", list[0].Action)
		assert.Equal(t, "accion 2", list[2].Action)
	})
}

func TestTxRunner_RollbackDescartaCambios(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	runner := postgres.NewTxRunner(store.Pool())
	claimID := uuid.New().String()

	err := runner.RunClaim(ctx, func(claimRepo repository.ClaimRepository, logRepo repository.LogRepository) error {
		require.NoError(t, claimRepo.Create(ctx, &entity.Claim{
			ID: claimID, UserID: uuid.New().String(), Benefit: "vision",
			Status: entity.ClaimPending, CreatedAt: time.Now().UTC(),
		}))
		return fmt.Errorf("falla forzada")
	})
	require.Error(t, err)

	got, err := postgres.NewClaimRepository(store.Pool()).GetByID(ctx, claimID)
	require.NoError(t, err)
	assert.Nil(t, got, "el reclamo no debe persistir tras rollback")
}

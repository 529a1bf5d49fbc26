package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/claims-api/internal/application/dto"
	"github.com/jhoicas/claims-api/internal/application/usecase"
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/testutil"
)

func TestProviderUseCase_SeedOmiteEmailsExistentes(t *testing.T) {
	store := testutil.NewMemoryStore()
	uc := usecase.NewProviderUseCase(store.Providers())
	ctx := context.Background()

	created, err := uc.Seed(ctx, " Acme Salud ", "contacto@acme.test", "Calle 1", "")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.Seed(ctx, "Acme otra vez", "contacto@acme.test", "", entity.ProviderActive)
	require.NoError(t, err)
	assert.False(t, created, "el email ya existe")

	_, err = uc.Seed(ctx, "Inactivo", "off@acme.test", "", entity.ProviderInactive)
	require.NoError(t, err)

	active, err := uc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Acme Salud", active[0].Name)
	assert.Equal(t, "active", active[0].Status)
}

func TestProviderUseCase_SeedValida(t *testing.T) {
	uc := usecase.NewProviderUseCase(testutil.NewMemoryStore().Providers())
	ctx := context.Background()

	_, err := uc.Seed(ctx, "", "x@x.com", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Seed(ctx, "X", "x@x.com", "", entity.ProviderStatus("archived"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProviderUseCase_ListaVaciaNoEsNil(t *testing.T) {
	uc := usecase.NewProviderUseCase(testutil.NewMemoryStore().Providers())
	list, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestLogUseCase_Filtros(t *testing.T) {
	store := testutil.NewMemoryStore()
	logs := store.Logs()
	ctx := context.Background()
	now := time.Now().UTC()
	for _, l := range []entity.Log{
		{ID: "1", UserID: "u1", ClaimID: "c1", Action: "Created new claim", Date: now},
		{ID: "2", UserID: "u2", ClaimID: "c1", Action: "Added comment: hola", Date: now.Add(time.Second)},
		{ID: "3", UserID: "u1", ClaimID: "c2", Action: "Created new claim", Date: now.Add(2 * time.Second)},
	} {
		l := l
		require.NoError(t, logs.Create(ctx, &l))
	}
	uc := usecase.NewLogUseCase(logs)
	u1 := entity.AuthenticatedUser{ID: "u1", Role: entity.RoleClaimant}

	own, err := uc.List(ctx, u1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(own))

	byClaim, err := uc.List(ctx, u1, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(byClaim), "con claimId se devuelven los de todos los usuarios")

	claimLogs, err := uc.ListByClaim(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, claimLogs, 2)

	mine, err := uc.ListByUserAndClaim(ctx, u1, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(mine))

	none, err := uc.ListByClaim(ctx, "c9")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func ids(list []dto.LogResponse) []string {
	out := make([]string, 0, len(list))
	for _, l := range list {
		out = append(out, l.ID)
	}
	return out
}

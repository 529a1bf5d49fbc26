package claim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/claim"
	"github.com/jhoicas/claims-api/internal/domain/entity"
)

func TestCheckTransition_Reclamante(t *testing.T) {
	cases := []struct {
		from    entity.ClaimStatus
		allowed bool
	}{
		{entity.ClaimPending, true},
		{entity.ClaimRejected, true},
		{entity.ClaimSubmitted, false},
		{entity.ClaimReview, false},
		{entity.ClaimApproved, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from), func(t *testing.T) {
			for _, to := range entity.ClaimStatuses {
				err := claim.CheckTransition(entity.RoleClaimant, tc.from, to)
				if tc.allowed {
					assert.NoError(t, err, "%s -> %s", tc.from, to)
				} else {
					assert.ErrorIs(t, err, domain.ErrClaimLocked, "%s -> %s", tc.from, to)
				}
			}
		})
	}
}

func TestCheckTransition_ManagerSinRestricciones(t *testing.T) {
	for _, from := range entity.ClaimStatuses {
		for _, to := range entity.ClaimStatuses {
			assert.NoError(t, claim.CheckTransition(entity.RoleManager, from, to), "%s -> %s", from, to)
		}
	}
}

func TestCheckTransition_RolDesconocido(t *testing.T) {
	err := claim.CheckTransition(entity.Role("admin"), entity.ClaimPending, entity.ClaimApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCanAccess(t *testing.T) {
	c := &entity.Claim{UserID: "u1", ProviderID: "p1"}

	assert.True(t, claim.CanAccess(entity.AuthenticatedUser{ID: "u1", Role: entity.RoleClaimant}, c))
	assert.False(t, claim.CanAccess(entity.AuthenticatedUser{ID: "u2", Role: entity.RoleClaimant}, c))
	assert.True(t, claim.CanAccess(entity.AuthenticatedUser{ID: "m1", Role: entity.RoleManager, ProviderID: "p1"}, c))
	assert.False(t, claim.CanAccess(entity.AuthenticatedUser{ID: "m1", Role: entity.RoleManager, ProviderID: "p2"}, c))
	assert.False(t, claim.CanAccess(entity.AuthenticatedUser{ID: "m1", Role: entity.RoleManager}, &entity.Claim{}))
	assert.False(t, claim.CanAccess(entity.AuthenticatedUser{ID: "u1", Role: entity.RoleClaimant}, nil))
}

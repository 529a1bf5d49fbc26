// Package claim concentra las reglas de acceso y transición de estado de los reclamos.
// Es el único punto que decide quién puede mover un reclamo y desde qué estado.
package claim

import (
	"github.com/jhoicas/claims-api/internal/domain"
	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// claimantSourceStates estados desde los que un reclamante todavía puede actuar.
var claimantSourceStates = map[entity.ClaimStatus]bool{
	entity.ClaimPending:  true,
	entity.ClaimRejected: true,
}

// CheckTransition decide si el rol puede mover un reclamo de from a to.
// Los managers pueden ir de cualquier estado a cualquier otro y el destino no se restringe:
// no hay matriz de adyacencia. Endurecer la máquina de estados se hace aquí.
func CheckTransition(role entity.Role, from, to entity.ClaimStatus) error {
	switch role {
	case entity.RoleManager:
		return nil
	case entity.RoleClaimant:
		if claimantSourceStates[from] {
			return nil
		}
		return domain.ErrClaimLocked
	default:
		return domain.ErrForbidden
	}
}

// CanAccess informa si el usuario puede ver o actuar sobre el reclamo:
// el reclamante solo los propios, el manager solo los de su proveedor.
func CanAccess(u entity.AuthenticatedUser, c *entity.Claim) bool {
	if c == nil {
		return false
	}
	switch u.Role {
	case entity.RoleManager:
		return u.ProviderID != "" && c.ProviderID == u.ProviderID
	case entity.RoleClaimant:
		return c.UserID == u.ID
	default:
		return false
	}
}

package entity

import "time"

// ClaimStatus estado del ciclo de vida de un reclamo.
type ClaimStatus string

const (
	ClaimPending   ClaimStatus = "pending"
	ClaimSubmitted ClaimStatus = "submitted"
	ClaimReview    ClaimStatus = "review"
	ClaimApproved  ClaimStatus = "approved"
	ClaimRejected  ClaimStatus = "rejected"
)

// ClaimStatuses lista ordenada de estados válidos.
var ClaimStatuses = []ClaimStatus{ClaimPending, ClaimSubmitted, ClaimReview, ClaimApproved, ClaimRejected}

// Valid informa si el estado pertenece al enum.
func (s ClaimStatus) Valid() bool {
	for _, v := range ClaimStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Claim solicitud de beneficio presentada por un reclamante.
type Claim struct {
	ID              string
	UserID          string
	Benefit         string
	FullName        string
	BirthDate       *time.Time
	Gender          string
	PhoneNumber     string
	WorkPhoneNumber string
	Dependants      bool
	RoleStartDate   *time.Time
	ProviderID      string
	Status          ClaimStatus
	CreatedAt       time.Time
	Comments        []Comment // orden de inserción, solo append
	IsDeleted       bool
}

// Comment nota inmutable sobre un reclamo. Name es el email del autor.
type Comment struct {
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

package dto

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// CreateClaimRequest datos del reclamante; userId, status, createdAt y comments los fija el servidor.
type CreateClaimRequest struct {
	Benefit         string `json:"benefit"`
	FullName        string `json:"fullName"`
	BirthDate       *Date  `json:"birthDate"`
	Gender          string `json:"gender"`
	PhoneNumber     string `json:"phoneNumber"`
	WorkPhoneNumber string `json:"workPhoneNumber"`
	Dependants      bool   `json:"dependants"`
	RoleStartDate   *Date  `json:"roleStartDate"`
	ProviderID      string `json:"providerId"`
}

// Validate exige el beneficio solicitado.
func (r CreateClaimRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Benefit, validation.Required),
	); err != nil {
		return &ValidationError{Message: "Invalid claim", Detail: "benefit is required"}
	}
	return nil
}

// UpdateClaimStatusRequest nuevo estado del reclamo.
type UpdateClaimStatusRequest struct {
	Status string `json:"status"`
}

// Validate exige un estado del enum.
func (r UpdateClaimStatusRequest) Validate() error {
	allowed := make([]interface{}, 0, len(entity.ClaimStatuses))
	names := make([]string, 0, len(entity.ClaimStatuses))
	for _, s := range entity.ClaimStatuses {
		allowed = append(allowed, string(s))
		names = append(names, string(s))
	}
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(allowed...)),
	); err != nil {
		return &ValidationError{Message: "Invalid status", Detail: "status must be one of " + strings.Join(names, ", ")}
	}
	return nil
}

// AddCommentRequest texto del comentario.
type AddCommentRequest struct {
	Message string `json:"message"`
}

// Validate exige un mensaje no vacío.
func (r AddCommentRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required),
	); err != nil {
		return &ValidationError{Message: "Invalid comment", Detail: "message is required"}
	}
	return nil
}

// CommentResponse salida de un comentario.
type CommentResponse struct {
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClaimResponse salida de un reclamo.
type ClaimResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Benefit         string            `json:"benefit"`
	FullName        string            `json:"fullName"`
	BirthDate       *time.Time        `json:"birthDate,omitempty"`
	Gender          string            `json:"gender"`
	PhoneNumber     string            `json:"phoneNumber"`
	WorkPhoneNumber string            `json:"workPhoneNumber"`
	Dependants      bool              `json:"dependants"`
	RoleStartDate   *time.Time        `json:"roleStartDate,omitempty"`
	ProviderID      string            `json:"providerId"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	Comments        []CommentResponse `json:"comments"`
	IsDeleted       bool              `json:"isDeleted"`
}

// NewClaimResponse convierte la entidad en su salida JSON.
func NewClaimResponse(c *entity.Claim) *ClaimResponse {
	if c == nil {
		return nil
	}
	comments := make([]CommentResponse, 0, len(c.Comments))
	for _, cm := range c.Comments {
		comments = append(comments, CommentResponse{Name: cm.Name, Message: cm.Message, CreatedAt: cm.CreatedAt})
	}
	return &ClaimResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		Benefit:         c.Benefit,
		FullName:        c.FullName,
		BirthDate:       c.BirthDate,
		Gender:          c.Gender,
		PhoneNumber:     c.PhoneNumber,
		WorkPhoneNumber: c.WorkPhoneNumber,
		Dependants:      c.Dependants,
		RoleStartDate:   c.RoleStartDate,
		ProviderID:      c.ProviderID,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		Comments:        comments,
		IsDeleted:       c.IsDeleted,
	}
}

// NewClaimResponses convierte una lista, nunca devuelve nil.
func NewClaimResponses(list []*entity.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *NewClaimResponse(c))
	}
	return out
}

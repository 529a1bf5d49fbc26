package dto

import (
	"time"

	"github.com/jhoicas/claims-api/internal/domain/entity"
)

// LogResponse salida de un registro de auditoría.
type LogResponse struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	ClaimID string    `json:"claimId"`
	Action  string    `json:"action"`
	Date    time.Time `json:"date"`
}

// NewLogResponses convierte una lista, nunca devuelve nil.
func NewLogResponses(list []*entity.Log) []LogResponse {
	out := make([]LogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, LogResponse{ID: l.ID, UserID: l.UserID, ClaimID: l.ClaimID, Action: l.Action, Date: l.Date})
	}
	return out
}

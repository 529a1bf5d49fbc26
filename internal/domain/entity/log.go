package entity

import "time"

// Log registro de auditoría de una acción sobre un reclamo. Nunca se actualiza ni se borra.
type Log struct {
	ID      string
	UserID  string
	ClaimID string
	Action  string
	Date    time.Time
}

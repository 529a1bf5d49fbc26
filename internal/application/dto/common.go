package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// APIResponse sobre uniforme de todas las respuestas JSON.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ValidationError error de validación con el par message/error que se devuelve al cliente.
type ValidationError struct {
	Message string
	Detail  string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// dateLayout formato corto aceptado para fechas de nacimiento e inicio de rol.
const dateLayout = "2006-01-02"

// Date fecha que acepta "YYYY-MM-DD" o RFC 3339 en JSON.
type Date struct {
	time.Time
}

// UnmarshalJSON admite null, cadena vacía, fecha corta o RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date: se esperaba una cadena: %w", err)
	}
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("date: formato inválido %q (use YYYY-MM-DD o RFC 3339)", raw)
	}
	d.Time = t
	return nil
}

// Ptr devuelve la fecha como *time.Time (nil si no se informó).
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

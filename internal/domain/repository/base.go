package repository

import "context"

// Reader puerto genérico de lectura por ID. Devuelve (nil, nil) si no existe.
type Reader[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
}

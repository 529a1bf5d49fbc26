package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// table acceso genérico de lectura a una tabla. Cada repo lo compone con su lista de columnas y su scan.
type table[T any] struct {
	q       Querier
	name    string
	columns string
	scan    func(row pgx.Row) (*T, error)
}

// findOne devuelve la primera fila que cumple where, o (nil, nil) si no hay ninguna.
func (t table[T]) findOne(ctx context.Context, where string, args ...any) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, t.columns, t.name, where)
	item, err := t.scan(t.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.name, err)
	}
	return item, nil
}

// find devuelve todas las filas que cumplen where en orden de inserción.
func (t table[T]) find(ctx context.Context, where string, args ...any) ([]*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY seq`, t.columns, t.name, where)
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// findByID busca por clave primaria. Un id que no es UUID no puede existir: (nil, nil).
func (t table[T]) findByID(ctx context.Context, id string, extra string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	where := "id = $1"
	if extra != "" {
		where += " AND " + extra
	}
	return t.findOne(ctx, where, id)
}

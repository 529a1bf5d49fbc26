package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/claims-api/internal/domain/entity"
	"github.com/jhoicas/claims-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

const logColumns = `id, user_id, claim_id, action, date`

// LogRepo journal append-only sobre PostgreSQL. No expone update ni delete.
type LogRepo struct {
	q    Querier
	logs table[entity.Log]
}

// NewLogRepository construye el adaptador del journal.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{
		q:    q,
		logs: table[entity.Log]{q: q, name: "logs", columns: logColumns, scan: scanLog},
	}
}

func scanLog(row pgx.Row) (*entity.Log, error) {
	var l entity.Log
	if err := row.Scan(&l.ID, &l.UserID, &l.ClaimID, &l.Action, &l.Date); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create agrega una entrada al journal.
func (r *LogRepo) Create(ctx context.Context, l *entity.Log) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO logs (`+logColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.UserID, l.ClaimID, l.Action, l.Date,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (r *LogRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Log, error) {
	return r.logs.find(ctx, "user_id = $1", userID)
}

func (r *LogRepo) ListByClaim(ctx context.Context, claimID string) ([]*entity.Log, error) {
	return r.logs.find(ctx, "claim_id = $1", claimID)
}

func (r *LogRepo) ListByUserAndClaim(ctx context.Context, userID, claimID string) ([]*entity.Log, error) {
	return r.logs.find(ctx, "user_id = $1 AND claim_id = $2", userID, claimID)
}

package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/claims-api/pkg/config"
)

// Store handle explícito sobre el pool de PostgreSQL. Se construye con NewStore y se conecta con Connect.
type Store struct {
	cfg config.DBConfig

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewStore crea el handle sin abrir conexiones.
func NewStore(cfg config.DBConfig) *Store {
	return &Store{cfg: cfg}
}

// Connect abre el pool y verifica con Ping. Llamadas concurrentes o repetidas devuelven el mismo pool;
// si un intento falla, el siguiente vuelve a intentar.
func (s *Store) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		return s.pool, nil
	}

	poolConfig, err := pgxpool.ParseConfig(s.cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if s.cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(s.cfg.MaxConns)
	}
	if s.cfg.MinConns > 0 {
		poolConfig.MinConns = int32(s.cfg.MinConns)
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	s.pool = pool
	return pool, nil
}

// Pool devuelve el pool conectado o nil si Connect aún no tuvo éxito.
func (s *Store) Pool() *pgxpool.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool
}

// Close cierra el pool. Tras Close, Connect puede volver a abrirlo.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

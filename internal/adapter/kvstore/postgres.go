package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implementa a interface Store usando PostgreSQL. Os
// documentos são gravados como JSONB na tabela store_documents.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore cria uma nova instância de PostgresStore
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
	}
}

// Get implementa Store.Get
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	var value []byte
	err = conn.QueryRow(ctx, "SELECT value FROM store_documents WHERE key = $1", key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("falha ao buscar documento: %w", err)
	}

	return value, true, nil
}

// Set implementa Store.Set
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	query := `
		INSERT INTO store_documents (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err = conn.Exec(ctx, query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("falha ao gravar documento: %w", err)
	}

	return nil
}

// Delete implementa Store.Delete
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("falha ao obter conexão: %w", err)
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "DELETE FROM store_documents WHERE key = $1", key)
	if err != nil {
		return fmt.Errorf("falha ao excluir documento: %w", err)
	}

	return nil
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
)

// Garante que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementação do porto SessionRepository sobre PostgreSQL.
// Cada sessão é uma linha chave-valor: id + blob JSONB com o estado inteiro.
//
// Esquema esperado:
//
//	CREATE TABLE IF NOT EXISTS sessions (
//	    id         TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository constrói o adaptador de persistência de sessões.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Get devolve a sessão por ID, ou nil quando não existe.
func (r *SessionRepo) Get(ctx context.Context, id string) (*entity.Session, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM sessions WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Put cria ou substitui a sessão inteira (upsert do blob).
func (r *SessionRepo) Put(ctx context.Context, sess *entity.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	query := `
		INSERT INTO sessions (id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(ctx, query, sess.ID, data, sess.CreatedAt, sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Delete remove a sessão; inexistente não é erro.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

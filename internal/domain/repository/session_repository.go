package repository

import (
	"context"

	"github.com/techtitans/estoque-front/internal/domain/entity"
)

// SessionRepository define o porto de persistência chave-valor das sessões (DIP).
// As implementações vivem em infrastructure (PostgreSQL e memória).
type SessionRepository interface {
	// Get devolve a sessão por ID, ou nil quando não existe.
	Get(ctx context.Context, id string) (*entity.Session, error)
	// Put cria ou substitui a sessão inteira (o estado é um blob JSON único).
	Put(ctx context.Context, session *entity.Session) error
	// Delete remove a sessão; inexistente não é erro (logout idempotente).
	Delete(ctx context.Context, id string) error
}

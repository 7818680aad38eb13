// Package memory guarda sessões em memória, para desenvolvimento sem banco e
// para os testes. Mesmo contrato do adaptador PostgreSQL.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
)

// Garante que SessionRepo implementa repository.SessionRepository.
var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo store de sessões em memória. As entradas são serializadas em
// JSON para que leituras devolvam cópias, como no adaptador de banco.
type SessionRepo struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewSessionRepository constrói o store vazio.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{items: make(map[string][]byte)}
}

// Get devolve a sessão por ID, ou nil quando não existe.
func (r *SessionRepo) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	data, found := r.items[id]
	r.mu.RUnlock()
	if !found {
		return nil, nil
	}
	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// Put cria ou substitui a sessão inteira.
func (r *SessionRepo) Put(_ context.Context, sess *entity.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	r.mu.Lock()
	r.items[sess.ID] = data
	r.mu.Unlock()
	return nil
}

// Delete remove a sessão; inexistente não é erro.
func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
	return nil
}

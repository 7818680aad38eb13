package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrCompanyLimit       = errors.New("máximo de 3 empresas permitidas")
	ErrLastCompany        = errors.New("não é possível excluir a última empresa")
	ErrNoSelectedCompany  = errors.New("nenhuma empresa selecionada")
	ErrBackendUnavailable = errors.New("erro de conexão com o backend")
)

// BackendError representa uma rejeição explícita do backend (HTTP não-2xx com message).
// Distinto de ErrBackendUnavailable, que cobre falhas de transporte.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.StatusCode, e.Message)
}

// AsBackendError devolve o BackendError embrulhado em err, se houver.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/ports"
	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
	"github.com/techtitans/estoque-front/internal/domain/validate"
)

// AuthUseCase casos de uso de autenticação: login cria a sessão, logout a destrói.
type AuthUseCase struct {
	backend  ports.Authenticator
	sessions repository.SessionRepository
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(backend ports.Authenticator, sessions repository.SessionRepository) *AuthUseCase {
	return &AuthUseCase{backend: backend, sessions: sessions}
}

// Login autentica no backend e cria a sessão server-side. O CPF é enviado só
// com dígitos; a validação de campo acontece antes, no handler.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, *dto.LoginResponse, error) {
	user, err := uc.backend.Login(ctx, validate.DigitsOnly(in.CPF), in.Password)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	sess := &entity.Session{
		ID:                   uuid.New().String(),
		User:                 user,
		SelectedCompanyIndex: -1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.sessions.Put(ctx, sess); err != nil {
		return nil, nil, err
	}

	return sess, &dto.LoginResponse{
		Message:  "Login realizado com sucesso",
		User:     toUserResponse(user),
		Redirect: redirectFor(user),
	}, nil
}

// Logout apaga a sessão inteira: user, selectedCompany, selectedCompanyIndex e
// companies somem como um conjunto atômico.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// redirectFor decide o destino pós-login pelo tipo de usuário; tipo
// desconhecido cai no dashboard completo, como o front original.
func redirectFor(user *entity.User) string {
	if user.IsFuncionario() {
		return resolver.TargetEmployeeDashboard
	}
	return resolver.TargetDashboard
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		CPF:       u.CPF,
		Name:      u.Name,
		UserType:  u.UserType,
		CompanyID: u.CompanyID,
	}
}

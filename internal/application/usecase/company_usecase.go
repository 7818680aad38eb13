package usecase

import (
	"context"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
)

// CompanyUseCase aplica as regras da lista de empresas do chefe (máx. 3, mín. 1)
// e grava cada mutação de volta no store de sessões.
type CompanyUseCase struct {
	sessions repository.SessionRepository
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência de sessões.
func NewCompanyUseCase(sessions repository.SessionRepository) *CompanyUseCase {
	return &CompanyUseCase{sessions: sessions}
}

// Dashboard devolve a lista de empresas, semeando a padrão na primeira carga.
func (uc *CompanyUseCase) Dashboard(ctx context.Context, sess *entity.Session) (*dto.DashboardResponse, error) {
	before := len(sess.Companies)
	sess.EnsureCompanies()
	if len(sess.Companies) != before {
		if err := uc.save(ctx, sess); err != nil {
			return nil, err
		}
	}
	return uc.toDashboard(sess), nil
}

// Add acrescenta uma empresa. Com 3 empresas devolve domain.ErrCompanyLimit e
// a lista permanece intacta.
func (uc *CompanyUseCase) Add(ctx context.Context, sess *entity.Session) (*dto.DashboardResponse, error) {
	if _, err := sess.AddCompany(); err != nil {
		return nil, err
	}
	if err := uc.save(ctx, sess); err != nil {
		return nil, err
	}
	return uc.toDashboard(sess), nil
}

// Rename renomeia a empresa na posição index (nome já validado no handler).
func (uc *CompanyUseCase) Rename(ctx context.Context, sess *entity.Session, index int, name string) (*dto.DashboardResponse, error) {
	if err := sess.RenameCompany(index, name); err != nil {
		return nil, err
	}
	if err := uc.save(ctx, sess); err != nil {
		return nil, err
	}
	return uc.toDashboard(sess), nil
}

// Delete remove a empresa na posição index e devolve o nome removido para a
// mensagem de confirmação. A última empresa nunca é removida (domain.ErrLastCompany).
func (uc *CompanyUseCase) Delete(ctx context.Context, sess *entity.Session, index int) (string, *dto.DashboardResponse, error) {
	var removed string
	if index >= 0 && index < len(sess.Companies) {
		removed = sess.Companies[index].Name
	}
	if err := sess.DeleteCompany(index); err != nil {
		return "", nil, err
	}
	if err := uc.save(ctx, sess); err != nil {
		return "", nil, err
	}
	return removed, uc.toDashboard(sess), nil
}

// Select grava a empresa na posição index como selecionada.
func (uc *CompanyUseCase) Select(ctx context.Context, sess *entity.Session, index int) (*dto.SelectCompanyResponse, error) {
	c, err := sess.SelectCompany(index)
	if err != nil {
		return nil, err
	}
	if err := uc.save(ctx, sess); err != nil {
		return nil, err
	}
	return &dto.SelectCompanyResponse{
		Selected: dto.CompanyResponse{ID: c.ID, Name: c.Name},
		Index:    index,
	}, nil
}

func (uc *CompanyUseCase) save(ctx context.Context, sess *entity.Session) error {
	sess.Touch()
	return uc.sessions.Put(ctx, sess)
}

func (uc *CompanyUseCase) toDashboard(sess *entity.Session) *dto.DashboardResponse {
	items := make([]dto.CompanyResponse, 0, len(sess.Companies))
	for _, c := range sess.Companies {
		items = append(items, dto.CompanyResponse{ID: c.ID, Name: c.Name})
	}
	return &dto.DashboardResponse{
		Companies: items,
		CanAdd:    len(sess.Companies) < entity.MaxCompanies,
	}
}

package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/entity"
)

// fakeCompanyFetcher simula o porto de consulta de empresas do backend.
type fakeCompanyFetcher struct {
	companies map[string]entity.Company
	err       error
	calls     int
}

func (f *fakeCompanyFetcher) FetchCompany(_ context.Context, id string) (*entity.Company, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.companies[id]; ok {
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

func chefeSession() *entity.Session {
	return &entity.Session{
		ID:                   "s1",
		User:                 &entity.User{CPF: "11122233344", UserType: entity.UserTypeChefe},
		Companies:            []entity.Company{{ID: "1", Name: "Empresa 1"}},
		SelectedCompanyIndex: -1,
	}
}

func funcionarioSession(companyID string) *entity.Session {
	return &entity.Session{
		ID:                   "s2",
		User:                 &entity.User{CPF: "55566677788", UserType: entity.UserTypeFuncionario, CompanyID: companyID},
		SelectedCompanyIndex: -1,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sem usuário → login
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SemSessaoVaiParaLogin(t *testing.T) {
	r := resolver.New(&fakeCompanyFetcher{}, nil)

	for _, sess := range []*entity.Session{nil, {ID: "vazia"}} {
		res := r.Resolve(context.Background(), sess, resolver.Requirements{RequireCompany: true})
		assert.Equal(t, resolver.StateRedirecting, res.State)
		assert.Equal(t, resolver.TargetLogin, res.Target)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipo de usuário errado → dashboard do próprio tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_FuncionarioEmPaginaDeChefe(t *testing.T) {
	r := resolver.New(&fakeCompanyFetcher{}, nil)
	res := r.Resolve(context.Background(), funcionarioSession("7"), resolver.Requirements{
		RequireUserType: entity.UserTypeChefe,
	})
	assert.Equal(t, resolver.StateRedirecting, res.State)
	assert.Equal(t, resolver.TargetEmployeeDashboard, res.Target)
}

func TestResolve_ChefeEmPaginaDeFuncionario(t *testing.T) {
	r := resolver.New(&fakeCompanyFetcher{}, nil)
	res := r.Resolve(context.Background(), chefeSession(), resolver.Requirements{
		RequireUserType: entity.UserTypeFuncionario,
	})
	assert.Equal(t, resolver.StateRedirecting, res.State)
	assert.Equal(t, resolver.TargetDashboard, res.Target)
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresa já selecionada → resolve sem rede
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_EmpresaJaSelecionadaNaoConsultaBackend(t *testing.T) {
	fetcher := &fakeCompanyFetcher{}
	r := resolver.New(fetcher, nil)

	sess := chefeSession()
	sess.SelectedCompany = &entity.Company{ID: "1", Name: "Empresa 1"}
	sess.SelectedCompanyIndex = 0

	res := r.Resolve(context.Background(), sess, resolver.Requirements{RequireCompany: true})
	require.Equal(t, resolver.StateResolved, res.State)
	require.NotNil(t, res.SelectedCompany)
	assert.Equal(t, "Empresa 1", res.SelectedCompany.Name)
	assert.False(t, res.SessionDirty)
	assert.Zero(t, fetcher.calls, "com empresa na sessão não há consulta à rede")
}

// ──────────────────────────────────────────────────────────────────────────────
// Funcionário: deriva a empresa do próprio cadastro
// ──────────────────────────────────────────────────────────────────────────────

// Empresa presente na lista da sessão: nem chega a consultar o backend.
func TestResolve_FuncionarioEncontraNaSessao(t *testing.T) {
	fetcher := &fakeCompanyFetcher{}
	r := resolver.New(fetcher, nil)

	sess := funcionarioSession("3")
	sess.Companies = []entity.Company{{ID: "3", Name: "Filial Sul"}}

	res := r.Resolve(context.Background(), sess, resolver.Requirements{})
	require.Equal(t, resolver.StateResolved, res.State)
	require.NotNil(t, res.SelectedCompany)
	assert.Equal(t, "Filial Sul", res.SelectedCompany.Name)
	assert.True(t, res.SessionDirty, "a empresa derivada deve ser persistida")
	assert.Zero(t, fetcher.calls)
}

func TestResolve_FuncionarioConsultaBackend(t *testing.T) {
	fetcher := &fakeCompanyFetcher{companies: map[string]entity.Company{
		"7": {ID: "7", Name: "Acme"},
	}}
	r := resolver.New(fetcher, nil)

	res := r.Resolve(context.Background(), funcionarioSession("7"), resolver.Requirements{})
	require.Equal(t, resolver.StateResolved, res.State)
	require.NotNil(t, res.SelectedCompany)
	assert.Equal(t, entity.Company{ID: "7", Name: "Acme"}, *res.SelectedCompany)
	assert.True(t, res.SessionDirty)
}

// Backend fora do ar: a página nunca bloqueia, entra o placeholder sintético.
func TestResolve_FuncionarioDegradadoParaPlaceholder(t *testing.T) {
	fetcher := &fakeCompanyFetcher{err: domain.ErrBackendUnavailable}
	r := resolver.New(fetcher, nil)

	sess := funcionarioSession("7")
	res := r.Resolve(context.Background(), sess, resolver.Requirements{})
	require.Equal(t, resolver.StateResolved, res.State)
	require.NotNil(t, res.SelectedCompany)
	assert.Equal(t, "Empresa 7", res.SelectedCompany.Name)
	assert.True(t, res.SessionDirty)

	// A empresa derivada ficou gravada na sessão para as próximas cargas.
	require.NotNil(t, sess.SelectedCompany)
	assert.Equal(t, "Empresa 7", sess.SelectedCompany.Name)
	assert.Equal(t, -1, sess.SelectedCompanyIndex)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chefe sem seleção
// ──────────────────────────────────────────────────────────────────────────────

// Página que exige empresa: chefe ainda não escolheu no dashboard → volta.
func TestResolve_ChefeSemSelecaoRedirecionaParaDashboard(t *testing.T) {
	r := resolver.New(&fakeCompanyFetcher{}, nil)
	res := r.Resolve(context.Background(), chefeSession(), resolver.Requirements{RequireCompany: true})
	assert.Equal(t, resolver.StateRedirecting, res.State)
	assert.Equal(t, resolver.TargetDashboard, res.Target)
}

// Página que não exige empresa (o próprio dashboard): resolve sem seleção.
func TestResolve_ChefeSemSelecaoNoDashboard(t *testing.T) {
	r := resolver.New(&fakeCompanyFetcher{}, nil)
	res := r.Resolve(context.Background(), chefeSession(), resolver.Requirements{
		RequireUserType: entity.UserTypeChefe,
	})
	assert.Equal(t, resolver.StateResolved, res.State)
	assert.Nil(t, res.SelectedCompany)
	assert.False(t, res.SessionDirty)
}

// Resolução repetida é idempotente: a segunda carga usa a empresa gravada.
func TestResolve_SegundaCargaUsaEmpresaGravada(t *testing.T) {
	fetcher := &fakeCompanyFetcher{companies: map[string]entity.Company{
		"7": {ID: "7", Name: "Acme"},
	}}
	r := resolver.New(fetcher, nil)
	sess := funcionarioSession("7")

	first := r.Resolve(context.Background(), sess, resolver.Requirements{})
	require.Equal(t, resolver.StateResolved, first.State)
	require.Equal(t, 1, fetcher.calls)

	second := r.Resolve(context.Background(), sess, resolver.Requirements{})
	require.Equal(t, resolver.StateResolved, second.State)
	assert.Equal(t, 1, fetcher.calls, "segunda carga não consulta o backend")
	assert.False(t, second.SessionDirty)
}

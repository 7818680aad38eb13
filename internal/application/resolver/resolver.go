// Package resolver implementa a resolução de contexto usuário+empresa que roda
// em toda carga de página protegida: quem é o usuário, qual empresa está em
// foco e para onde redirecionar quando o contexto é inválido para a página.
// A máquina de estados é explícita e testável sem HTTP.
package resolver

import (
	"context"

	"github.com/techtitans/estoque-front/internal/application/ports"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/pkg/logger"
)

// State estado da resolução de contexto.
type State int

const (
	StateNoUser State = iota
	StateUserNoCompany
	StateUserWithCompany
	StateResolving
	StateResolved
	StateRedirecting
)

func (s State) String() string {
	switch s {
	case StateNoUser:
		return "NO_USER"
	case StateUserNoCompany:
		return "USER_NO_COMPANY"
	case StateUserWithCompany:
		return "USER_WITH_COMPANY"
	case StateResolving:
		return "RESOLVING"
	case StateResolved:
		return "RESOLVED"
	case StateRedirecting:
		return "REDIRECTING"
	default:
		return "UNKNOWN"
	}
}

// Destinos de redirecionamento das páginas.
const (
	TargetLogin             = "/"
	TargetDashboard         = "/dashboard"
	TargetEmployeeDashboard = "/employee-dashboard"
)

// Requirements declara o que a página exige do contexto.
type Requirements struct {
	// RequireCompany: a página precisa de empresa selecionada (todas menos
	// login e os dois dashboards).
	RequireCompany bool
	// RequireUserType restringe a página a um tipo de usuário ("" = qualquer).
	RequireUserType string
}

// Resolution resultado terminal da resolução: RESOLVED ou REDIRECTING.
type Resolution struct {
	State           State
	Target          string           // destino quando State == StateRedirecting
	SelectedCompany *entity.Company  // não-nil quando a página exigia empresa
	SessionDirty    bool             // a resolução gravou empresa na sessão; persistir
}

// Resolver executa a transição de estados por carga de página.
type Resolver struct {
	companies ports.CompanyFetcher
	log       *logger.Logger
}

// New constrói o resolver com o porto de consulta de empresas.
func New(companies ports.CompanyFetcher, log *logger.Logger) *Resolver {
	return &Resolver{companies: companies, log: log}
}

// Resolve roda a máquina de estados sobre a sessão para os requisitos da página.
// Sempre termina em RESOLVED ou REDIRECTING; nunca bloqueia a página por
// indisponibilidade do backend (degradação para placeholder).
func (r *Resolver) Resolve(ctx context.Context, sess *entity.Session, req Requirements) Resolution {
	// 1. Sem usuário: volta para o login. Terminal.
	if sess == nil || sess.User == nil {
		return Resolution{State: StateRedirecting, Target: TargetLogin}
	}
	user := sess.User

	// 2. Página restrita a um tipo de usuário: o tipo errado vai para o seu
	// próprio dashboard (comportamento dos dois dashboards originais).
	if req.RequireUserType != "" && user.UserType != req.RequireUserType {
		target := TargetDashboard
		if user.IsFuncionario() {
			target = TargetEmployeeDashboard
		}
		return Resolution{State: StateRedirecting, Target: target}
	}

	// 3. Empresa já selecionada: resolvido de imediato, sem rede.
	if sess.SelectedCompany != nil {
		c := *sess.SelectedCompany
		r.logState(StateUserWithCompany, StateResolved, user)
		return Resolution{State: StateResolved, SelectedCompany: &c}
	}

	// 4. Funcionário sem empresa selecionada: sempre re-derivável de CompanyID.
	if user.IsFuncionario() {
		company := r.resolveFuncionario(ctx, sess)
		sess.SetSelectedCompany(company)
		r.logState(StateResolving, StateResolved, user)
		return Resolution{State: StateResolved, SelectedCompany: sess.SelectedCompany, SessionDirty: true}
	}

	// 5. Chefe sem empresa selecionada: em página que exige empresa, ainda não
	// escolheu no dashboard. Terminal.
	if req.RequireCompany {
		r.logState(StateUserNoCompany, StateRedirecting, user)
		return Resolution{State: StateRedirecting, Target: TargetDashboard}
	}

	return Resolution{State: StateResolved}
}

// resolveFuncionario deriva a empresa do funcionário: primeiro na lista da
// sessão, depois no backend; em falha sintetiza o placeholder.
func (r *Resolver) resolveFuncionario(ctx context.Context, sess *entity.Session) entity.Company {
	id := sess.User.CompanyID

	for _, c := range sess.Companies {
		if c.ID == id {
			return c
		}
	}

	company, err := r.companies.FetchCompany(ctx, id)
	if err != nil || company == nil {
		// Degradação deliberada: a tela nunca bloqueia por backend fora do ar,
		// só perde o nome real da empresa. Próxima carga tenta de novo.
		if r.log != nil {
			r.log.Debug().Str("company_id", id).Msg("resolução de empresa caiu no placeholder")
		}
		return entity.PlaceholderCompany(id)
	}
	return *company
}

func (r *Resolver) logState(from, to State, user *entity.User) {
	if r.log == nil {
		return
	}
	r.log.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("user_type", user.UserType).
		Msg("transição do resolver de contexto")
}

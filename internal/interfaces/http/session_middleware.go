package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
	"github.com/techtitans/estoque-front/pkg/token"
)

// Locals keys para a sessão e a empresa em foco no Fiber.
const (
	LocalSession = "session"
	LocalCompany = "selected_company"
)

// SessionConfig parâmetros do cookie de sessão assinado.
type SessionConfig struct {
	Secret     string
	CookieName string
	ExpMinutes int
}

// SessionLoader lê o cookie assinado, carrega a sessão do store e a deixa em
// c.Locals. Ausência ou token inválido não interrompem: o guard decide o redirect.
func SessionLoader(cfg SessionConfig, sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cfg.CookieName)
		if raw == "" {
			return c.Next()
		}
		sessionID, err := token.Parse(cfg.Secret, raw)
		if err != nil {
			return c.Next()
		}
		sess, err := sessions.Get(c.UserContext(), sessionID)
		if err != nil || sess == nil {
			return c.Next()
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// Guard roda o Context Resolver antes do handler da página: decide quem é o
// usuário, qual empresa vale e para onde redirecionar quando o contexto não
// serve. Sempre completa antes do fetch de dados da própria tela.
func Guard(r *resolver.Resolver, sessions repository.SessionRepository, req resolver.Requirements) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		res := r.Resolve(c.UserContext(), sess, req)

		if res.State == resolver.StateRedirecting {
			return c.Redirect(res.Target, fiber.StatusFound)
		}

		if res.SessionDirty && sess != nil {
			// A resolução gravou a empresa derivada na sessão; persistir é
			// melhor esforço, a página segue mesmo se o store falhar.
			sess.Touch()
			_ = sessions.Put(c.UserContext(), sess)
		}

		if res.SelectedCompany != nil {
			c.Locals(LocalCompany, *res.SelectedCompany)
		}
		return c.Next()
	}
}

// GetSession devolve a sessão do contexto (depois do SessionLoader), ou nil.
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}

// GetSelectedCompany devolve a empresa em foco (depois do Guard).
func GetSelectedCompany(c *fiber.Ctx) (entity.Company, bool) {
	v := c.Locals(LocalCompany)
	if v == nil {
		return entity.Company{}, false
	}
	company, ok := v.(entity.Company)
	return company, ok
}

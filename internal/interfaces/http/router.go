package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain/entity"
	"github.com/techtitans/estoque-front/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC     *usecase.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ProductUC  *usecase.ProductUseCase
	Resolver   *resolver.Resolver
	Sessions   repository.SessionRepository
	Session    SessionConfig
}

// Router registra as rotas: páginas e operações, cada uma atrás do guard com
// os requisitos de contexto da tela correspondente.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	productHandler := NewProductHandler(deps.ProductUC)
	pageHandler := NewPageHandler()

	// Toda requisição carrega a sessão do cookie, se houver.
	app.Use(SessionLoader(deps.Session, deps.Sessions))

	guard := func(req resolver.Requirements) fiber.Handler {
		return Guard(deps.Resolver, deps.Sessions, req)
	}

	chefe := resolver.Requirements{RequireUserType: entity.UserTypeChefe}
	funcionario := resolver.Requirements{RequireUserType: entity.UserTypeFuncionario}
	// Telas de gestão exigem só usuário + empresa em foco: o chefe chega pela
	// seleção no dashboard, o funcionário pela resolução via company_id.
	company := resolver.Requirements{RequireCompany: true}

	// Público
	app.Get("/", pageHandler.Root)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Dashboards
	app.Get("/dashboard", guard(chefe), companyHandler.Dashboard)
	app.Get("/employee-dashboard", guard(funcionario), pageHandler.EmployeeDashboard)

	// Empresas da sessão (só o chefe gerencia a lista)
	app.Post("/companies", guard(chefe), companyHandler.Add)
	app.Put("/companies/:index", guard(chefe), companyHandler.Rename)
	app.Delete("/companies/:index", guard(chefe), companyHandler.Delete)
	app.Post("/companies/:index/select", guard(chefe), companyHandler.Select)

	// Páginas de gestão (exigem empresa em foco)
	app.Get("/company-management", guard(company), pageHandler.CompanyManagement)
	app.Get("/employee-management", guard(company), pageHandler.EmployeeManagement)
	app.Get("/add-products", guard(company), pageHandler.AddProducts)
	app.Get("/stock", guard(company), pageHandler.Stock)

	// Funcionários da empresa em foco
	app.Get("/employees", guard(company), employeeHandler.List)
	app.Post("/employees", guard(company), employeeHandler.Create)
	app.Delete("/employees/:cpf", guard(company), employeeHandler.Delete)

	// Produtos da empresa em foco
	app.Get("/stock/products", guard(company), productHandler.List)
	app.Post("/products", guard(company), productHandler.Add)
	app.Put("/products/:id", guard(company), productHandler.Update)
	app.Delete("/products/:id", guard(company), productHandler.Delete)
}

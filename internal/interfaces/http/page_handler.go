package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/domain"
)

// PageHandler serve os view models das páginas protegidas: o título com o
// nome da empresa em foco, como os cabeçalhos das telas originais.
type PageHandler struct{}

// NewPageHandler constrói o handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Root godoc
// @Summary      Página de login; usuário logado é redirecionado ao seu dashboard
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       / [get]
func (h *PageHandler) Root(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil && sess.User != nil {
		target := resolver.TargetDashboard
		if sess.User.IsFuncionario() {
			target = resolver.TargetEmployeeDashboard
		}
		return c.Redirect(target, fiber.StatusFound)
	}
	return c.JSON(dto.PageResponse{Title: "Login"})
}

// EmployeeDashboard godoc
// @Summary      Dashboard do funcionário: empresa vinculada ao seu cadastro
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /employee-dashboard [get]
func (h *PageHandler) EmployeeDashboard(c *fiber.Ctx) error {
	return h.page(c, "Empresa: %s")
}

// CompanyManagement godoc
// @Summary      Tela de gestão da empresa selecionada
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /company-management [get]
func (h *PageHandler) CompanyManagement(c *fiber.Ctx) error {
	return h.page(c, "Gerenciamento - %s")
}

// EmployeeManagement godoc
// @Summary      Tela de funcionários da empresa selecionada
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /employee-management [get]
func (h *PageHandler) EmployeeManagement(c *fiber.Ctx) error {
	return h.page(c, "Funcionários - %s")
}

// AddProducts godoc
// @Summary      Tela de cadastro de produtos
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /add-products [get]
func (h *PageHandler) AddProducts(c *fiber.Ctx) error {
	return h.page(c, "Produtos - %s")
}

// Stock godoc
// @Summary      Tela de estoque
// @Tags         paginas
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /stock [get]
func (h *PageHandler) Stock(c *fiber.Ctx) error {
	return h.page(c, "Estoque - %s")
}

func (h *PageHandler) page(c *fiber.Ctx, format string) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	return c.JSON(dto.PageResponse{
		Title:   fmt.Sprintf(format, company.Name),
		Company: dto.CompanyResponse{ID: company.ID, Name: company.Name},
	})
}

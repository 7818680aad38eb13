package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/validate"
)

// CompanyHandler trata o dashboard do chefe e o CRUD de empresas da sessão.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler constrói o handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard do chefe: lista de empresas
// @Tags         empresas
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /dashboard [get]
func (h *CompanyHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Adiciona uma empresa (máximo de 3)
// @Tags         empresas
// @Produce      json
// @Success      201  {object}  dto.DashboardResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Add(c *fiber.Ctx) error {
	out, err := h.uc.Add(c.UserContext(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renomeia a empresa na posição indicada
// @Tags         empresas
// @Accept       json
// @Produce      json
// @Param        index  path  int                       true  "Posição na lista"
// @Param        body   body  dto.RenameCompanyRequest  true  "Novo nome"
// @Success      200    {object}  dto.DashboardResponse
// @Failure      400    {object}  dto.FieldErrorsResponse
// @Router       /companies/{index} [put]
func (h *CompanyHandler) Rename(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respondError(c, domain.ErrNotFound)
	}
	var in dto.RenameCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if r := validate.CompanyName(in.Name); !r.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrorsResponse{
			Code:   "VALIDATION",
			Errors: map[string]string{"name": r.Message},
		})
	}
	out, err := h.uc.Rename(c.UserContext(), GetSession(c), index, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Exclui a empresa na posição indicada (nunca a última)
// @Tags         empresas
// @Produce      json
// @Param        index  path  int  true  "Posição na lista"
// @Success      200    {object}  dto.DashboardResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /companies/{index} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respondError(c, domain.ErrNotFound)
	}
	name, out, err := h.uc.Delete(c.UserContext(), GetSession(c), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   fmt.Sprintf("Empresa %q excluída com sucesso!", name),
		"companies": out.Companies,
		"can_add":   out.CanAdd,
	})
}

// Select godoc
// @Summary      Seleciona a empresa em foco para as telas de gestão
// @Tags         empresas
// @Produce      json
// @Param        index  path  int  true  "Posição na lista"
// @Success      200    {object}  dto.SelectCompanyResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /companies/{index}/select [post]
func (h *CompanyHandler) Select(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respondError(c, domain.ErrNotFound)
	}
	out, err := h.uc.Select(c.UserContext(), GetSession(c), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/validate"
)

// EmployeeHandler trata o CRUD de funcionários da empresa selecionada.
type EmployeeHandler struct {
	uc        *usecase.EmployeeUseCase
	validator *bodyValidator
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, validator: newBodyValidator()}
}

// List godoc
// @Summary      Lista os funcionários da empresa selecionada
// @Tags         funcionarios
// @Produce      json
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	out, err := h.uc.List(c.UserContext(), company)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastra um funcionário na empresa selecionada
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "CPF e senha"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.FieldErrorsResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validator.Check(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	fieldErrors := map[string]string{}
	if r := validate.CPF(in.CPF); !r.Valid {
		fieldErrors["cpf"] = r.Message
	}
	if r := validate.Password(in.Password); !r.Valid {
		fieldErrors["password"] = r.Message
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrorsResponse{Code: "VALIDATION", Errors: fieldErrors})
	}

	emp, err := h.uc.Create(c.UserContext(), company.ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeResponse{
		CPF:          emp.CPF,
		CPFFormatted: validate.FormatCPF(emp.CPF),
		CompanyName:  company.Name,
	})
}

// Delete godoc
// @Summary      Remove um funcionário pelo CPF
// @Tags         funcionarios
// @Produce      json
// @Param        cpf  path  string  true  "CPF do funcionário"
// @Success      200  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{cpf} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	if err := h.uc.Delete(c.UserContext(), company.ID, c.Params("cpf")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ErrorResponse{Code: "OK", Message: "Funcionário excluído com sucesso!"})
}

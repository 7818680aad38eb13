package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/validate"
)

// ProductHandler trata o estoque: listagem com busca, cadastro, edição e exclusão.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Lista os produtos da empresa selecionada com busca e estatísticas
// @Tags         produtos
// @Produce      json
// @Param        search  query  string  false  "Filtro por nome (ignora acentos e caixa)"
// @Success      200     {object}  dto.StockListResponse
// @Failure      502     {object}  dto.ErrorResponse
// @Router       /stock/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	out, err := h.uc.List(c.UserContext(), company.ID, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Adiciona um produto (o backend soma quantidade se o nome já existir)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddProductRequest  true  "Produto"
// @Success      201   {object}  dto.AddProductResponse
// @Failure      400   {object}  dto.FieldErrorsResponse
// @Router       /products [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := productFieldErrors(in.Name, in.Quantity, in.Value); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrorsResponse{Code: "VALIDATION", Errors: errs})
	}
	out, err := h.uc.Add(c.UserContext(), company.ID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Edita um produto do estoque
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do produto"
// @Param        body  body  dto.UpdateProductRequest  true  "Produto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.FieldErrorsResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if errs := productFieldErrors(in.Name, in.Quantity, in.Value); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrorsResponse{Code: "VALIDATION", Errors: errs})
	}
	out, err := h.uc.Update(c.UserContext(), company.ID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove um produto do estoque
// @Tags         produtos
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	company, ok := GetSelectedCompany(c)
	if !ok {
		return respondError(c, domain.ErrNoSelectedCompany)
	}
	if err := h.uc.Delete(c.UserContext(), company.ID, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ErrorResponse{Code: "OK", Message: "Produto excluído com sucesso!"})
}

// productFieldErrors roda as três validações de campo do formulário de produto.
func productFieldErrors(name string, quantity, value dto.Num) map[string]string {
	errs := map[string]string{}
	if r := validate.ProductName(name); !r.Valid {
		errs["name"] = r.Message
	}
	if r := validate.Quantity(quantity.String()); !r.Valid {
		errs["quantity"] = r.Message
	}
	if r := validate.Value(value.String()); !r.Valid {
		errs["value"] = r.Message
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

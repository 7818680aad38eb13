package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/domain"
)

// Mensagem genérica de falha de transporte, exibida em alerta pelo cliente.
const connectionErrorMessage = "Erro de conexão. Verifique se o servidor está rodando."

// respondError traduz a taxonomia de erros para HTTP: rejeição do backend
// repassa status e message; falha de transporte vira 502; erros de domínio
// viram o status correspondente; o resto é 500.
func respondError(c *fiber.Ctx, err error) error {
	if be, ok := domain.AsBackendError(err); ok {
		return c.Status(be.StatusCode).JSON(dto.ErrorResponse{Code: "BACKEND", Message: be.Message})
	}
	switch {
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CONEXAO", Message: connectionErrorMessage})
	case errors.Is(err, domain.ErrCompanyLimit):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LIMITE_EMPRESAS", Message: "Máximo de 3 empresas permitidas"})
	case errors.Is(err, domain.ErrLastCompany):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ULTIMA_EMPRESA", Message: "Não é possível excluir a última empresa. Deve haver pelo menos uma empresa."})
	case errors.Is(err, domain.ErrNoSelectedCompany):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SEM_EMPRESA", Message: "Nenhuma empresa selecionada"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NAO_AUTORIZADO", Message: "não autorizado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/techtitans/estoque-front/internal/application/dto"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain"
	"github.com/techtitans/estoque-front/internal/domain/validate"
	"github.com/techtitans/estoque-front/pkg/token"
)

// AuthHandler trata login e logout da sessão.
type AuthHandler struct {
	uc        *usecase.AuthUseCase
	cfg       SessionConfig
	validator *bodyValidator
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *usecase.AuthUseCase, cfg SessionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg, validator: newBodyValidator()}
}

// Login godoc
// @Summary      Login por CPF e senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.FieldErrorsResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validator.Check(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	// Validação local por campo: nada chega à rede enquanto houver erro.
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

	sess, out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if be, ok := domain.AsBackendError(err); ok {
			// Credencial rejeitada vira a mensagem genérica do front original.
			if strings.Contains(be.Message, "não encontrado") || strings.Contains(be.Message, "incorreta") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "CREDENCIAIS",
					Message: "CPF ou senha incorretos, tente novamente",
				})
			}
		}
		return respondError(c, err)
	}

	signed, err := token.Generate(h.cfg.Secret, sess.ID, "estoque-front", h.cfg.ExpMinutes)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    signed,
		Expires:  time.Now().Add(time.Duration(h.cfg.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Logout: destrói a sessão inteira
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := GetSession(c); sess != nil {
		if err := h.uc.Logout(c.UserContext(), sess.ID); err != nil {
			return respondError(c, err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.ErrorResponse{Code: "OK", Message: "Logout realizado com sucesso"})
}
